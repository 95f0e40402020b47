// Package metrics measures the runtime memory cost of a computation.
package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc  uint64 // bytes in use by the heap
	TotalAlloc uint64 // cumulative bytes allocated
	Mallocs    uint64 // cumulative heap objects allocated
	Sys        uint64 // total bytes obtained from the OS
	NumGC      uint32 // completed GC cycles
}

// Footprint is the difference between two snapshots.
type Footprint struct {
	Allocated   uint64
	Allocations uint64
	GCCycles    uint32
	PeakHeap    uint64
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:  m.HeapAlloc,
		TotalAlloc: m.TotalAlloc,
		Mallocs:    m.Mallocs,
		Sys:        m.Sys,
		NumGC:      m.NumGC,
	}
}

// Since returns what was allocated between before and s. PeakHeap is the
// larger of the two heap readings, a lower bound of the true peak.
func (s MemorySnapshot) Since(before MemorySnapshot) Footprint {
	return Footprint{
		Allocated:   s.TotalAlloc - before.TotalAlloc,
		Allocations: s.Mallocs - before.Mallocs,
		GCCycles:    s.NumGC - before.NumGC,
		PeakHeap:    max(s.HeapAlloc, before.HeapAlloc),
	}
}

// Measure runs fn and reports the memory it allocated.
func (mc *MemoryCollector) Measure(fn func()) Footprint {
	before := mc.Snapshot()
	fn()
	return mc.Snapshot().Since(before)
}
