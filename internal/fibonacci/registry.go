package fibonacci

import (
	"sort"
	"strings"
	"sync"

	apperrors "github.com/agbru/algodemo/internal/errors"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]func() coreCalculator)
)

// RegisterCalculator makes a strategy available under name. Strategies
// register themselves from init functions; a duplicate name replaces the
// previous constructor.
func RegisterCalculator(name string, ctor func() coreCalculator) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = ctor
}

// CalculatorFactory looks up Calculators by their registry name.
type CalculatorFactory interface {
	// Get returns the calculator registered under name.
	Get(name string) (Calculator, error)
	// List returns the registered names in sorted order.
	List() []string
	// GetAll returns every registered calculator keyed by name.
	GetAll() map[string]Calculator
}

// DefaultFactory serves calculators from the package registry and caches
// the wrapped instances.
type DefaultFactory struct {
	mu    sync.Mutex
	cache map[string]Calculator
}

// NewDefaultFactory creates a factory over the package registry.
func NewDefaultFactory() *DefaultFactory {
	return &DefaultFactory{cache: make(map[string]Calculator)}
}

// Get returns the calculator registered under name. Unknown names yield an
// error matching apperrors.ErrInvalidArgument.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if calc, ok := f.cache[name]; ok {
		return calc, nil
	}

	registryMu.RLock()
	ctor, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, apperrors.NewValidationError("algo", "unknown algorithm %q (available: %s)",
			name, strings.Join(f.listLocked(), ", "))
	}

	calc := NewCalculator(ctor())
	f.cache[name] = calc
	return calc, nil
}

// Register installs calc under name for this factory only, shadowing any
// package-level strategy with the same name.
func (f *DefaultFactory) Register(name string, calc Calculator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache[name] = calc
}

// List returns the registered names in sorted order.
func (f *DefaultFactory) List() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listLocked()
}

func (f *DefaultFactory) listLocked() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	seen := make(map[string]struct{}, len(registry)+len(f.cache))
	for name := range registry {
		seen[name] = struct{}{}
	}
	for name := range f.cache {
		seen[name] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns every registered calculator keyed by name.
func (f *DefaultFactory) GetAll() map[string]Calculator {
	all := make(map[string]Calculator)
	for _, name := range f.List() {
		if calc, err := f.Get(name); err == nil {
			all[name] = calc
		}
	}
	return all
}
