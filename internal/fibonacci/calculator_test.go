package fibonacci

import (
	"context"
	"errors"
	"math/big"
	"reflect"
	"testing"
	"time"

	apperrors "github.com/agbru/algodemo/internal/errors"
)

func TestCalculators_AgreeWithReference(t *testing.T) {
	t.Parallel()

	factory := NewDefaultFactory()
	for _, name := range factory.List() {
		calc, err := factory.Get(name)
		if err != nil {
			t.Fatalf("Get(%q) error: %v", name, err)
		}
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for _, n := range []int64{0, 1, 2, 3, 10, 64, 93, 94, 127, 128, 1000, 4097} {
				got, err := calc.Calculate(context.Background(), nil, 0, n)
				if err != nil {
					t.Fatalf("Calculate(%d) error: %v", n, err)
				}
				want, _ := Fibonacci(n)
				if got.Cmp(want) != 0 {
					t.Errorf("%s: F(%d) = %s, want %s", calc.Name(), n, got, want)
				}
			}
		})
	}
}

func TestFibCalculator_RejectsNegativeIndex(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(&IterativeDoubling{})
	_, err := calc.Calculate(context.Background(), nil, 0, -1)
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("Calculate(-1) error = %v, want ErrInvalidArgument", err)
	}
}

func TestFibCalculator_ReportsCompletion(t *testing.T) {
	t.Parallel()

	for _, core := range allCalculators() {
		progressChan := make(chan ProgressUpdate, 256)
		calc := NewCalculator(core)

		if _, err := calc.Calculate(context.Background(), progressChan, 3, 5000); err != nil {
			t.Fatalf("%s: Calculate error: %v", core.Name(), err)
		}
		close(progressChan)

		var last ProgressUpdate
		count := 0
		for u := range progressChan {
			if u.CalculatorIndex != 3 {
				t.Errorf("%s: update tagged with index %d, want 3", core.Name(), u.CalculatorIndex)
			}
			if u.Value < last.Value {
				t.Errorf("%s: progress went backwards: %v -> %v", core.Name(), last.Value, u.Value)
			}
			last = u
			count++
		}
		if count == 0 || last.Value != 1.0 {
			t.Errorf("%s: last progress = %v after %d updates, want 1.0", core.Name(), last.Value, count)
		}
	}
}

func TestFibCalculator_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, core := range allCalculators() {
		_, err := NewCalculator(core).Calculate(ctx, nil, 0, 100)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("%s: error = %v, want context.Canceled", core.Name(), err)
		}
	}
}

func TestNaiveRecurrence_Limit(t *testing.T) {
	t.Parallel()

	_, err := calcF(&NaiveRecurrence{}, MaxNaiveIndex+1)
	if !apperrors.IsInvalidArgument(err) {
		t.Errorf("naive above limit: error = %v, want invalid argument", err)
	}
}

func TestNaiveRecurrence_DeadlineInterruptsLoop(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := calcFCtx(ctx, &NaiveRecurrence{}, MaxNaiveIndex)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
}

func calcFCtx(ctx context.Context, calc coreCalculator, n int64) (*big.Int, error) {
	return calc.CalculateCore(ctx, nil, n)
}

func TestDefaultFactory(t *testing.T) {
	t.Parallel()

	factory := NewDefaultFactory()

	names := factory.List()
	for _, want := range []string{"fast", "iterative", "naive"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("List() = %v, missing %q", names, want)
		}
	}

	first, err := factory.Get("fast")
	if err != nil {
		t.Fatalf("Get(fast) error: %v", err)
	}
	second, _ := factory.Get("fast")
	if first != second {
		t.Error("Get should return the cached instance")
	}

	if _, err := factory.Get("quantum"); !apperrors.IsInvalidArgument(err) {
		t.Errorf("Get(quantum) error = %v, want invalid argument", err)
	}

	all := factory.GetAll()
	keys := make([]string, 0, len(all))
	for _, name := range names {
		if _, ok := all[name]; ok {
			keys = append(keys, name)
		}
	}
	if !reflect.DeepEqual(keys, names) {
		t.Errorf("GetAll keys = %v, want %v", keys, names)
	}
}

func TestDefaultFactory_Register(t *testing.T) {
	t.Parallel()

	factory := NewDefaultFactory()
	custom := NewCalculator(&RecursiveDoubling{})
	factory.Register("custom", custom)

	got, err := factory.Get("custom")
	if err != nil {
		t.Fatalf("Get(custom) error: %v", err)
	}
	if got != custom {
		t.Error("Get(custom) did not return the registered calculator")
	}

	found := false
	for _, name := range factory.List() {
		if name == "custom" {
			found = true
		}
	}
	if !found {
		t.Errorf("List() = %v, missing custom", factory.List())
	}

	if _, err := NewDefaultFactory().Get("custom"); err == nil {
		t.Error("Register must not leak into other factories")
	}
}
