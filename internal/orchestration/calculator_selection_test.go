package orchestration

import (
	"testing"

	"github.com/agbru/algodemo/internal/fibonacci"
)

func TestGetCalculatorsToRun(t *testing.T) {
	t.Parallel()
	factory := fibonacci.NewDefaultFactory()

	t.Run("single algorithm", func(t *testing.T) {
		t.Parallel()
		calculators := GetCalculatorsToRun("iterative", factory)
		if len(calculators) != 1 {
			t.Fatalf("got %d calculators, want 1", len(calculators))
		}
		if calculators[0].Name() == "" {
			t.Error("calculator name should not be empty")
		}
	})

	t.Run("all algorithms in factory order", func(t *testing.T) {
		t.Parallel()
		calculators := GetCalculatorsToRun(AllAlgorithms, factory)
		names := factory.List()
		if len(calculators) != len(names) {
			t.Fatalf("got %d calculators, want %d", len(calculators), len(names))
		}
		for i, name := range names {
			want, _ := factory.Get(name)
			if calculators[i] != want {
				t.Errorf("calculator %d is not %q", i, name)
			}
		}
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		t.Parallel()
		if calculators := GetCalculatorsToRun("matrix", factory); calculators != nil {
			t.Errorf("got %d calculators for an unknown name, want nil", len(calculators))
		}
	})
}
