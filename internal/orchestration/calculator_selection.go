package orchestration

import (
	"github.com/agbru/algodemo/internal/fibonacci"
)

// AllAlgorithms selects every registered strategy.
const AllAlgorithms = "all"

// GetCalculatorsToRun resolves an -algo value into calculators. "all" yields
// every registered strategy in the factory's sorted order; an unknown name
// yields nil.
func GetCalculatorsToRun(algo string, factory fibonacci.CalculatorFactory) []fibonacci.Calculator {
	if algo == AllAlgorithms {
		keys := factory.List()
		calculators := make([]fibonacci.Calculator, 0, len(keys))
		for _, k := range keys {
			if calc, err := factory.Get(k); err == nil {
				calculators = append(calculators, calc)
			}
		}
		return calculators
	}
	if calc, err := factory.Get(algo); err == nil {
		return []fibonacci.Calculator{calc}
	}
	return nil
}
