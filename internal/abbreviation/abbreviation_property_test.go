package abbreviation

import (
	"strings"
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

// mixedCaseGen yields strings over a small alphabet so collisions are common.
func mixedCaseGen() gopter.Gen {
	const alphabet = "abcABC"
	return gen.SliceOf(gen.IntRange(0, len(alphabet)-1)).Map(func(idx []int) string {
		var sb strings.Builder
		for _, i := range idx {
			sb.WriteByte(alphabet[i])
		}
		return sb.String()
	})
}

// derive applies the transformation rules to a, using mask to decide which
// lowercase runes are capitalized (true) or deleted (false).
func derive(a string, mask []bool) string {
	var sb strings.Builder
	for i, r := range []rune(a) {
		switch {
		case !unicode.IsLower(r):
			sb.WriteRune(r)
		case i < len(mask) && mask[i]:
			sb.WriteRune(unicode.ToUpper(r))
		}
	}
	return sb.String()
}

func TestDerivedTargetsAreReachable_PropertyBased(t *testing.T) {
	properties := newProperties()

	properties.Property("any capitalize/delete choice yields a reachable target", prop.ForAll(
		func(a string, mask []bool) bool {
			b := derive(a, mask)
			if !CanAbbreviate(a, b) {
				return false
			}
			plan, ok := NewTable(a, b).Plan()
			return ok && Apply(a, plan) == b
		},
		mixedCaseGen(),
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}

func TestLowercaseTargetIsUnreachable_PropertyBased(t *testing.T) {
	properties := newProperties()

	properties.Property("b containing a lowercase letter is never reachable", prop.ForAll(
		func(a, b string) bool {
			return !CanAbbreviate(a, b+"q")
		},
		mixedCaseGen(),
		mixedCaseGen(),
	))

	properties.TestingRun(t)
}

func TestUppercaseSourceRequiresExactMatch_PropertyBased(t *testing.T) {
	properties := newProperties()

	properties.Property("an all-uppercase a only abbreviates to itself", prop.ForAll(
		func(a, b string) bool {
			a, b = strings.ToUpper(a), strings.ToUpper(b)
			return CanAbbreviate(a, b) == (a == b)
		},
		mixedCaseGen(),
		mixedCaseGen(),
	))

	properties.TestingRun(t)
}
