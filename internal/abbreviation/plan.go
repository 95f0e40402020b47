package abbreviation

import (
	"strings"
	"unicode"
)

// Op is what happens to one rune of a in a transformation.
type Op int

const (
	// OpKeep keeps a rune that already equals its target.
	OpKeep Op = iota
	// OpCapitalize uppercases a lowercase rune to match its target.
	OpCapitalize
	// OpDelete drops a lowercase rune.
	OpDelete
)

// String returns the lowercase name of the operation.
func (o Op) String() string {
	switch o {
	case OpKeep:
		return "keep"
	case OpCapitalize:
		return "capitalize"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Step describes the fate of a[Index].
type Step struct {
	Index  int  // position of the rune in a
	Rune   rune // the rune of a
	Op     Op
	Target int // position in b produced by this rune, -1 for OpDelete
}

// Plan reconstructs one transformation of a into b by walking the table
// back from the final cell. It returns false, and no steps, when no
// transformation exists. Steps are ordered by Index.
func (t *Table) Plan() ([]Step, bool) {
	if !t.Possible() {
		return nil, false
	}

	steps := make([]Step, len(t.a))
	j := len(t.b)
	for i := len(t.a); i > 0; i-- {
		r := t.a[i-1]
		// A reachable (i, j) always has a reachable predecessor; matching
		// is tried first so that a deletion is only chosen when needed.
		if j > 0 && t.cells[i-1][j-1] && unicode.ToUpper(r) == t.b[j-1] {
			op := OpKeep
			if r != t.b[j-1] {
				op = OpCapitalize
			}
			j--
			steps[i-1] = Step{Index: i - 1, Rune: r, Op: op, Target: j}
			continue
		}
		steps[i-1] = Step{Index: i - 1, Rune: r, Op: OpDelete, Target: -1}
	}
	return steps, true
}

// Apply replays plan over a and returns the produced string. Steps that do
// not refer to a valid index of a are ignored.
func Apply(a string, plan []Step) string {
	runes := []rune(a)
	var sb strings.Builder
	for _, s := range plan {
		if s.Index < 0 || s.Index >= len(runes) {
			continue
		}
		switch s.Op {
		case OpKeep:
			sb.WriteRune(runes[s.Index])
		case OpCapitalize:
			sb.WriteRune(unicode.ToUpper(runes[s.Index]))
		}
	}
	return sb.String()
}
