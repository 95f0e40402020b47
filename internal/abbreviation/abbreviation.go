package abbreviation

import (
	"strings"
	"unicode"
)

// CanAbbreviate reports whether a can be transformed into b.
//
// A lowercase rune in b can never be produced, because a's runes are
// uppercased before comparison; such a b therefore always yields false.
func CanAbbreviate(a, b string) bool {
	return NewTable(a, b).Possible()
}

// Table is the filled reachability grid for one (a, b) pair.
type Table struct {
	a, b  []rune
	cells [][]bool
}

// NewTable builds the reachability grid for a and b in
// O(len(a)*len(b)) time and space.
func NewTable(a, b string) *Table {
	t := &Table{a: []rune(a), b: []rune(b)}
	n, m := len(t.a), len(t.b)

	t.cells = make([][]bool, n+1)
	for i := range t.cells {
		t.cells[i] = make([]bool, m+1)
	}
	t.cells[0][0] = true

	for i := 0; i < n; i++ {
		upper := unicode.ToUpper(t.a[i])
		deletable := unicode.IsLower(t.a[i])
		for j := 0; j <= m; j++ {
			if !t.cells[i][j] {
				continue
			}
			if j < m && upper == t.b[j] {
				t.cells[i+1][j+1] = true
			}
			if deletable {
				t.cells[i+1][j] = true
			}
		}
	}
	return t
}

// Possible reports whether all of a produces all of b.
func (t *Table) Possible() bool {
	return t.cells[len(t.a)][len(t.b)]
}

// Reachable reports cell (i, j). Out-of-range indices are unreachable.
func (t *Table) Reachable(i, j int) bool {
	if i < 0 || i >= len(t.cells) || j < 0 || j >= len(t.cells[i]) {
		return false
	}
	return t.cells[i][j]
}

// Rows returns len(a)+1.
func (t *Table) Rows() int { return len(t.cells) }

// Cols returns len(b)+1.
func (t *Table) Cols() int { return len(t.b) + 1 }

// String renders the grid with 'T' for reachable and '.' for unreachable
// cells. Columns are headed by the runes of b, rows by the runes of a.
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString("    ε")
	for _, r := range t.b {
		sb.WriteByte(' ')
		sb.WriteRune(r)
	}
	sb.WriteByte('\n')

	for i, row := range t.cells {
		if i == 0 {
			sb.WriteString("ε   ")
		} else {
			sb.WriteRune(t.a[i-1])
			sb.WriteString("   ")
		}
		for j, ok := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if ok {
				sb.WriteByte('T')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
