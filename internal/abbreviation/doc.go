// Package abbreviation decides whether a string a can be turned into a
// string b by capitalizing some of a's lowercase letters and deleting all
// remaining lowercase letters. Uppercase letters of a can never be deleted.
//
// The decision is a reachability question over a (len(a)+1) x (len(b)+1)
// boolean table: cell (i, j) is true when the first i runes of a can
// produce exactly the first j runes of b. Cells are only ever propagated
// forward, to (i+1, j+1) by matching a[i] (uppercased) against b[j], or to
// (i+1, j) by deleting a lowercase a[i].
package abbreviation
