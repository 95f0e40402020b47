// Package fibonacci computes Fibonacci numbers over arbitrary precision
// integers.
//
// The reference entry point is [Fibonacci], a doubling recursion built on
// the identities
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k)² + F(k+1)²
//
// which needs O(log n) recursive calls. Alternative strategies (iterative
// doubling, the linear recurrence, and GMP under the "gmp" build tag) are
// exposed through the [Calculator] interface so results can be
// cross-checked against each other.
package fibonacci
