// Package summation provides two timed strategies for summing the integers
// 1..N: an iterative O(N) accumulation and the O(1) closed form N·(N+1)/2.
//
// Each strategy returns a [Trial] carrying the computed [Sum] and the
// wall-clock time spent producing it. The iterative strategy yields an
// integer sum while the closed form yields a floating-point sum (true
// division); [Sum.IsFloat] exposes that difference and [Sum.Equal] compares
// the two numerically.
//
// Sums are held in 64-bit integers. [MaxN] is the largest N whose sum still
// fits; callers that accept user input should reject larger sizes.
package summation
