// Package bitops collects the bit-manipulation helpers that keep showing up
// in contest code: power-of-two tests and rounding, isolating the lowest and
// highest set bits, Gray codes, and submask enumeration.
//
// All functions are total over uint64 and allocation-free; the heavy lifting
// is math/bits, which compiles to single instructions on amd64/arm64.
package bitops

import "math/bits"

// IsPow2 reports whether x is an exact power of two. Zero is not.
func IsPow2(x uint64) bool { return x != 0 && x&(x-1) == 0 }

// NextPow2 returns the smallest power of two ≥ x. NextPow2(0) == 1.
// Inputs above 1<<63 cannot be rounded up and return 0.
func NextPow2(x uint64) uint64 {
	if x <= 1 {
		return 1
	}
	if x > 1<<63 {
		return 0
	}

	return 1 << (64 - bits.LeadingZeros64(x-1))
}

// LowBit isolates the lowest set bit of x (x & -x). LowBit(0) == 0.
func LowBit(x uint64) uint64 { return x & -x }

// HighBit isolates the highest set bit of x. HighBit(0) == 0.
func HighBit(x uint64) uint64 {
	if x == 0 {
		return 0
	}

	return 1 << (63 - bits.LeadingZeros64(x))
}

// ClearLowBit clears the lowest set bit of x (x & (x-1)).
// Iterating ClearLowBit until zero visits each set bit once.
func ClearLowBit(x uint64) uint64 {
	if x == 0 {
		return 0
	}

	return x & (x - 1)
}

// Count returns the number of set bits in x.
func Count(x uint64) int { return bits.OnesCount64(x) }

// Gray returns the reflected binary Gray code of x: consecutive inputs
// differ in exactly one output bit.
func Gray(x uint64) uint64 { return x ^ (x >> 1) }

// Subsets calls fn for every non-empty submask of mask, in descending
// numeric order (the (sub-1)&mask walk). Returning false from fn stops the
// enumeration early. 2^Count(mask) submasks total, so keep masks small.
func Subsets(mask uint64, fn func(sub uint64) bool) {
	for sub := mask; sub > 0; sub = (sub - 1) & mask {
		if !fn(sub) {
			return
		}
	}
}
