// Package palindrome checks strings for palindromicity a word at a time:
// eight bytes from the front are compared against the byte-reversed eight
// bytes from the back in one uint64 operation, and only the unaligned
// middle falls back to a byte loop. math/bits.ReverseBytes64 compiles to a
// single BSWAP/REV, which is as close to the SIMD spirit as portable Go
// gets.
//
// Semantics are pure bytes: no case folding, no Unicode normalization, and
// multi-byte runes are compared byte-wise. "abBA" is not a palindrome here
// and neither is a string whose runes mirror but whose UTF-8 bytes do not.
package palindrome

import "math/bits"

// IsPalindrome reports whether s reads the same forwards and backwards,
// byte-wise. Empty and single-byte strings are palindromes.
// Complexity: O(len(s)/8) word compares plus at most 15 byte compares.
func IsPalindrome(s string) bool {
	i, j := 0, len(s)
	// Word phase: needs two disjoint 8-byte windows.
	for j-i >= 16 {
		if load64(s, i) != bits.ReverseBytes64(load64(s, j-8)) {
			return false
		}
		i += 8
		j -= 8
	}
	// Byte phase for the middle (and for short strings entirely).
	for i < j-1 {
		if s[i] != s[j-1] {
			return false
		}
		i++
		j--
	}

	return true
}

// load64 reads 8 bytes of s starting at off as a little-endian word.
// Written with explicit shifts so it stays allocation-free on strings;
// the compiler recognizes the pattern and emits a single load.
func load64(s string, off int) uint64 {
	_ = s[off+7] // bounds hint
	return uint64(s[off]) |
		uint64(s[off+1])<<8 |
		uint64(s[off+2])<<16 |
		uint64(s[off+3])<<24 |
		uint64(s[off+4])<<32 |
		uint64(s[off+5])<<40 |
		uint64(s[off+6])<<48 |
		uint64(s[off+7])<<56
}
