package palindrome_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/torvik/algopad/palindrome"
)

// naive is the reference two-pointer check.
func naive(s string) bool {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}

	return true
}

func TestIsPalindrome_Basics(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"", true},
		{"a", true},
		{"aa", true},
		{"ab", false},
		{"aba", true},
		{"abba", true},
		{"abca", false},
		{"abBA", false}, // byte semantics: no case folding
		{"step on no pets", true},
		{"step on no pet", false},
	} {
		assert.Equal(t, tc.want, palindrome.IsPalindrome(tc.in), "input %q", tc.in)
	}
}

func TestIsPalindrome_WordPhaseLengths(t *testing.T) {
	// Lengths straddling the 16-byte word-phase threshold, palindromic
	// and with a flipped byte at every position.
	for n := 14; n <= 40; n++ {
		half := strings.Repeat("abc", (n+5)/6+1)[:n/2]
		var p string
		if n%2 == 0 {
			p = half + reverse(half)
		} else {
			p = half + "z" + reverse(half)
		}
		assert.True(t, palindrome.IsPalindrome(p), "len %d: %q", n, p)

		for i := 0; i < len(p)/2; i++ {
			broken := p[:i] + "#" + p[i+1:]
			assert.False(t, palindrome.IsPalindrome(broken), "len %d broken at %d", n, i)
		}
	}
}

// TestIsPalindrome_MatchesNaive fuzzes the word-phase implementation
// against the reference byte loop.
func TestIsPalindrome_MatchesNaive(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	alphabet := "ab"
	for trial := 0; trial < 500; trial++ {
		n := r.Intn(64)
		b := make([]byte, n)
		for i := range b {
			b[i] = alphabet[r.Intn(len(alphabet))]
		}
		// Half the trials get mirrored to raise the palindrome rate.
		if trial%2 == 0 {
			for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
				b[j] = b[i]
			}
		}
		s := string(b)
		assert.Equal(t, naive(s), palindrome.IsPalindrome(s), "trial %d: %q", trial, s)
	}
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return string(b)
}

func BenchmarkIsPalindrome(b *testing.B) {
	half := strings.Repeat("abcdefgh", 512)
	s := half + reverse(half) // 8 KiB palindrome
	b.SetBytes(int64(len(s)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = palindrome.IsPalindrome(s)
	}
}

func BenchmarkIsPalindromeNaive(b *testing.B) {
	half := strings.Repeat("abcdefgh", 512)
	s := half + reverse(half)
	b.SetBytes(int64(len(s)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = naive(s)
	}
}
