// Package rle implements byte-oriented run-length compression: Encode
// collapses runs into <byte><count> pairs, Decode expands them back, and
// Groups exposes the raw runs for callers that only need the grouping.
//
// The alphabet is bytes, not runes: contest inputs are ASCII and the
// count digits would be ambiguous against multi-byte encodings anyway.
// Digits therefore cannot appear in Encode input; Decode rejects them in
// the byte position.
package rle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for decoding.
var (
	// ErrBadSyntax indicates input that is not a sequence of
	// <non-digit byte><decimal count> pairs with positive counts.
	ErrBadSyntax = errors.New("rle: malformed run-length input")

	// ErrTooLarge indicates a decode whose output would exceed MaxDecoded.
	ErrTooLarge = errors.New("rle: decoded output too large")
)

// MaxDecoded caps Decode output at 64 MiB, so a tiny hostile input like
// "a99999999999" cannot balloon memory.
const MaxDecoded = 64 << 20

// Group is one run: Run consecutive copies of Byte.
type Group struct {
	Byte byte
	Run  int
}

// Groups splits s into maximal runs of equal bytes, in order.
// Groups("") is empty.
func Groups(s string) []Group {
	if len(s) == 0 {
		return nil
	}
	groups := make([]Group, 0, 8)
	cur := Group{Byte: s[0], Run: 1}
	for i := 1; i < len(s); i++ {
		if s[i] == cur.Byte {
			cur.Run++

			continue
		}
		groups = append(groups, cur)
		cur = Group{Byte: s[i], Run: 1}
	}

	return append(groups, cur)
}

// Encode collapses every run into the byte followed by its decimal count:
// "aaabcc" → "a3b1c2". Encode("") == "".
func Encode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, g := range Groups(s) {
		b.WriteByte(g.Byte)
		b.WriteString(strconv.Itoa(g.Run))
	}

	return b.String()
}

// Decode expands Encode output: each non-digit byte must be followed by a
// positive decimal count. Returns ErrBadSyntax on anything else and
// ErrTooLarge when the output would exceed MaxDecoded.
// Decode(Encode(s)) == s for any digit-free s.
func Decode(s string) (string, error) {
	var b strings.Builder
	i := 0
	for i < len(s) {
		ch := s[i]
		if isDigit(ch) {
			return "", fmt.Errorf("%w: digit %q at offset %d where a run byte is expected", ErrBadSyntax, ch, i)
		}
		i++

		// Scan the decimal count.
		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if start == i {
			return "", fmt.Errorf("%w: missing count after %q at offset %d", ErrBadSyntax, ch, start-1)
		}
		n, err := strconv.Atoi(s[start:i])
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return "", fmt.Errorf("%w: count %q at offset %d", ErrTooLarge, s[start:i], start)
			}

			return "", fmt.Errorf("%w: bad count %q at offset %d", ErrBadSyntax, s[start:i], start)
		}
		if n < 1 {
			return "", fmt.Errorf("%w: zero count at offset %d", ErrBadSyntax, start)
		}
		if b.Len()+n > MaxDecoded {
			return "", fmt.Errorf("%w: run of %d at offset %d", ErrTooLarge, n, start)
		}
		for j := 0; j < n; j++ {
			b.WriteByte(ch)
		}
	}

	return b.String(), nil
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
