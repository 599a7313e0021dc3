package gf2

import (
	"fmt"
	"strings"
)

// Pack converts a bool assignment into its uint64 value; bits[0] is the MSB.
func Pack(bits []bool) uint64 {
	var x uint64
	for _, b := range bits {
		x <<= 1
		if b {
			x |= 1
		}
	}

	return x
}

// Unpack expands the n low bits of x into a bool slice, x₀ first.
func Unpack(x uint64, n int) []bool {
	out := make([]bool, n)
	for j := 0; j < n; j++ {
		out[j] = x&(1<<uint(n-1-j)) != 0
	}

	return out
}

// Bitstring renders the n low bits of x, x₀ first (e.g. Bitstring(4, 3) == "100").
func Bitstring(x uint64, n int) string {
	if n <= 0 {
		return ""
	}

	return fmt.Sprintf("%0*b", n, x&lowMask(n))
}

// ParseBitstring parses "x₀x₁…" into (value, width).
func ParseBitstring(s string) (uint64, int, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 64 {
		return 0, 0, fmt.Errorf("ParseBitstring(%q): %w", s, ErrBadBitstring)
	}
	var x uint64
	for _, r := range s {
		x <<= 1
		switch r {
		case '0':
		case '1':
			x |= 1
		default:
			return 0, 0, fmt.Errorf("ParseBitstring(%q): %w", s, ErrBadBitstring)
		}
	}

	return x, len(s), nil
}

// lowMask returns a mask with the n low bits set.
func lowMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << uint(n)) - 1
}
