// Package solver implements adaptive discovery of a fixed-alphabet secret
// string through positional-match feedback from an oracle.
//
// A discovery session runs in phases: length and frequency detection via
// uniform probes, construction of a frequency-ordered initial candidate,
// then single-position refinement that confirms or eliminates symbols one
// position at a time until the whole secret is proven.
package solver

import (
	"fmt"
	"strings"
)

// Alphabet is the ordered set of symbols a secret may contain.
// The order matters: it is the deterministic tie-break when frequencies
// are equal, and the first symbol is the uniform-probe and fill default.
type Alphabet []byte

// DefaultAlphabet is the reference instance used by the stock harness.
var DefaultAlphabet = Alphabet("BACXIU")

// ParseAlphabet validates s and returns it as an Alphabet.
func ParseAlphabet(s string) (Alphabet, error) {
	if s == "" {
		return nil, fmt.Errorf("alphabet must not be empty")
	}
	seen := make(map[byte]bool, len(s))
	for i := 0; i < len(s); i++ {
		if seen[s[i]] {
			return nil, fmt.Errorf("alphabet contains duplicate symbol %q", s[i])
		}
		seen[s[i]] = true
	}
	return Alphabet(s), nil
}

// Index returns the position of sym in the alphabet, or -1 if absent.
func (a Alphabet) Index(sym byte) int {
	for i, c := range a {
		if c == sym {
			return i
		}
	}
	return -1
}

// Contains reports whether sym is part of the alphabet.
func (a Alphabet) Contains(sym byte) bool {
	return a.Index(sym) >= 0
}

// ValidSecret reports whether s is a non-empty string drawn entirely from
// the alphabet.
func (a Alphabet) ValidSecret(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !a.Contains(s[i]) {
			return false
		}
	}
	return true
}

// Repeat returns the symbol at index idx repeated n times.
func (a Alphabet) Repeat(idx, n int) string {
	return strings.Repeat(string(a[idx]), n)
}

func (a Alphabet) String() string {
	return string(a)
}
