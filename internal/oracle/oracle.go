// Package oracle defines the guess-evaluation contract and provides a
// local secret-backed harness implementing it.
//
// The oracle is the only source of information about the secret. Its
// responses are assumed deterministic for the duration of a session:
// the same guess always yields the same answer, and no retries are ever
// attempted.
package oracle

import "fmt"

// LengthMismatch is the sentinel returned when a guess does not have the
// secret's length. It carries no positional information.
const LengthMismatch = -2

// Oracle scores a guess against a hidden secret.
//
// Evaluate returns LengthMismatch when len(guess) differs from the secret
// length, otherwise the count of positions where guess and secret agree.
// A return value equal to len(guess) means the guess is the secret.
type Oracle interface {
	Evaluate(guess string) int
}

// Harness is a local Oracle holding a known secret. It stands in for the
// external evaluator when solving offline and in tests.
type Harness struct {
	secret  string
	queries int
}

// NewHarness returns a Harness guarding the given secret.
func NewHarness(secret string) (*Harness, error) {
	if secret == "" {
		return nil, fmt.Errorf("harness secret must not be empty")
	}
	return &Harness{secret: secret}, nil
}

// Evaluate implements Oracle.
func (h *Harness) Evaluate(guess string) int {
	h.queries++
	if len(guess) != len(h.secret) {
		return LengthMismatch
	}
	matches := 0
	for i := 0; i < len(guess); i++ {
		if guess[i] == h.secret[i] {
			matches++
		}
	}
	return matches
}

// Queries returns the number of Evaluate calls served so far.
func (h *Harness) Queries() int {
	return h.queries
}
