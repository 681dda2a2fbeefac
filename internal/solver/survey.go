package solver

import (
	"fmt"

	"codebreaker/internal/oracle"

	"go.uber.org/zap"
)

// detectLength probes with the first alphabet symbol repeated k times for
// k = 1..maxLength. The oracle answers LengthMismatch below the true
// length; the first real answer fixes the length and doubles as the first
// symbol's frequency. Writes that frequency into counts[0].
func (s *Session) detectLength(counts []int) (int, error) {
	for k := 1; k <= s.maxLength; k++ {
		r := s.client.Query(s.alphabet.Repeat(0, k))
		if s.client.Found() {
			return k, nil
		}
		if r != oracle.LengthMismatch {
			counts[0] = r
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: no match within %d probes", ErrLengthExceeded, s.maxLength)
}

// surveyFrequencies probes each remaining symbol repeated n times; the
// answer is that symbol's frequency in the secret. The frequencies must
// sum to n exactly, anything else means the oracle contradicted itself
// and the session is unrecoverable.
func (s *Session) surveyFrequencies(counts []int, n int) error {
	for i := 1; i < len(s.alphabet); i++ {
		counts[i] = s.client.Query(s.alphabet.Repeat(i, n))
		if s.client.Found() {
			return nil
		}
	}

	sum := 0
	for _, v := range counts {
		sum += v
	}
	if sum != n {
		s.logger.Error("frequency sanity check failed",
			zap.Int("sum", sum), zap.Int("length", n))
		return fmt.Errorf("%w: sum %d, length %d", ErrInconsistentCounts, sum, n)
	}
	return nil
}
