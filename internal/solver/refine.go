package solver

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"go.uber.org/zap"
)

// refineState is the exclusively-owned working state of the refinement
// phase. Invariants, holding between every probe:
//
//   - sum(remaining) equals open, the number of unconfirmed positions;
//   - masks[i] never regains a cleared position;
//   - once a position is confirmed, only the confirmed symbol's mask
//     still contains it;
//   - confirmed flags flip false->true exactly once.
type refineState struct {
	alphabet  Alphabet
	candidate []byte
	remaining []int
	masks     []*bitset.BitSet // per symbol: positions still eligible
	confirmed []bool
	open      int
	baseline  int // oracle match count for the current candidate
}

func newRefineState(a Alphabet, counts []int, candidate []byte, baseline int) *refineState {
	n := len(candidate)
	remaining := make([]int, len(counts))
	copy(remaining, counts)

	masks := make([]*bitset.BitSet, len(a))
	for i := range masks {
		m := bitset.New(uint(n))
		for p := uint(0); p < uint(n); p++ {
			m.Set(p)
		}
		masks[i] = m
	}

	return &refineState{
		alphabet:  a,
		candidate: candidate,
		remaining: remaining,
		masks:     masks,
		confirmed: make([]bool, n),
		open:      n,
		baseline:  baseline,
	}
}

func (st *refineState) done() bool {
	return st.open == 0
}

// confirm fixes symIdx at pos: the position is closed, the symbol's supply
// decremented, and every other symbol's eligibility at pos withdrawn.
func (st *refineState) confirm(pos, symIdx int) {
	st.candidate[pos] = st.alphabet[symIdx]
	st.confirmed[pos] = true
	st.open--
	if st.remaining[symIdx] > 0 {
		st.remaining[symIdx]--
	}
	for i, m := range st.masks {
		if i != symIdx {
			m.Clear(uint(pos))
		}
	}
}

// forcedSymbol returns the index of a symbol whose remaining supply
// exactly saturates the open positions, or -1. Since remaining sums to
// open, a hit means every other symbol is exhausted and every open slot
// must hold this symbol.
func (st *refineState) forcedSymbol() int {
	if st.open == 0 {
		return -1
	}
	for i, r := range st.remaining {
		if r == st.open {
			return i
		}
	}
	return -1
}

// forceFill confirms symIdx at every open position.
func (st *refineState) forceFill(symIdx int) {
	for p := 0; p < len(st.candidate); p++ {
		if !st.confirmed[p] {
			st.confirm(p, symIdx)
		}
	}
}

// trySymbols returns the replacement symbols to probe at pos, ordered by
// descending remaining count (ties by alphabet order). Symbols with no
// remaining supply, symbols already ruled out at pos, and the incumbent
// symbol are excluded.
func (st *refineState) trySymbols(pos int) []int {
	var out []int
	for _, i := range orderByCountDesc(st.remaining) {
		if st.remaining[i] <= 0 {
			continue
		}
		if !st.masks[i].Test(uint(pos)) {
			continue
		}
		if st.alphabet[i] == st.candidate[pos] {
			continue
		}
		out = append(out, i)
	}
	return out
}

// refine drives single-position perturbation until every position is
// confirmed. Each probe swaps one symbol into the candidate and compares
// the oracle's answer against the baseline; a single-position change can
// move the match count by at most one, so the sign of the delta decides
// between the replacement (+1) and the incumbent (-1), while zero rules
// the replacement out at that position.
func (s *Session) refine(st *refineState) error {
	for !st.done() {
		if idx := st.forcedSymbol(); idx >= 0 {
			st.forceFill(idx)
			s.logger.Info("forced fill applied",
				zap.String("symbol", string(s.alphabet[idx])),
				zap.String("candidate", string(st.candidate)))
			st.baseline = s.client.Query(string(st.candidate))
			if s.client.Found() {
				return nil
			}
			continue
		}

		progressed := false
		for pos := 0; pos < len(st.candidate) && !progressed; pos++ {
			if st.confirmed[pos] {
				continue
			}
			for _, symIdx := range st.trySymbols(pos) {
				probe := make([]byte, len(st.candidate))
				copy(probe, st.candidate)
				probe[pos] = st.alphabet[symIdx]

				got := s.client.Query(string(probe))
				if s.client.Found() {
					return nil
				}

				switch got - st.baseline {
				case 1:
					// Replacement is correct; the probe becomes the live
					// candidate and its match count the new baseline.
					st.confirm(pos, symIdx)
					st.baseline = got
					progressed = true
				case -1:
					// Incumbent was already correct. The probe is
					// discarded, so the baseline still describes the
					// candidate and must not be re-queried.
					st.confirm(pos, s.alphabet.Index(st.candidate[pos]))
					progressed = true
				default:
					st.masks[symIdx].Clear(uint(pos))
				}
				if progressed {
					s.logger.Debug("position confirmed",
						zap.Int("pos", pos),
						zap.String("symbol", string(st.candidate[pos])),
						zap.Int("open", st.open))
					break
				}
			}
		}

		if !progressed {
			s.logger.Warn("refinement stalled",
				zap.Int("open", st.open),
				zap.String("candidate", string(st.candidate)))
			return fmt.Errorf("%w: %d of %d positions open",
				ErrStalled, st.open, len(st.candidate))
		}
	}
	return nil
}
