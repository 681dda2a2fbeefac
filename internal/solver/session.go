package solver

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"codebreaker/internal/oracle"
)

var (
	// ErrLengthExceeded means no valid length was found within the
	// configured maximum number of length probes.
	ErrLengthExceeded = errors.New("secret length exceeds configured maximum")

	// ErrInconsistentCounts means the surveyed symbol frequencies do not
	// sum to the detected length. The oracle violated its contract; the
	// session aborts rather than guess blindly.
	ErrInconsistentCounts = errors.New("surveyed frequencies do not sum to secret length")

	// ErrStalled means a full refinement sweep confirmed nothing and no
	// forced fill was available. The partial state is returned alongside
	// this error; it must never be mistaken for success.
	ErrStalled = errors.New("refinement stalled before confirming every position")
)

// Status classifies how a discovery session ended.
type Status int

const (
	// StatusFound means the secret was matched in full.
	StatusFound Status = iota
	// StatusStalled means refinement could make no further progress.
	StatusStalled
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusStalled:
		return "stalled"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result reports the outcome of one discovery session.
type Result struct {
	ID      string // short session identifier
	Status  Status
	Secret  string // discovered secret, or best candidate when stalled
	Length  int    // detected secret length
	Queries int    // total oracle probes issued
}

// Session runs one synchronous discovery against an oracle client. It owns
// all mutable solving state for its duration; nothing is shared and nothing
// persists across sessions.
type Session struct {
	client    *oracle.Client
	alphabet  Alphabet
	maxLength int
	logger    *zap.Logger
	id        string
}

// NewSession prepares a discovery session. logger must not be nil; pass
// zap.NewNop() to discard output.
func NewSession(client *oracle.Client, alphabet Alphabet, maxLength int, logger *zap.Logger) *Session {
	id := uuid.NewString()[:8]
	return &Session{
		client:    client,
		alphabet:  alphabet,
		maxLength: maxLength,
		logger:    logger.With(zap.String("component", "solver"), zap.String("session", id)),
		id:        id,
	}
}

// Run performs all discovery phases and returns the final result.
//
// Fatal aborts (ErrLengthExceeded, ErrInconsistentCounts) return a nil
// Result. A stall returns the partial Result together with ErrStalled.
func (s *Session) Run() (*Result, error) {
	counts := make([]int, len(s.alphabet))

	n, err := s.detectLength(counts)
	if err != nil {
		return nil, err
	}
	if s.client.Found() {
		return s.found(n), nil
	}
	s.logger.Info("length detected", zap.Int("length", n), zap.Int("first_symbol_count", counts[0]))

	if err := s.surveyFrequencies(counts, n); err != nil {
		return nil, err
	}
	if s.client.Found() {
		return s.found(n), nil
	}
	s.logger.Info("frequencies surveyed", zap.Ints("counts", counts))

	// A single-symbol secret is fully determined by the survey: the
	// uniform probe for that symbol already matched in full, so this
	// branch is only reachable if the oracle misbehaved. Report the
	// trivial answer without further queries regardless.
	if idx := soleSymbol(counts); idx >= 0 {
		return &Result{
			ID:      s.id,
			Status:  StatusFound,
			Secret:  s.alphabet.Repeat(idx, n),
			Length:  n,
			Queries: s.client.Queries(),
		}, nil
	}

	candidate := buildInitialCandidate(s.alphabet, counts, n)
	baseline := s.client.Query(string(candidate))
	if s.client.Found() {
		return s.found(n), nil
	}
	s.logger.Info("initial candidate placed",
		zap.String("candidate", string(candidate)),
		zap.Int("baseline", baseline))

	st := newRefineState(s.alphabet, counts, candidate, baseline)
	if err := s.refine(st); err != nil {
		return &Result{
			ID:      s.id,
			Status:  StatusStalled,
			Secret:  string(st.candidate),
			Length:  n,
			Queries: s.client.Queries(),
		}, err
	}
	if s.client.Found() {
		return s.found(n), nil
	}

	// Every position is confirmed but the terminal probe never fired;
	// the confirmed candidate is the secret.
	return &Result{
		ID:      s.id,
		Status:  StatusFound,
		Secret:  string(st.candidate),
		Length:  n,
		Queries: s.client.Queries(),
	}, nil
}

func (s *Session) found(n int) *Result {
	return &Result{
		ID:      s.id,
		Status:  StatusFound,
		Secret:  s.client.Secret(),
		Length:  n,
		Queries: s.client.Queries(),
	}
}

// soleSymbol returns the index of the only symbol with a non-zero count,
// or -1 if zero or several symbols are present.
func soleSymbol(counts []int) int {
	idx := -1
	for i, c := range counts {
		if c == 0 {
			continue
		}
		if idx >= 0 {
			return -1
		}
		idx = i
	}
	return idx
}
