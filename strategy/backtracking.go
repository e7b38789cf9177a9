package strategy

import (
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/steveroseik/scribematch/internal/graph"
	"github.com/steveroseik/scribematch/types"
)

// DefaultMaxAttempts is the restart budget used when none is configured.
//
// The cap is a hard upper bound on total work, which makes Search
// effectively always-terminating and makes the overall result for an
// infeasible instance deterministic in aggregate even though individual
// attempts are randomized.
const DefaultMaxAttempts = 100

// Backtracking implements randomized depth-first backtracking search with
// bounded restarts.
//
// Each attempt draws a fresh random writer order and recursively assigns
// targets writer by writer, undoing tentative assignments on dead ends.
// A failed attempt is discarded wholesale and the next one starts from a
// new shuffle.
type Backtracking struct {
	maxAttempts int

	seed   uint64
	seeded bool

	calls atomic.Uint64
}

var _ types.SearchStrategy = (*Backtracking)(nil)

// Option configures a Backtracking strategy.
type Option func(*Backtracking)

// WithMaxAttempts sets the restart budget.
//
// Values below 1 are ignored and the default is kept.
func WithMaxAttempts(attempts int) Option {
	return func(b *Backtracking) {
		if attempts >= 1 {
			b.maxAttempts = attempts
		}
	}
}

// WithSeed makes the strategy deterministic: every Search call derives its
// randomness from the given seed alone, so a fixed seed reproduces a fixed
// search trace. Intended for tests; production use normally leaves the
// strategy unseeded.
func WithSeed(seed uint64) Option {
	return func(b *Backtracking) {
		b.seed = seed
		b.seeded = true
	}
}

// NewBacktracking creates a backtracking strategy.
//
// Parameters:
//   - opts: Optional configuration (WithMaxAttempts, WithSeed)
//
// Returns:
//   - *Backtracking: Initialized strategy, safe for concurrent Search calls
//
// Example:
//
//	s := strategy.NewBacktracking(strategy.WithMaxAttempts(200))
//	engine, err := scribematch.New(nil, scribematch.WithStrategy(s))
func NewBacktracking(opts ...Option) *Backtracking {
	b := &Backtracking{maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Search attempts to construct a full valid assignment set for the roster.
//
// Up to the configured number of independent attempts run; each shuffles
// the writer order and backtracks over candidates, trying preferred targets
// before neutral ones within each writer. The first complete attempt wins
// and its per-writer assignments are flattened into an edge list in roster
// order.
//
// Parameters:
//   - participants: Roster snapshot (read-only)
//   - targetsPerPlayer: Required writer and target degree
//
// Returns:
//   - []types.Assignment: Complete edge list, or nil on failure
//   - error: types.ErrNoSolution when all attempts were exhausted
func (b *Backtracking) Search(participants []types.Participant, targetsPerPlayer int) ([]types.Assignment, error) {
	g := graph.Build(participants)
	if g.Len() < 2 || targetsPerPlayer < 1 {
		return nil, types.ErrNoSolution
	}

	rng := b.newRand()
	for range b.maxAttempts {
		st := newSearchState(g, targetsPerPlayer)
		order := rng.Perm(g.Len())
		if st.solve(order, 0, rng) {
			return st.edges(), nil
		}
		// Attempt discarded wholesale; next one reshuffles from scratch.
	}

	return nil, types.ErrNoSolution
}

// newRand builds the per-call random source. Seeded strategies restart the
// generator identically on every call; unseeded ones mix the clock with a
// per-call counter so concurrent searches do not share a stream.
func (b *Backtracking) newRand() *rand.Rand {
	if b.seeded {
		return rand.New(rand.NewPCG(b.seed, 0))
	}

	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), b.calls.Add(1)))
}

// searchState holds the mutable bookkeeping of one attempt: the targets
// tentatively assigned to each writer and each target's incoming count.
type searchState struct {
	g        *graph.Graph
	n        int
	assigned [][]int
	incoming []int
}

func newSearchState(g *graph.Graph, targetsPerPlayer int) *searchState {
	return &searchState{
		g:        g,
		n:        targetsPerPlayer,
		assigned: make([][]int, g.Len()),
		incoming: make([]int, g.Len()),
	}
}

// solve fills writers in order[pos:] recursively. A writer is revisited
// (same pos) until it holds n targets, then the search advances. Returning
// false unwinds to the previous tentative assignment.
func (s *searchState) solve(order []int, pos int, rng *rand.Rand) bool {
	if pos == len(order) {
		return true
	}

	w := order[pos]
	if len(s.assigned[w]) == s.n {
		return s.solve(order, pos+1, rng)
	}

	preferred, neutral := s.candidates(w)
	shuffle(preferred, rng)
	shuffle(neutral, rng)

	for _, t := range append(preferred, neutral...) {
		s.assigned[w] = append(s.assigned[w], t)
		s.incoming[t]++

		if s.solve(order, pos, rng) {
			return true
		}

		s.assigned[w] = s.assigned[w][:len(s.assigned[w])-1]
		s.incoming[t]--
	}

	return false
}

// candidates returns the writer's assignable targets split into preferred
// and neutral groups. A target qualifies when it is not the writer itself,
// not excluded by the writer, not already assigned to this writer, and not
// yet at its incoming quota.
func (s *searchState) candidates(w int) (preferred, neutral []int) {
	for t := range s.g.Len() {
		if t == w || s.g.Excludes(w, t) || s.incoming[t] == s.n || s.holds(w, t) {
			continue
		}
		if s.g.Prefers(w, t) {
			preferred = append(preferred, t)
		} else {
			neutral = append(neutral, t)
		}
	}

	return preferred, neutral
}

func (s *searchState) holds(w, t int) bool {
	for _, have := range s.assigned[w] {
		if have == t {
			return true
		}
	}

	return false
}

// edges flattens the per-writer assignment lists into the output edge list,
// in roster order.
func (s *searchState) edges() []types.Assignment {
	out := make([]types.Assignment, 0, s.g.Len()*s.n)
	for w := range s.g.Len() {
		for _, t := range s.assigned[w] {
			out = append(out, types.Assignment{
				WriterID: s.g.ID(w),
				TargetID: s.g.ID(t),
			})
		}
	}

	return out
}

func shuffle(indices []int, rng *rand.Rand) {
	rng.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})
}
