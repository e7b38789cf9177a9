package scribematch

import (
	"fmt"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/steveroseik/scribematch/internal/graph"
	"github.com/steveroseik/scribematch/internal/logging"
	"github.com/steveroseik/scribematch/internal/match"
	"github.com/steveroseik/scribematch/internal/metrics"
	"github.com/steveroseik/scribematch/strategy"
	"github.com/steveroseik/scribematch/types"
)

// Engine exposes the four matchmaking operations over roster snapshots.
//
// An Engine holds no assignment state: every operation recomputes from the
// roster it is handed, and concurrent invocations are safe as long as each
// caller passes its own roster copy. The only mutable state is the conflict
// report memoization cache, which is keyed by a content fingerprint and
// therefore insensitive to call interleaving.
type Engine struct {
	cfg Config

	strategy Strategy
	logger   Logger
	metrics  MetricsCollector

	reports *xsync.Map[uint64, *types.ConflictReport]
}

// New creates an Engine with validated configuration.
//
// Parameters:
//   - cfg: Engine configuration; nil means DefaultConfig()
//   - opts: Optional dependencies (WithStrategy, WithLogger, WithMetrics)
//
// Returns:
//   - *Engine: Ready-to-use engine
//   - error: Configuration validation error
//
// Example:
//
//	engine, err := scribematch.New(&scribematch.Config{MaxAttempts: 200})
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(cfg *Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		def := DefaultConfig()
		cfg = &def
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.SetDefaults()

	o := engineOptions{
		logger:  logging.NewNop(),
		metrics: metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.strategy == nil {
		o.strategy = strategy.NewBacktracking(strategy.WithMaxAttempts(cfg.MaxAttempts))
	}

	return &Engine{
		cfg:      *cfg,
		strategy: o.strategy,
		logger:   o.logger,
		metrics:  o.metrics,
		reports:  xsync.NewMap[uint64, *types.ConflictReport](),
	}, nil
}

// Validate checks whether a valid assignment can possibly exist for the
// roster, without searching.
//
// The check is necessary but not sufficient: a nil result still permits
// FindAssignment to fail with ErrNoSolution on higher-order conflicts.
//
// Parameters:
//   - participants: Roster snapshot (read-only for the duration of the call)
//   - targetsPerPlayer: Required writer and target degree
//
// Returns:
//   - error: nil, or a *types.ValidationError identifying the first
//     violated condition and the offending participant
func (e *Engine) Validate(participants []Participant, targetsPerPlayer int) error {
	return e.validate(graph.Build(participants), targetsPerPlayer)
}

// FindAssignment attempts to construct a complete assignment round.
//
// The validator runs first; a rejection is returned as-is without starting
// the search. On success the result is re-verified against the output
// invariants before being handed back, so a buggy custom strategy cannot
// leak an invalid round to the caller.
//
// The contract is all-or-nothing: the round is either complete and valid or
// absent. ErrNoSolution after a passing validation indicates a higher-order
// infeasibility; retrying with the same inputs is expected to fail again.
//
// Parameters:
//   - participants: Roster snapshot (read-only for the duration of the call)
//   - targetsPerPlayer: Required writer and target degree
//
// Returns:
//   - []Assignment: Complete edge list satisfying all invariants
//   - error: Validation error, ErrNoSolution, or ErrInvariantViolated
func (e *Engine) FindAssignment(participants []Participant, targetsPerPlayer int) ([]Assignment, error) {
	g := graph.Build(participants)
	if err := e.validate(g, targetsPerPlayer); err != nil {
		return nil, err
	}

	start := time.Now()
	assignments, err := e.strategy.Search(participants, targetsPerPlayer)
	elapsed := time.Since(start)

	e.metrics.SearchCompleted(err == nil, elapsed)
	if err != nil {
		e.logger.Info("search exhausted without a solution",
			"roster", g.Fingerprint(targetsPerPlayer),
			"participants", len(participants),
			"targets_per_player", targetsPerPlayer,
			"elapsed", elapsed)

		return nil, err
	}

	if err := types.VerifyAssignments(participants, targetsPerPlayer, assignments); err != nil {
		return nil, fmt.Errorf("strategy produced an invalid round: %w", err)
	}

	e.logger.Debug("assignment round found",
		"roster", g.Fingerprint(targetsPerPlayer),
		"edges", len(assignments),
		"elapsed", elapsed)

	return assignments, nil
}

// AnalyzeConflicts explains why the roster is (or is close to being)
// infeasible and proposes minimal edits.
//
// The analysis is a pure function of (roster, target count); results are
// memoized by roster fingerprint unless disabled in the configuration. It
// performs no search and is safe to call speculatively, though it is
// intended for use after Validate or FindAssignment has failed.
//
// Parameters:
//   - participants: Roster snapshot (read-only for the duration of the call)
//   - targetsPerPlayer: Required writer and target degree
//
// Returns:
//   - *ConflictReport: Summary plus ranked suggestions (never nil)
func (e *Engine) AnalyzeConflicts(participants []Participant, targetsPerPlayer int) *ConflictReport {
	g := graph.Build(participants)

	if !e.cfg.DisableReportCache {
		if report, ok := e.reports.Load(g.Fingerprint(targetsPerPlayer)); ok {
			e.metrics.ConflictReportBuilt(len(report.Suggestions), true)
			return report
		}
	}

	report := match.Analyze(g, targetsPerPlayer)
	if !e.cfg.DisableReportCache {
		e.reports.Store(report.RosterFingerprint, report)
	}

	e.metrics.ConflictReportBuilt(len(report.Suggestions), false)
	e.logger.Debug("conflict report built",
		"roster", report.RosterFingerprint,
		"suggestions", len(report.Suggestions))

	return report
}

// SuggestConfig derives safe default caps for preference- and
// exclusion-list sizes from the roster size and target count.
//
// The advisor is independent of any run and never consults assignment
// state; see types.ConfigAdvice for the reasoning trail it returns.
func (e *Engine) SuggestConfig(participantCount, targetsPerPlayer int) ConfigAdvice {
	return match.SuggestConfig(participantCount, targetsPerPlayer)
}

func (e *Engine) validate(g *graph.Graph, targetsPerPlayer int) error {
	err := match.Validate(g, targetsPerPlayer)
	if err != nil {
		e.metrics.ValidationFailed(err.Error())
		e.logger.Debug("roster failed validation", "reason", err.Error())
	}

	return err
}
