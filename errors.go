package scribematch

import "github.com/steveroseik/scribematch/types"

// Sentinel errors returned by the Engine, re-exported from the types
// subpackage so callers can use errors.Is against either package.
var (
	// ErrInvalidConfig is returned by New when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrStrategyRequired is returned by New when a nil strategy is injected.
	ErrStrategyRequired = types.ErrStrategyRequired

	// ErrInsufficientParticipants is returned when the roster holds fewer
	// than two participants.
	ErrInsufficientParticipants = types.ErrInsufficientParticipants

	// ErrInvalidTargetCount is returned when targets per player is below one.
	ErrInvalidTargetCount = types.ErrInvalidTargetCount

	// ErrWriterStarved is returned when a participant has fewer valid
	// targets than required.
	ErrWriterStarved = types.ErrWriterStarved

	// ErrTargetStarved is returned when too few participants may write
	// about someone.
	ErrTargetStarved = types.ErrTargetStarved

	// ErrNoSolution is returned when the search exhausted its restart
	// budget without finding a complete assignment.
	ErrNoSolution = types.ErrNoSolution

	// ErrInvariantViolated is returned when a round fails post-hoc
	// verification.
	ErrInvariantViolated = types.ErrInvariantViolated
)
