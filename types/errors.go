package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the scribematch library.
//
// These provide type-safe error checking via errors.Is() and errors.As().
// Components wrap sentinels with context using fmt.Errorf("...: %w", err);
// validation failures additionally carry structured detail through
// ValidationError.

// Engine errors - public API errors returned by the Engine.
var (
	// ErrInvalidConfig is returned when the engine configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrStrategyRequired is returned when a nil search strategy is injected.
	ErrStrategyRequired = errors.New("search strategy is required")
)

// Validator errors - structural infeasibility detected before search.
var (
	// ErrInsufficientParticipants is returned when the roster holds fewer
	// than two participants.
	ErrInsufficientParticipants = errors.New("insufficient participants")

	// ErrInvalidTargetCount is returned when targets per player is below one.
	ErrInvalidTargetCount = errors.New("invalid target count")

	// ErrWriterStarved is returned when a participant has fewer valid
	// targets than targets per player.
	ErrWriterStarved = errors.New("writer starved")

	// ErrTargetStarved is returned when a participant is excluded by too
	// many others to be written about targets-per-player times.
	ErrTargetStarved = errors.New("target starved")
)

// Search errors - outcomes of the assignment search.
var (
	// ErrNoSolution is returned when every restart attempt was exhausted
	// without finding a complete assignment. This is an expected outcome for
	// jointly infeasible constraints, not a programming error.
	ErrNoSolution = errors.New("no solution found")
)

// Verification errors.
var (
	// ErrInvariantViolated is returned by VerifyAssignments when a computed
	// or loaded round breaks an output invariant.
	ErrInvariantViolated = errors.New("assignment invariant violated")
)

// ValidationError carries the structured detail behind a validator failure:
// which sentinel condition fired, the offending participant, and the
// have/need counts, so callers can render an actionable message instead of
// a generic error.
//
// ParticipantID and ParticipantName are empty for the roster-level
// conditions (ErrInsufficientParticipants, ErrInvalidTargetCount).
type ValidationError struct {
	// Reason is the violated sentinel condition.
	Reason error

	// ParticipantID identifies the starved participant, if any.
	ParticipantID string

	// ParticipantName is the starved participant's display name, if any.
	ParticipantName string

	// Have is the observed count (participants, target count, or valid
	// counterparts depending on Reason).
	Have int

	// Need is the minimum count required by the violated condition.
	Need int
}

// Error formats the violation with its counts.
func (e *ValidationError) Error() string {
	switch e.Reason {
	case ErrInsufficientParticipants:
		return fmt.Sprintf("%v: have %d participants, need at least %d", e.Reason, e.Have, e.Need)
	case ErrInvalidTargetCount:
		return fmt.Sprintf("%v: targets per player is %d, need at least %d", e.Reason, e.Have, e.Need)
	case ErrWriterStarved:
		return fmt.Sprintf("%v: %s (%s) has %d valid targets, needs %d",
			e.Reason, e.ParticipantName, e.ParticipantID, e.Have, e.Need)
	case ErrTargetStarved:
		return fmt.Sprintf("%v: only %d participants may write about %s (%s), needs %d",
			e.Reason, e.Have, e.ParticipantName, e.ParticipantID, e.Need)
	}

	return fmt.Sprintf("%v (have %d, need %d)", e.Reason, e.Have, e.Need)
}

// Unwrap exposes the sentinel condition to errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Reason
}
