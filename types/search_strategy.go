package types

// SearchStrategy computes a complete assignment round for a roster.
//
// The built-in strategy is randomized depth-first backtracking with bounded
// restarts (strategy.Backtracking); custom strategies may substitute any
// algorithm as long as the output satisfies VerifyAssignments for the given
// roster and target count.
//
// Strategy implementations should:
//   - Treat the roster as read-only
//   - Be safe for concurrent Search calls (the engine is)
//   - Return ErrNoSolution when search effort is exhausted, never a
//     partial or best-effort result
type SearchStrategy interface {
	// Search attempts to construct a full valid assignment set.
	//
	// Parameters:
	//   - participants: Roster snapshot with preference/exclusion lists
	//   - targetsPerPlayer: Number of targets per writer (and per target)
	//
	// Returns:
	//   - []Assignment: Complete edge list satisfying all output invariants
	//   - error: ErrNoSolution when no complete assignment was found
	Search(participants []Participant, targetsPerPlayer int) ([]Assignment, error)
}
