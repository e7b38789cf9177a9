package types

import "fmt"

// Assignment is one directed writing edge: Writer writes about Target.
//
// A successful round is a set of assignments in which every participant
// appears as writer exactly TargetsPerPlayer times and as target exactly
// TargetsPerPlayer times.
type Assignment struct {
	// WriterID identifies the participant producing the text.
	WriterID string `json:"writerId"`

	// TargetID identifies the participant being written about.
	TargetID string `json:"targetId"`
}

// VerifyAssignments checks the full set of output invariants for a computed
// round against the roster it was computed from:
//
//   - every participant appears as writer exactly targetsPerPlayer times
//   - every participant appears as target exactly targetsPerPlayer times
//   - no self-assignment
//   - no duplicate (writer, target) pair
//   - no edge into a writer's exclusion set
//   - no edge references an unknown participant
//
// The engine runs this after every successful search; it is exported so
// callers can re-verify rounds loaded from storage against a current roster
// snapshot.
//
// Returns:
//   - error: nil if all invariants hold, otherwise an error wrapping
//     ErrInvariantViolated that names the first violation found
func VerifyAssignments(participants []Participant, targetsPerPlayer int, assignments []Assignment) error {
	byID := make(map[string]Participant, len(participants))
	for _, p := range participants {
		byID[p.ID] = p
	}

	written := make(map[string]int, len(participants))
	received := make(map[string]int, len(participants))
	seen := make(map[Assignment]bool, len(assignments))

	for _, a := range assignments {
		writer, ok := byID[a.WriterID]
		if !ok {
			return fmt.Errorf("%w: unknown writer %q", ErrInvariantViolated, a.WriterID)
		}
		if _, ok := byID[a.TargetID]; !ok {
			return fmt.Errorf("%w: unknown target %q", ErrInvariantViolated, a.TargetID)
		}
		if a.WriterID == a.TargetID {
			return fmt.Errorf("%w: self-assignment for %q", ErrInvariantViolated, a.WriterID)
		}
		if seen[a] {
			return fmt.Errorf("%w: duplicate edge %q -> %q", ErrInvariantViolated, a.WriterID, a.TargetID)
		}
		seen[a] = true
		if writer.Excludes(a.TargetID) {
			return fmt.Errorf("%w: edge %q -> %q violates writer's exclusion list",
				ErrInvariantViolated, a.WriterID, a.TargetID)
		}
		written[a.WriterID]++
		received[a.TargetID]++
	}

	for _, p := range participants {
		if written[p.ID] != targetsPerPlayer {
			return fmt.Errorf("%w: participant %q writes %d times, want %d",
				ErrInvariantViolated, p.ID, written[p.ID], targetsPerPlayer)
		}
		if received[p.ID] != targetsPerPlayer {
			return fmt.Errorf("%w: participant %q is written about %d times, want %d",
				ErrInvariantViolated, p.ID, received[p.ID], targetsPerPlayer)
		}
	}

	return nil
}
