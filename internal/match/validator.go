package match

import (
	"github.com/steveroseik/scribematch/internal/graph"
	"github.com/steveroseik/scribematch/types"
)

// Validate checks the necessary degree conditions for a valid assignment to
// exist, without performing search.
//
// Checks run in a fixed order and the first violation is returned; the
// conflict analyzer is the component responsible for exhaustive diagnosis.
// A nil result does not guarantee feasibility: the combined constraint
// graph can still lack a global matching even when every per-participant
// degree bound holds (a Hall-style argument this validator deliberately
// does not attempt). Bounded search discovers those cases empirically.
//
// Parameters:
//   - g: Constraint graph built from the roster snapshot
//   - targetsPerPlayer: Required writer and target degree
//
// Returns:
//   - error: nil, or a *types.ValidationError wrapping the first violated
//     condition (ErrInsufficientParticipants, ErrInvalidTargetCount,
//     ErrWriterStarved, or ErrTargetStarved)
func Validate(g *graph.Graph, targetsPerPlayer int) error {
	if g.Len() < 2 {
		return &types.ValidationError{
			Reason: types.ErrInsufficientParticipants,
			Have:   g.Len(),
			Need:   2,
		}
	}
	if targetsPerPlayer < 1 {
		return &types.ValidationError{
			Reason: types.ErrInvalidTargetCount,
			Have:   targetsPerPlayer,
			Need:   1,
		}
	}

	for w := range g.Len() {
		if g.ValidTargets(w) < targetsPerPlayer {
			return &types.ValidationError{
				Reason:          types.ErrWriterStarved,
				ParticipantID:   g.ID(w),
				ParticipantName: g.Name(w),
				Have:            g.ValidTargets(w),
				Need:            targetsPerPlayer,
			}
		}
	}

	for t := range g.Len() {
		if g.ValidWriters(t) < targetsPerPlayer {
			return &types.ValidationError{
				Reason:          types.ErrTargetStarved,
				ParticipantID:   g.ID(t),
				ParticipantName: g.Name(t),
				Have:            g.ValidWriters(t),
				Need:            targetsPerPlayer,
			}
		}
	}

	return nil
}
