package match

import (
	"fmt"
	"math"

	"github.com/steveroseik/scribematch/types"
)

// Safety margins applied by the advisor. These are deliberate design
// constants, not tunables: the 80% avoid margin leaves headroom for the
// higher-order infeasibilities the validator cannot detect, and the 60%
// preference ratio keeps preference lists meaningful without letting them
// cover the whole roster.
const (
	avoidSafetyRatio     = 0.8
	preferenceCoverRatio = 0.6
)

// SuggestConfig derives safe upper bounds for preference- and
// exclusion-list sizes from the roster size and target count, with a
// reasoning trail explaining each number.
//
// The advisor is independent of any run: it never consults assignment
// state, and it may be called before a roster exists at all.
//
// Rules, in priority order:
//  1. Degenerate input (fewer than 2 participants, or a target count below
//     1) returns zero bounds with an explanatory entry.
//  2. Exactly 2 participants returns maxPreferences=1, maxAvoids=0: with a
//     single counterpart, exclusion is impossible and preference trivial.
//  3. Otherwise maxAvoids is 80% (floored) of the theoretical ceiling
//     participantCount-1-targetsPerPlayer, and maxPreferences is 60%
//     (rounded up) of participantCount-1, capped at participantCount-1.
func SuggestConfig(participantCount, targetsPerPlayer int) types.ConfigAdvice {
	if participantCount < 2 || targetsPerPlayer < 1 {
		return types.ConfigAdvice{
			Reasoning: []string{fmt.Sprintf(
				"no recommendation: need at least 2 participants and a target count of at least 1 (got %d participants, target count %d)",
				participantCount, targetsPerPlayer)},
		}
	}

	if participantCount == 2 {
		return types.ConfigAdvice{
			MaxPreferences: 1,
			MaxAvoids:      0,
			Reasoning: []string{
				"with 2 participants each writer has exactly one possible target, so no exclusion can be allowed",
				"a single preference slot already covers the only other participant",
			},
		}
	}

	others := participantCount - 1
	maxPossibleAvoids := max(0, others-targetsPerPlayer)

	advice := types.ConfigAdvice{
		MaxPreferences: min(int(math.Ceil(preferenceCoverRatio*float64(others))), others),
		MaxAvoids:      int(avoidSafetyRatio * float64(maxPossibleAvoids)),
	}
	advice.Reasoning = append(advice.Reasoning, fmt.Sprintf(
		"a writer with more than %d exclusions could not reach %d targets among %d other participants",
		maxPossibleAvoids, targetsPerPlayer, others))

	if maxPossibleAvoids == 0 {
		advice.MaxAvoids = 0
		advice.Reasoning = append(advice.Reasoning,
			"at this roster size and target count any exclusion would risk starving a writer, so none are allowed")
	} else {
		advice.Reasoning = append(advice.Reasoning, fmt.Sprintf(
			"suggesting %d exclusions (80%% of the %d ceiling) to leave margin for conflicts the pre-checks cannot see",
			advice.MaxAvoids, maxPossibleAvoids))
	}

	advice.Reasoning = append(advice.Reasoning, fmt.Sprintf(
		"suggesting %d preferences (60%% of the %d other participants) so preferences bias the draw without dictating it",
		advice.MaxPreferences, others))

	return advice
}
