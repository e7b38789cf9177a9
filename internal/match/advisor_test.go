package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuggestConfig_DegenerateInput(t *testing.T) {
	t.Run("single participant", func(t *testing.T) {
		advice := SuggestConfig(1, 1)

		require.Zero(t, advice.MaxPreferences)
		require.Zero(t, advice.MaxAvoids)
		require.Len(t, advice.Reasoning, 1)
		require.Contains(t, advice.Reasoning[0], "no recommendation")
	})

	t.Run("zero target count", func(t *testing.T) {
		advice := SuggestConfig(5, 0)

		require.Zero(t, advice.MaxPreferences)
		require.Zero(t, advice.MaxAvoids)
		require.Contains(t, advice.Reasoning[0], "no recommendation")
	})
}

func TestSuggestConfig_TwoParticipants(t *testing.T) {
	advice := SuggestConfig(2, 1)

	require.Equal(t, 1, advice.MaxPreferences)
	require.Equal(t, 0, advice.MaxAvoids)
	require.Len(t, advice.Reasoning, 2)
}

func TestSuggestConfig_General(t *testing.T) {
	t.Run("ten participants three targets", func(t *testing.T) {
		advice := SuggestConfig(10, 3)

		// Ceiling is 10-1-3=6 avoids; 80% floored is 4.
		require.Equal(t, 4, advice.MaxAvoids)
		// 60% of 9 others, rounded up, is 6.
		require.Equal(t, 6, advice.MaxPreferences)
		require.NotEmpty(t, advice.Reasoning)
	})

	t.Run("zero avoid ceiling forces zero avoids", func(t *testing.T) {
		// 5 participants with 4 targets each: every other participant is
		// needed, so exclusions cannot be afforded at all.
		advice := SuggestConfig(5, 4)

		require.Equal(t, 0, advice.MaxAvoids)
		require.Equal(t, 3, advice.MaxPreferences)

		var found bool
		for _, r := range advice.Reasoning {
			if r == "at this roster size and target count any exclusion would risk starving a writer, so none are allowed" {
				found = true
			}
		}
		require.True(t, found, "expected the zero-ceiling reasoning entry")
	})

	t.Run("preferences never exceed roster minus one", func(t *testing.T) {
		advice := SuggestConfig(3, 1)

		// 60% of 2 others rounds up to 2, already at the roster-1 cap.
		require.Equal(t, 2, advice.MaxPreferences)
		// 80% of the 1-avoid ceiling floors to 0.
		require.Equal(t, 0, advice.MaxAvoids)
	})
}
