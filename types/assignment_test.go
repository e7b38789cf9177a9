package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func pair() []Participant {
	return []Participant{{ID: "a"}, {ID: "b"}}
}

func TestVerifyAssignments(t *testing.T) {
	t.Run("accepts a valid round", func(t *testing.T) {
		err := VerifyAssignments(pair(), 1, []Assignment{
			{WriterID: "a", TargetID: "b"},
			{WriterID: "b", TargetID: "a"},
		})

		require.NoError(t, err)
	})

	t.Run("rejects self-assignment", func(t *testing.T) {
		err := VerifyAssignments(pair(), 1, []Assignment{
			{WriterID: "a", TargetID: "a"},
			{WriterID: "b", TargetID: "a"},
		})

		require.ErrorIs(t, err, ErrInvariantViolated)
		require.Contains(t, err.Error(), "self-assignment")
	})

	t.Run("rejects duplicate edges", func(t *testing.T) {
		roster := []Participant{{ID: "a"}, {ID: "b"}, {ID: "c"}}
		err := VerifyAssignments(roster, 2, []Assignment{
			{WriterID: "a", TargetID: "b"},
			{WriterID: "a", TargetID: "b"},
			{WriterID: "b", TargetID: "c"},
			{WriterID: "b", TargetID: "a"},
			{WriterID: "c", TargetID: "a"},
			{WriterID: "c", TargetID: "b"},
		})

		require.ErrorIs(t, err, ErrInvariantViolated)
		require.Contains(t, err.Error(), "duplicate")
	})

	t.Run("rejects excluded edges", func(t *testing.T) {
		roster := []Participant{{ID: "a", Exclusions: []string{"b"}}, {ID: "b"}}
		err := VerifyAssignments(roster, 1, []Assignment{
			{WriterID: "a", TargetID: "b"},
			{WriterID: "b", TargetID: "a"},
		})

		require.ErrorIs(t, err, ErrInvariantViolated)
		require.Contains(t, err.Error(), "exclusion")
	})

	t.Run("rejects wrong writer degree", func(t *testing.T) {
		err := VerifyAssignments(pair(), 1, []Assignment{
			{WriterID: "a", TargetID: "b"},
		})

		require.ErrorIs(t, err, ErrInvariantViolated)
	})

	t.Run("rejects unknown participants", func(t *testing.T) {
		err := VerifyAssignments(pair(), 1, []Assignment{
			{WriterID: "ghost", TargetID: "b"},
			{WriterID: "b", TargetID: "a"},
		})

		require.ErrorIs(t, err, ErrInvariantViolated)
		require.Contains(t, err.Error(), "unknown writer")
	})
}

func TestParticipant_ExclusionWinsOverPreference(t *testing.T) {
	p := Participant{ID: "a", Preferences: []string{"b", "c"}, Exclusions: []string{"b"}}

	require.True(t, p.Excludes("b"))
	require.False(t, p.Prefers("b"))
	require.True(t, p.Prefers("c"))
}

func TestValidationError_Messages(t *testing.T) {
	err := &ValidationError{
		Reason:          ErrWriterStarved,
		ParticipantID:   "a",
		ParticipantName: "Ada",
		Have:            1,
		Need:            2,
	}

	require.ErrorIs(t, err, ErrWriterStarved)
	require.Contains(t, err.Error(), "Ada")
	require.Contains(t, err.Error(), "has 1 valid targets, needs 2")
}
