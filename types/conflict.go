package types

// SuggestionKind classifies a remediation suggestion.
type SuggestionKind string

const (
	// SuggestionRemoveAvoid proposes deleting one entry from the acting
	// participant's exclusion list.
	SuggestionRemoveAvoid SuggestionKind = "remove_avoid"

	// SuggestionAddPreference proposes adding one entry to the acting
	// participant's preference list. This never fixes infeasibility; it
	// reduces brittleness for participants with zero slack.
	SuggestionAddPreference SuggestionKind = "add_preference"
)

// Suggestion is one proposed edit to a participant's lists.
//
// The actor is the participant whose list would change; the subject is the
// counterpart named by the edit.
type Suggestion struct {
	Kind SuggestionKind `json:"kind"`

	ActorID   string `json:"actorId"`
	ActorName string `json:"actorName"`

	SubjectID   string `json:"subjectId"`
	SubjectName string `json:"subjectName"`

	// Reason is a human-readable justification embedding the relevant counts.
	Reason string `json:"reason"`
}

// ConflictReport explains why a roster is (or is close to being) infeasible
// and proposes minimal edits, ranked by the analyzer's fixed pass order.
//
// Reports are ephemeral diagnostics: the engine never persists them, and a
// report reflects only the roster snapshot it was computed from.
type ConflictReport struct {
	// Summary states the suggestion count and breakdown by kind, or, when
	// no suggestion was produced, that the infeasibility is not reducible
	// to a single-participant fix.
	Summary string `json:"summary"`

	// Suggestions is ordered: target-starvation fixes first, then
	// writer-starvation fixes, then near-boundary advisories.
	Suggestions []Suggestion `json:"suggestions"`

	// RosterFingerprint is a stable hash of the analyzed roster and target
	// count, for correlating reports with search runs in logs.
	RosterFingerprint uint64 `json:"rosterFingerprint"`
}

// CountByKind returns the number of suggestions of the given kind.
func (r *ConflictReport) CountByKind(kind SuggestionKind) int {
	count := 0
	for _, s := range r.Suggestions {
		if s.Kind == kind {
			count++
		}
	}

	return count
}
