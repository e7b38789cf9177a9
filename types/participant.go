package types

import "slices"

// Participant is one member of the writing roster.
//
// The engine treats ID as the sole identity; Name is only echoed back in
// diagnostics and never influences matching. Preferences are a soft bias
// toward specific targets, Exclusions a hard constraint against them. When
// the same identity appears in both lists the exclusion wins; a
// participant's own ID in either list is ignored.
type Participant struct {
	// ID uniquely and stably identifies the participant.
	ID string `json:"id"`

	// Name is a display name used in diagnostics and suggestions.
	Name string `json:"name"`

	// Preferences lists participant IDs this writer would like to be
	// assigned as targets (soft).
	Preferences []string `json:"preferences,omitempty"`

	// Exclusions lists participant IDs this writer must never be assigned
	// as targets (hard).
	Exclusions []string `json:"exclusions,omitempty"`
}

// Excludes reports whether the participant's exclusion list contains id.
func (p Participant) Excludes(id string) bool {
	return slices.Contains(p.Exclusions, id)
}

// Prefers reports whether the participant's preference list contains id and
// the exclusion list does not. Exclusion is authoritative for a pair listed
// in both.
func (p Participant) Prefers(id string) bool {
	return slices.Contains(p.Preferences, id) && !p.Excludes(id)
}

// GameConfig holds the per-round parameters a caller enforces when
// participants edit their lists.
//
// TargetsPerPlayer is consumed by the engine on every operation. The two
// caps are advisory: the engine never rejects rosters that exceed them, but
// the Config Advisor computes safe values for them via SuggestConfig.
type GameConfig struct {
	// TargetsPerPlayer is the number of targets each writer receives, and
	// the number of times each participant is written about.
	TargetsPerPlayer int `json:"targetsPerPlayer"`

	// MaxPreferences caps how many entries a preference list may hold.
	MaxPreferences int `json:"maxPreferences"`

	// MaxAvoids caps how many entries an exclusion list may hold.
	MaxAvoids int `json:"maxAvoids"`
}
