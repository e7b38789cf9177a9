package scribematch

import "github.com/steveroseik/scribematch/types"

// Re-export types from the types subpackage.
//
// Type aliases give users a stable scribematch.Participant,
// scribematch.Assignment, etc. while letting internal packages depend on
// the types package without importing the root package.
type (
	Participant    = types.Participant
	Assignment     = types.Assignment
	GameConfig     = types.GameConfig
	ConflictReport = types.ConflictReport
	Suggestion     = types.Suggestion
	SuggestionKind = types.SuggestionKind
	ConfigAdvice   = types.ConfigAdvice

	ValidationError = types.ValidationError
)

// Re-export interfaces from the types subpackage for convenience.
type (
	Strategy         = types.SearchStrategy
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

// Re-export suggestion kinds.
const (
	SuggestionRemoveAvoid   = types.SuggestionRemoveAvoid
	SuggestionAddPreference = types.SuggestionAddPreference
)
