package types

// ConfigAdvice is the Config Advisor's recommendation for the advisory list
// caps, together with the reasoning behind each number.
type ConfigAdvice struct {
	// MaxPreferences is the suggested upper bound for preference-list size.
	MaxPreferences int `json:"maxPreferences"`

	// MaxAvoids is the suggested upper bound for exclusion-list size.
	MaxAvoids int `json:"maxAvoids"`

	// Reasoning is an ordered trail of explanatory strings suitable for
	// surfacing to an operator alongside the numbers.
	Reasoning []string `json:"reasoning"`
}
