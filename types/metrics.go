package types

import "time"

// MetricsCollector receives engine measurement callbacks.
//
// Implementations must be safe for concurrent use; the engine may run
// multiple invocations in parallel. A no-op collector is used when none is
// injected.
type MetricsCollector interface {
	// SearchCompleted records the outcome of one FindAssignment call.
	SearchCompleted(solved bool, elapsed time.Duration)

	// ValidationFailed records a validator rejection with the violated
	// condition's message.
	ValidationFailed(reason string)

	// ConflictReportBuilt records an AnalyzeConflicts call and whether the
	// report was served from the memoization cache.
	ConflictReportBuilt(suggestions int, cached bool)
}
