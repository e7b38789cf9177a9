// Package scribematch assigns writing targets within a roster of
// participants so that every participant writes about exactly N others and
// is written about exactly N times, honoring per-writer exclusion lists
// (hard) and preference lists (soft).
//
// The engine is a pure function of its inputs: no I/O, no storage, no state
// retained between invocations. It exposes four operations:
//
//   - Validate: fast necessary-condition feasibility check
//   - FindAssignment: randomized backtracking search with bounded restarts
//   - AnalyzeConflicts: ranked minimal-edit suggestions when a roster is
//     (or is nearly) infeasible
//   - SuggestConfig: safe default caps for preference/exclusion list sizes
//
// # Quick Start
//
//	engine, err := scribematch.New(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	assignments, err := engine.FindAssignment(roster, 2)
//	if errors.Is(err, scribematch.ErrNoSolution) {
//	    report := engine.AnalyzeConflicts(roster, 2)
//	    // surface report.Summary and report.Suggestions to an operator
//	}
//
// # Failure Semantics
//
// Search failure is an expected outcome, not an operational error: when the
// constraints are jointly infeasible, FindAssignment returns ErrNoSolution
// after exhausting its restart budget, and never a partial round. Validator
// rejections carry structured detail via types.ValidationError (offending
// participant, have/need counts) so callers can render actionable messages.
//
// # Collaborators
//
// Persistence and real-time propagation of rounds are external concerns by
// design. The kvstore subpackage ships a NATS JetStream KV implementation
// of that collaborator role; the engine itself never touches it.
package scribematch
