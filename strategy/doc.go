// Package strategy provides built-in search strategy implementations.
//
// A search strategy constructs a complete assignment round for a roster, or
// reports that no round was found within its search budget. The package
// ships one built-in:
//
//   - Backtracking: randomized depth-first backtracking with bounded
//     restarts and a soft bias toward preferred targets (the default)
//
// # Behavior
//
// Backtracking shuffles the writer order freshly on every restart, so the
// ordering affects only search efficiency and outcome distribution, never
// correctness. Within a writer, preferred candidates are tried before
// neutral ones, each group independently shuffled; if no preferred
// candidate leads to a complete round, neutral candidates are tried, so the
// bias never costs a solvable instance its solution.
//
// Failure is all-or-nothing: a strategy never returns a partial round.
// Exhausting the restart budget yields types.ErrNoSolution, which is an
// expected outcome for jointly infeasible constraints rather than an
// operational error.
//
// Custom strategies can be plugged into the engine by satisfying the
// types.SearchStrategy interface.
package strategy
