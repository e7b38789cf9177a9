// Package match implements the feasibility validator, the conflict
// analyzer, and the config advisor over the arena-indexed constraint graph.
//
// All three are pure functions of their inputs: no mutation, no I/O, no
// state retained across calls. The search itself lives in the public
// strategy package so callers can substitute their own algorithm.
package match
