// Package types contains the shared types and interfaces used across the
// scribematch library.
//
// Placing these definitions in a leaf package lets internal packages depend
// on them without importing the root scribematch package, which re-exports
// the public subset via type aliases. This avoids import cycles while still
// providing a convenient scribematch.Participant, scribematch.Logger, etc.
// for users.
package types
