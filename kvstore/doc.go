// Package kvstore persists and propagates assignment rounds through a NATS
// JetStream key-value bucket.
//
// It implements the storage/propagation collaborator role that the
// matchmaking engine deliberately externalizes: the engine computes a
// round, the caller publishes it here, and interested clients watch the
// round's key for real-time updates. The engine itself never imports this
// package.
//
// Rounds are stored as JSON under "<prefix>.<roundID>" keys. The KV
// bucket's revision numbers provide per-key version monotonicity, so a
// caller racing another publisher can detect that it lost by comparing
// revisions; last write wins at the bucket level.
package kvstore
