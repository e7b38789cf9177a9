package kvstore

import "errors"

// Sentinel errors returned by the round store.
var (
	// ErrKVRequired is returned when the KV bucket handle is nil.
	ErrKVRequired = errors.New("KV bucket is required")

	// ErrRoundIDRequired is returned when a round ID is empty.
	ErrRoundIDRequired = errors.New("round ID is required")

	// ErrRoundNotFound is returned when no record exists for a round ID.
	ErrRoundNotFound = errors.New("round not found")

	// ErrPublishFailed is returned when writing a round to KV fails.
	ErrPublishFailed = errors.New("failed to publish round")

	// ErrDeleteFailed is returned when deleting a round from KV fails.
	ErrDeleteFailed = errors.New("failed to delete round")

	// ErrWatchFailed is returned when a KV watcher cannot be established.
	ErrWatchFailed = errors.New("failed to watch round")
)
