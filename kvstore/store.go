package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/steveroseik/scribematch/internal/logging"
	"github.com/steveroseik/scribematch/types"
)

// RoundRecord is the persisted form of one completed matchmaking round.
type RoundRecord struct {
	// RoundID identifies the round within its game.
	RoundID string `json:"roundId"`

	// TargetsPerPlayer is the degree the round was computed for.
	TargetsPerPlayer int `json:"targetsPerPlayer"`

	// CreatedAt is when the round was published.
	CreatedAt time.Time `json:"createdAt"`

	// Assignments is the complete edge list for the round.
	Assignments []types.Assignment `json:"assignments"`
}

// Update is one change observed by a round watcher.
type Update struct {
	// Record is the new round content; nil when Deleted is true.
	Record *RoundRecord

	// Revision is the KV revision of this change.
	Revision uint64

	// Deleted reports that the round was deleted or purged.
	Deleted bool
}

// Config holds round store configuration.
type Config struct {
	// KV is the JetStream key-value bucket rounds are stored in. Required.
	KV jetstream.KeyValue

	// KeyPrefix prefixes every round key (default: "round").
	KeyPrefix string

	// Logger receives store events (default: no-op).
	Logger types.Logger
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if c.KV == nil {
		return ErrKVRequired
	}

	return nil
}

// SetDefaults applies default values for optional fields.
func (c *Config) SetDefaults() {
	if c.KeyPrefix == "" {
		c.KeyPrefix = "round"
	}
	if c.Logger == nil {
		c.Logger = logging.NewNop()
	}
}

// Store reads and writes assignment rounds in a NATS JetStream KV bucket.
//
// A Store is safe for concurrent use; all coordination is delegated to the
// bucket itself.
type Store struct {
	kv        jetstream.KeyValue
	keyPrefix string
	logger    types.Logger
}

// New creates a round store with validated configuration.
//
// Parameters:
//   - cfg: Store configuration (KV is required)
//
// Returns:
//   - *Store: Ready-to-use store
//   - error: Validation error if required fields are missing
//
// Example:
//
//	js, _ := jetstream.New(nc)
//	kv, _ := js.KeyValue(ctx, "scribematch-rounds")
//	store, err := kvstore.New(&kvstore.Config{KV: kv})
func New(cfg *Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.SetDefaults()

	return &Store{
		kv:        cfg.KV,
		keyPrefix: cfg.KeyPrefix,
		logger:    cfg.Logger,
	}, nil
}

// Publish writes a round record, overwriting any previous content for the
// same round ID.
//
// Parameters:
//   - ctx: Context for the KV operation
//   - record: Round to persist (RoundID must be set)
//
// Returns:
//   - uint64: KV revision of the written entry
//   - error: ErrRoundIDRequired, or a wrap of ErrPublishFailed
func (s *Store) Publish(ctx context.Context, record RoundRecord) (uint64, error) {
	if record.RoundID == "" {
		return 0, ErrRoundIDRequired
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(record)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}

	rev, err := s.kv.Put(ctx, s.key(record.RoundID), data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}

	s.logger.Info("round published",
		"round_id", record.RoundID,
		"edges", len(record.Assignments),
		"revision", rev)

	return rev, nil
}

// Load reads a round record.
//
// Parameters:
//   - ctx: Context for the KV operation
//   - roundID: Round to read
//
// Returns:
//   - *RoundRecord: The stored round
//   - uint64: KV revision of the entry
//   - error: ErrRoundNotFound when no record exists
func (s *Store) Load(ctx context.Context, roundID string) (*RoundRecord, uint64, error) {
	if roundID == "" {
		return nil, 0, ErrRoundIDRequired
	}

	entry, err := s.kv.Get(ctx, s.key(roundID))
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, 0, fmt.Errorf("%w: %q", ErrRoundNotFound, roundID)
		}

		return nil, 0, fmt.Errorf("failed to load round %q: %w", roundID, err)
	}

	var record RoundRecord
	if err := json.Unmarshal(entry.Value(), &record); err != nil {
		return nil, 0, fmt.Errorf("failed to decode round %q: %w", roundID, err)
	}

	return &record, entry.Revision(), nil
}

// Delete removes a round record. Deleting a round that does not exist is
// not an error.
func (s *Store) Delete(ctx context.Context, roundID string) error {
	if roundID == "" {
		return ErrRoundIDRequired
	}

	if err := s.kv.Delete(ctx, s.key(roundID)); err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return fmt.Errorf("%w: %q: %w", ErrDeleteFailed, roundID, err)
	}

	s.logger.Debug("round deleted", "round_id", roundID)

	return nil
}

// Watch streams changes to one round until the context is canceled.
//
// The current content, if any, is delivered first, then every subsequent
// publish or delete. The returned channel is closed when the context ends
// or the underlying watcher stops.
//
// Parameters:
//   - ctx: Context bounding the watch
//   - roundID: Round to observe
//
// Returns:
//   - <-chan Update: Ordered stream of round changes
//   - error: ErrRoundIDRequired, or a wrap of ErrWatchFailed
func (s *Store) Watch(ctx context.Context, roundID string) (<-chan Update, error) {
	if roundID == "" {
		return nil, ErrRoundIDRequired
	}

	watcher, err := s.kv.Watch(ctx, s.key(roundID))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrWatchFailed, roundID, err)
	}

	updates := make(chan Update)
	go func() {
		defer close(updates)
		defer func() { _ = watcher.Stop() }()

		for {
			select {
			case <-ctx.Done():
				return
			case entry, ok := <-watcher.Updates():
				if !ok {
					return
				}
				// nil marks the end of the initial replay.
				if entry == nil {
					continue
				}

				update, err := s.toUpdate(entry)
				if err != nil {
					s.logger.Warn("skipping malformed round entry",
						"round_id", roundID, "revision", entry.Revision(), "error", err)
					continue
				}

				select {
				case updates <- update:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return updates, nil
}

func (s *Store) toUpdate(entry jetstream.KeyValueEntry) (Update, error) {
	switch entry.Operation() {
	case jetstream.KeyValueDelete, jetstream.KeyValuePurge:
		return Update{Revision: entry.Revision(), Deleted: true}, nil
	default:
		var record RoundRecord
		if err := json.Unmarshal(entry.Value(), &record); err != nil {
			return Update{}, err
		}

		return Update{Record: &record, Revision: entry.Revision()}, nil
	}
}

func (s *Store) key(roundID string) string {
	return s.keyPrefix + "." + roundID
}
