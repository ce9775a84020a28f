package briefing

import (
	"context"
	"time"

	"briefing/internal/domain/channel"
)

// StateRepository persists channel cursors. All writes are idempotent
// upserts so concurrent briefing runs on different machines converge
// without locks.
type StateRepository interface {
	// Get retrieves the cursor for a channel. Returns nil if the channel
	// has never been seeded.
	Get(ctx context.Context, ch channel.Channel) (*ChannelState, error)

	// GetAll retrieves every channel cursor in channel order.
	GetAll(ctx context.Context) ([]*ChannelState, error)

	// Seed inserts a row per channel if missing. Existing rows are untouched.
	Seed(ctx context.Context, channels []channel.Channel) error

	// MarkBriefed advances the cursor, never backward. A stale timestamp
	// is a silent no-op.
	MarkBriefed(ctx context.Context, ch channel.Channel, ts time.Time) error

	// Reset clears the cursor back to never-briefed.
	Reset(ctx context.Context, ch channel.Channel) error
}

// SeenRepository persists the dedup ledger. MarkSeen races from
// concurrent briefings resolve as already-applied, not as errors.
type SeenRepository interface {
	// Find retrieves a seen record. Returns nil (no error) if the item
	// was never marked.
	Find(ctx context.Context, ch channel.Channel, itemKey string) (*SeenRecord, error)

	// MarkSeen upserts a record. A second mark with a new version token
	// overwrites the token and briefed_at; an identical mark is a no-op.
	MarkSeen(ctx context.Context, record *SeenRecord) error

	// ListByChannel returns seen records, most recently briefed first.
	ListByChannel(ctx context.Context, ch channel.Channel, limit int) ([]*SeenRecord, error)

	// DeleteByChannel removes all seen records for a channel.
	DeleteByChannel(ctx context.Context, ch channel.Channel) error

	// PruneOlderThan removes records briefed before the cutoff and
	// returns how many were deleted.
	PruneOlderThan(ctx context.Context, ch channel.Channel, cutoff time.Time) (int64, error)
}

// Pref is an opaque key-value preference consumed by the orchestration
// layer. The core only stores it.
type Pref struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// PrefRepository persists briefing preferences.
type PrefRepository interface {
	GetAll(ctx context.Context) ([]Pref, error)
	Upsert(ctx context.Context, key, value string) error
	// Delete removes a preference and reports whether it existed.
	Delete(ctx context.Context, key string) (bool, error)
}

// Memory is the single opaque blob the orchestrator persists between
// runs. Last writer wins.
type Memory struct {
	Content   string
	UpdatedAt time.Time
}

// MemoryRepository persists the memory blob.
type MemoryRepository interface {
	// Get returns nil if no memory has been written yet.
	Get(ctx context.Context) (*Memory, error)
	Set(ctx context.Context, content string) error
}
