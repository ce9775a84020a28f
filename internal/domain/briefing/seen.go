package briefing

import (
	"time"

	"briefing/internal/domain/channel"
)

// SeenRecord marks an item as already surfaced in a briefing. For
// channels whose items mutate (zendesk tickets, gchat spaces) the
// version token captures the remote state at briefing time; a different
// token later makes the item new again.
type SeenRecord struct {
	channel      channel.Channel
	itemKey      string
	versionToken string
	briefedAt    time.Time
}

func NewSeenRecord(ch channel.Channel, itemKey, versionToken string) (*SeenRecord, error) {
	if !ch.IsValid() {
		return nil, ErrInvalidChannel
	}
	if !ch.TracksItems() {
		return nil, ErrChannelWithoutItems
	}
	if itemKey == "" {
		return nil, ErrEmptyItemKey
	}
	return &SeenRecord{
		channel:      ch,
		itemKey:      itemKey,
		versionToken: versionToken,
		briefedAt:    time.Now().UTC(),
	}, nil
}

func ReconstructSeenRecord(ch channel.Channel, itemKey, versionToken string, briefedAt time.Time) *SeenRecord {
	return &SeenRecord{
		channel:      ch,
		itemKey:      itemKey,
		versionToken: versionToken,
		briefedAt:    briefedAt,
	}
}

func (r *SeenRecord) Channel() channel.Channel {
	return r.channel
}

func (r *SeenRecord) ItemKey() string {
	return r.itemKey
}

func (r *SeenRecord) VersionToken() string {
	return r.versionToken
}

func (r *SeenRecord) BriefedAt() time.Time {
	return r.briefedAt
}

// SupersededBy reports whether an incoming version token makes this
// record stale, i.e. the item should be surfaced again. Channels
// without version tokens never re-surface a seen item.
func (r *SeenRecord) SupersededBy(versionToken string) bool {
	if !r.channel.HasVersionToken() {
		return false
	}
	return versionToken != "" && versionToken != r.versionToken
}
