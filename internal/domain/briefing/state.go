// Package briefing holds the per-channel briefing cursor and the dedup
// ledger of already-surfaced items.
package briefing

import (
	"time"

	"briefing/internal/domain/channel"
)

// ChannelState tracks when a channel was last briefed. The cursor only
// ever moves forward; attempts to move it backward are silently ignored
// so concurrent markers converge on the maximum timestamp.
type ChannelState struct {
	channel     channel.Channel
	lastBriefed *time.Time
	updatedAt   time.Time
}

func NewChannelState(ch channel.Channel) (*ChannelState, error) {
	if !ch.IsValid() {
		return nil, ErrInvalidChannel
	}
	return &ChannelState{
		channel:   ch,
		updatedAt: time.Now().UTC(),
	}, nil
}

func ReconstructChannelState(ch channel.Channel, lastBriefed *time.Time, updatedAt time.Time) (*ChannelState, error) {
	if !ch.IsValid() {
		return nil, ErrInvalidChannel
	}
	return &ChannelState{
		channel:     ch,
		lastBriefed: lastBriefed,
		updatedAt:   updatedAt,
	}, nil
}

func (s *ChannelState) Channel() channel.Channel {
	return s.channel
}

func (s *ChannelState) LastBriefed() *time.Time {
	return s.lastBriefed
}

func (s *ChannelState) UpdatedAt() time.Time {
	return s.updatedAt
}

// MarkBriefed advances the cursor to ts. A timestamp at or before the
// current cursor is a no-op, not an error; the return value reports
// whether the cursor actually moved.
func (s *ChannelState) MarkBriefed(ts time.Time) bool {
	ts = ts.UTC()
	if s.lastBriefed != nil && !ts.After(*s.lastBriefed) {
		return false
	}
	s.lastBriefed = &ts
	s.updatedAt = time.Now().UTC()
	return true
}

// Reset clears the cursor so the next briefing re-surfaces everything.
func (s *ChannelState) Reset() {
	s.lastBriefed = nil
	s.updatedAt = time.Now().UTC()
}

// IsStale reports whether the channel has not been briefed within the
// given window. A channel that was never briefed is always stale.
func (s *ChannelState) IsStale(window time.Duration, now time.Time) bool {
	if s.lastBriefed == nil {
		return true
	}
	return now.Sub(*s.lastBriefed) > window
}
