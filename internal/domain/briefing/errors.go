package briefing

import "errors"

var (
	// ErrInvalidChannel is returned when a channel name is unknown.
	ErrInvalidChannel = errors.New("invalid channel")

	// ErrChannelWithoutItems is returned when creating a seen record for a
	// channel that only carries a cursor (sms).
	ErrChannelWithoutItems = errors.New("channel does not track per-item seen records")

	// ErrEmptyItemKey is returned when an item key is empty.
	ErrEmptyItemKey = errors.New("item key cannot be empty")
)
