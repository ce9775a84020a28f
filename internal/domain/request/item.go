package request

import (
	"fmt"
	"time"

	"briefing/internal/domain/channel"
)

// Item links a request to one item in one channel. Items are owned by
// their request and removed with it.
type Item struct {
	id        uint
	requestID uint
	channel   channel.Channel
	itemID    string
	label     string
	addedAt   time.Time
}

func newItem(requestID uint, ch channel.Channel, itemID, label string) *Item {
	return &Item{
		requestID: requestID,
		channel:   ch,
		itemID:    itemID,
		label:     label,
		addedAt:   time.Now().UTC(),
	}
}

func ReconstructItem(
	id uint,
	requestID uint,
	ch channel.Channel,
	itemID string,
	label string,
	addedAt time.Time,
) (*Item, error) {
	if id == 0 {
		return nil, fmt.Errorf("item ID cannot be zero")
	}
	if !ch.IsValid() {
		return nil, fmt.Errorf("invalid channel: %s", ch)
	}
	if len(itemID) == 0 {
		return nil, fmt.Errorf("item ID is required")
	}
	return &Item{
		id:        id,
		requestID: requestID,
		channel:   ch,
		itemID:    itemID,
		label:     label,
		addedAt:   addedAt,
	}, nil
}

func (i *Item) ID() uint {
	return i.id
}

func (i *Item) RequestID() uint {
	return i.requestID
}

func (i *Item) Channel() channel.Channel {
	return i.channel
}

func (i *Item) ItemID() string {
	return i.itemID
}

func (i *Item) Label() string {
	return i.label
}

func (i *Item) AddedAt() time.Time {
	return i.addedAt
}

func (i *Item) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("item ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("item ID cannot be zero")
	}
	i.id = id
	return nil
}
