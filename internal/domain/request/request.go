// Package request models a user-defined grouping of related items
// across channels with its own status and priority lifecycle.
package request

import (
	"fmt"
	"strings"
	"time"

	"briefing/internal/domain/channel"
	vo "briefing/internal/domain/request/valueobjects"
)

type Request struct {
	id          uint
	name        string
	description string
	status      vo.Status
	priority    vo.Priority
	version     int
	createdAt   time.Time
	updatedAt   time.Time
	closedAt    *time.Time
	items       []*Item
}

func NewRequest(name, description string, priority vo.Priority) (*Request, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := time.Now().UTC()
	return &Request{
		name:        name,
		description: description,
		status:      vo.StatusOpen,
		priority:    priority,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
		items:       []*Item{},
	}, nil
}

func ReconstructRequest(
	id uint,
	name string,
	description string,
	status vo.Status,
	priority vo.Priority,
	version int,
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
) (*Request, error) {
	if id == 0 {
		return nil, fmt.Errorf("request ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if status.IsClosed() != (closedAt != nil) {
		return nil, fmt.Errorf("closed_at must be set exactly when status is closed")
	}

	return &Request{
		id:          id,
		name:        name,
		description: description,
		status:      status,
		priority:    priority,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		closedAt:    closedAt,
		items:       []*Item{},
	}, nil
}

func (r *Request) ID() uint {
	return r.id
}

func (r *Request) Name() string {
	return r.name
}

func (r *Request) Description() string {
	return r.description
}

func (r *Request) Status() vo.Status {
	return r.status
}

func (r *Request) Priority() vo.Priority {
	return r.priority
}

func (r *Request) Version() int {
	return r.version
}

func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Request) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Request) ClosedAt() *time.Time {
	return r.closedAt
}

func (r *Request) Items() []*Item {
	itemsCopy := make([]*Item, len(r.items))
	copy(itemsCopy, r.items)
	return itemsCopy
}

func (r *Request) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request ID cannot be zero")
	}
	r.id = id
	return nil
}

// ChangeStatus moves the request through its lifecycle. A same-status
// change is an idempotent no-op; the return value reports whether an
// actual transition happened so callers only reconcile real changes.
// Entering closed stamps closedAt, leaving closed clears it.
func (r *Request) ChangeStatus(newStatus vo.Status) (bool, error) {
	if !newStatus.IsValid() {
		return false, fmt.Errorf("invalid status: %s", newStatus)
	}

	if r.status == newStatus {
		return false, nil
	}

	oldStatus := r.status
	r.status = newStatus
	r.updatedAt = time.Now().UTC()
	r.version++

	if newStatus.IsClosed() {
		now := time.Now().UTC()
		r.closedAt = &now
	} else if oldStatus.IsClosed() {
		r.closedAt = nil
	}

	return true, nil
}

// AttachItem links an item to the request. Linking the same
// (channel, item) pair twice is a no-op; the return value reports
// whether the item was actually added.
func (r *Request) AttachItem(ch channel.Channel, itemID, label string) (*Item, error) {
	if !ch.IsValid() {
		return nil, fmt.Errorf("invalid channel: %s", ch)
	}
	if len(itemID) == 0 {
		return nil, fmt.Errorf("item ID is required")
	}

	for _, existing := range r.items {
		if existing.Channel() == ch && existing.ItemID() == itemID {
			return existing, nil
		}
	}

	item := newItem(r.id, ch, itemID, label)
	r.items = append(r.items, item)
	r.updatedAt = time.Now().UTC()
	return item, nil
}

func (r *Request) AddItem(item *Item) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}
	if item.RequestID() != r.id {
		return fmt.Errorf("item request ID mismatch")
	}
	r.items = append(r.items, item)
	return nil
}

// Matches reports whether the request matches a case-insensitive
// substring search over name and description.
func (r *Request) Matches(text string) bool {
	if text == "" {
		return true
	}
	needle := strings.ToLower(text)
	return strings.Contains(strings.ToLower(r.name), needle) ||
		strings.Contains(strings.ToLower(r.description), needle)
}
