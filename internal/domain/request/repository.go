package request

import (
	"context"
	"errors"

	vo "briefing/internal/domain/request/valueobjects"
)

// ErrStatusConflict is returned when an optimistic status update loses a
// race: the stored status no longer matches the expected one. Callers
// re-read and retry.
var ErrStatusConflict = errors.New("request status changed concurrently")

// Filter narrows request listings.
type Filter struct {
	Status *vo.Status
}

// Repository persists requests and their linked items.
type Repository interface {
	// Save inserts a new request and assigns its ID.
	Save(ctx context.Context, r *Request) error

	// GetByID retrieves a request with its items. Returns nil if it does
	// not exist.
	GetByID(ctx context.Context, id uint) (*Request, error)

	// List returns requests in insertion order, optionally filtered by
	// status. Items are loaded.
	List(ctx context.Context, filter Filter) ([]*Request, error)

	// Search returns requests whose name or description contains the
	// text, case-insensitively, in insertion order.
	Search(ctx context.Context, text string) ([]*Request, error)

	// UpdateStatus persists a status transition only if the stored status
	// still equals expected; otherwise returns ErrStatusConflict.
	UpdateStatus(ctx context.Context, r *Request, expected vo.Status) error

	// SaveItem upserts a linked item. A concurrent duplicate of the same
	// (request, channel, item) is treated as already-applied.
	SaveItem(ctx context.Context, item *Item) error

	// Delete removes a request and all of its items in one transaction.
	// Reports whether the request existed.
	Delete(ctx context.Context, id uint) (bool, error)
}
