package followup

import "context"

// Repository persists follow-ups.
type Repository interface {
	// Save inserts a new follow-up and assigns its ID.
	Save(ctx context.Context, f *FollowUp) error

	// Update persists lifecycle changes (resolution).
	Update(ctx context.Context, f *FollowUp) error

	// GetByID retrieves a follow-up. Returns nil if it does not exist.
	GetByID(ctx context.Context, id uint) (*FollowUp, error)

	// List returns follow-ups in insertion order. Resolved entries are
	// excluded unless includeResolved is set.
	List(ctx context.Context, includeResolved bool) ([]*FollowUp, error)
}
