// Package followup tracks people awaiting a reply.
package followup

import (
	"fmt"
	"time"
)

// FollowUp is an open or resolved reminder that someone is waiting on a
// reply. Once resolved it is immutable.
type FollowUp struct {
	id         uint
	person     string
	summary    string
	sourceLink string
	createdAt  time.Time
	resolvedAt *time.Time
}

func NewFollowUp(person, summary, sourceLink string) (*FollowUp, error) {
	if len(person) == 0 {
		return nil, fmt.Errorf("person is required")
	}
	if len(summary) == 0 {
		return nil, fmt.Errorf("summary is required")
	}
	return &FollowUp{
		person:     person,
		summary:    summary,
		sourceLink: sourceLink,
		createdAt:  time.Now().UTC(),
	}, nil
}

func ReconstructFollowUp(
	id uint,
	person string,
	summary string,
	sourceLink string,
	createdAt time.Time,
	resolvedAt *time.Time,
) (*FollowUp, error) {
	if id == 0 {
		return nil, fmt.Errorf("follow-up ID cannot be zero")
	}
	if len(person) == 0 {
		return nil, fmt.Errorf("person is required")
	}
	return &FollowUp{
		id:         id,
		person:     person,
		summary:    summary,
		sourceLink: sourceLink,
		createdAt:  createdAt,
		resolvedAt: resolvedAt,
	}, nil
}

func (f *FollowUp) ID() uint {
	return f.id
}

func (f *FollowUp) Person() string {
	return f.person
}

func (f *FollowUp) Summary() string {
	return f.summary
}

func (f *FollowUp) SourceLink() string {
	return f.sourceLink
}

func (f *FollowUp) CreatedAt() time.Time {
	return f.createdAt
}

func (f *FollowUp) ResolvedAt() *time.Time {
	return f.resolvedAt
}

func (f *FollowUp) IsResolved() bool {
	return f.resolvedAt != nil
}

func (f *FollowUp) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("follow-up ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("follow-up ID cannot be zero")
	}
	f.id = id
	return nil
}

// Resolve marks the follow-up as done. Resolving an already-resolved
// follow-up is a no-op so retries are safe.
func (f *FollowUp) Resolve() {
	if f.resolvedAt != nil {
		return
	}
	now := time.Now().UTC()
	f.resolvedAt = &now
}

// Age is how long the person has been waiting. Alerting thresholds are
// the caller's concern; the ledger only stores timestamps.
func (f *FollowUp) Age(now time.Time) time.Duration {
	return now.Sub(f.createdAt)
}
