package zendesk

import (
	"context"
	"errors"

	"briefing/internal/domain/reconciliation"
)

// ErrNotConfigured is returned by the disabled gateway. Reconciliation
// surfaces it as a per-item failure instead of blocking status changes.
var ErrNotConfigured = errors.New("zendesk integration is not configured")

// DisabledGateway stands in when no Zendesk credentials are set.
type DisabledGateway struct{}

func NewDisabledGateway() *DisabledGateway {
	return &DisabledGateway{}
}

var _ reconciliation.ZendeskGateway = (*DisabledGateway)(nil)

func (g *DisabledGateway) GetTicketStatus(ctx context.Context, ticketID string) (string, error) {
	return "", ErrNotConfigured
}

func (g *DisabledGateway) UpdateTicketStatus(ctx context.Context, ticketID, status string) error {
	return ErrNotConfigured
}
