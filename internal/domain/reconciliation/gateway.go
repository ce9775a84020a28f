package reconciliation

import "context"

// ZendeskGateway is the collaborator boundary to the ticket system. The
// core consumes it for reconciliation; the real client lives with the
// orchestrator.
type ZendeskGateway interface {
	// GetTicketStatus fetches the ticket's current remote status.
	GetTicketStatus(ctx context.Context, ticketID string) (string, error)

	// UpdateTicketStatus applies a status change. Only called after the
	// user approved a confirm intent.
	UpdateTicketStatus(ctx context.Context, ticketID, status string) error
}
