package request

import (
	"time"

	"briefing/internal/application/request/usecases"
	"briefing/internal/domain/reconciliation"
)

type CreateRequestRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description,omitempty" binding:"max=2000"`
	Priority    string `json:"priority,omitempty" binding:"omitempty,oneof=low normal high"`
}

func (r *CreateRequestRequest) ToCommand() usecases.CreateRequestCommand {
	return usecases.CreateRequestCommand{
		Name:        r.Name,
		Description: r.Description,
		Priority:    r.Priority,
	}
}

type LinkItemRequest struct {
	Channel string `json:"channel" binding:"required"`
	ItemID  string `json:"item_id" binding:"required,max=500"`
	Label   string `json:"label,omitempty" binding:"max=200"`
}

func (r *LinkItemRequest) ToCommand(requestID uint) usecases.LinkItemCommand {
	return usecases.LinkItemCommand{
		RequestID: requestID,
		Channel:   r.Channel,
		ItemID:    r.ItemID,
		Label:     r.Label,
	}
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open pending closed"`
}

type ApproveZendeskUpdateRequest struct {
	TicketID string `json:"ticket_id" binding:"required"`
	// Status overrides the proposed ticket status when set.
	Status string `json:"status,omitempty" binding:"omitempty,oneof=open pending solved"`
}

type LinkedItemResponse struct {
	ID      uint      `json:"id"`
	Channel string    `json:"channel"`
	ItemID  string    `json:"item_id"`
	Label   string    `json:"label,omitempty"`
	AddedAt time.Time `json:"added_at"`
}

type RequestResponse struct {
	ID          uint                 `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Status      string               `json:"status"`
	Priority    string               `json:"priority"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	ClosedAt    *time.Time           `json:"closed_at,omitempty"`
	Items       []LinkedItemResponse `json:"items"`
}

type ListRequestsResponse struct {
	Requests []RequestResponse `json:"requests"`
}

type SetStatusResponse struct {
	ID             uint                  `json:"id"`
	Status         string                `json:"status"`
	Changed        bool                  `json:"changed"`
	ClosedAt       *time.Time            `json:"closed_at,omitempty"`
	Reconciliation reconciliation.Result `json:"reconciliation"`
}

type ReconcileResponse struct {
	ID             uint                  `json:"id"`
	Status         string                `json:"status"`
	Reconciliation reconciliation.Result `json:"reconciliation"`
}

func toRequestResponse(entry usecases.RequestEntry) RequestResponse {
	items := make([]LinkedItemResponse, 0, len(entry.Items))
	for _, item := range entry.Items {
		items = append(items, LinkedItemResponse{
			ID:      item.ID,
			Channel: item.Channel,
			ItemID:  item.ItemID,
			Label:   item.Label,
			AddedAt: item.AddedAt,
		})
	}
	return RequestResponse{
		ID:          entry.ID,
		Name:        entry.Name,
		Description: entry.Description,
		Status:      entry.Status,
		Priority:    entry.Priority,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
		ClosedAt:    entry.ClosedAt,
		Items:       items,
	}
}

func toRequestResponses(entries []usecases.RequestEntry) []RequestResponse {
	responses := make([]RequestResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toRequestResponse(entry))
	}
	return responses
}
