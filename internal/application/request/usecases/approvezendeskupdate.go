package usecases

import (
	"context"

	"briefing/internal/domain/channel"
	"briefing/internal/domain/reconciliation"
	"briefing/internal/domain/request"
	vo "briefing/internal/domain/request/valueobjects"
	"briefing/internal/shared/errors"
	"briefing/internal/shared/logger"
)

type ApproveZendeskUpdateCommand struct {
	RequestID uint
	TicketID  string
	// Status overrides the proposed status when set; defaults to the
	// status derived from the request's own state.
	Status string
}

type ApproveZendeskUpdateResult struct {
	RequestID uint
	TicketID  string
	Applied   string
}

// ApproveZendeskUpdateUseCase executes a confirm intent the user
// accepted: it pushes the status to the ticket system. The ticket must
// be linked to the request, so an approval can never touch an unrelated
// ticket.
type ApproveZendeskUpdateUseCase struct {
	requestRepo request.Repository
	zendesk     reconciliation.ZendeskGateway
	logger      logger.Interface
}

func NewApproveZendeskUpdateUseCase(
	requestRepo request.Repository,
	zendesk reconciliation.ZendeskGateway,
	logger logger.Interface,
) *ApproveZendeskUpdateUseCase {
	return &ApproveZendeskUpdateUseCase{
		requestRepo: requestRepo,
		zendesk:     zendesk,
		logger:      logger,
	}
}

func (uc *ApproveZendeskUpdateUseCase) Execute(ctx context.Context, cmd ApproveZendeskUpdateCommand) (*ApproveZendeskUpdateResult, error) {
	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if cmd.TicketID == "" {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to load request", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}
	if req == nil {
		return nil, errors.NewNotFoundError("request not found")
	}

	linked := false
	for _, item := range req.Items() {
		if item.Channel() == channel.Zendesk && item.ItemID() == cmd.TicketID {
			linked = true
			break
		}
	}
	if !linked {
		return nil, errors.NewValidationError("ticket is not linked to this request")
	}

	target := reconciliation.ProposedZendeskStatus(req.Status())
	if cmd.Status != "" {
		status, err := vo.NewStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status")
		}
		target = reconciliation.ProposedZendeskStatus(status)
	}

	if err := uc.zendesk.UpdateTicketStatus(ctx, cmd.TicketID, target); err != nil {
		uc.logger.Errorw("failed to update zendesk ticket",
			"request_id", req.ID(), "ticket_id", cmd.TicketID, "status", target, "error", err)
		return nil, err
	}

	uc.logger.Infow("zendesk ticket updated",
		"request_id", req.ID(), "ticket_id", cmd.TicketID, "status", target)

	return &ApproveZendeskUpdateResult{
		RequestID: req.ID(),
		TicketID:  cmd.TicketID,
		Applied:   target,
	}, nil
}
