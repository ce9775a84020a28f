package usecases

import (
	"context"
	"time"

	"briefing/internal/domain/reconciliation"
	"briefing/internal/domain/request"
	vo "briefing/internal/domain/request/valueobjects"
	"briefing/internal/shared/errors"
	"briefing/internal/shared/logger"
)

const setStatusRetries = 3

type SetStatusCommand struct {
	RequestID uint
	Status    string
}

type SetStatusResult struct {
	RequestID uint
	Status    string
	Changed   bool
	ClosedAt  *time.Time

	// Reconciliation carries the side effects derived from the
	// transition. Empty on no-op changes.
	Reconciliation reconciliation.Result
}

// SetStatusUseCase moves a request through its lifecycle and derives
// the cross-channel consequences. The status write commits first; the
// reconciliation pass runs after, so an unreachable ticket system never
// blocks the local transition.
type SetStatusUseCase struct {
	requestRepo request.Repository
	engine      *reconciliation.Engine
	logger      logger.Interface
}

func NewSetStatusUseCase(
	requestRepo request.Repository,
	engine *reconciliation.Engine,
	logger logger.Interface,
) *SetStatusUseCase {
	return &SetStatusUseCase{
		requestRepo: requestRepo,
		engine:      engine,
		logger:      logger,
	}
}

func (uc *SetStatusUseCase) Execute(ctx context.Context, cmd SetStatusCommand) (*SetStatusResult, error) {
	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}

	newStatus, err := vo.NewStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError("invalid status")
	}

	// Retry on concurrent transitions; each attempt re-reads the row.
	for attempt := 0; attempt < setStatusRetries; attempt++ {
		req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
		if err != nil {
			uc.logger.Errorw("failed to load request", "request_id", cmd.RequestID, "error", err)
			return nil, err
		}
		if req == nil {
			return nil, errors.NewNotFoundError("request not found")
		}

		oldStatus := req.Status()
		moved, err := req.ChangeStatus(newStatus)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}

		if !moved {
			// Already in the target status; nothing to persist or reconcile.
			return &SetStatusResult{
				RequestID: req.ID(),
				Status:    req.Status().String(),
				Changed:   false,
				ClosedAt:  req.ClosedAt(),
			}, nil
		}

		err = uc.requestRepo.UpdateStatus(ctx, req, oldStatus)
		if err == request.ErrStatusConflict {
			uc.logger.Warnw("status update lost a race, retrying",
				"request_id", req.ID(), "attempt", attempt+1)
			continue
		}
		if err != nil {
			uc.logger.Errorw("failed to update request status",
				"request_id", req.ID(), "error", err)
			return nil, err
		}

		uc.logger.Infow("request status changed",
			"request_id", req.ID(),
			"from", oldStatus.String(),
			"to", newStatus.String())

		result := uc.engine.Reconcile(ctx, req, oldStatus, newStatus)

		return &SetStatusResult{
			RequestID:      req.ID(),
			Status:         req.Status().String(),
			Changed:        true,
			ClosedAt:       req.ClosedAt(),
			Reconciliation: result,
		}, nil
	}

	return nil, errors.NewConflictError("request status is changing concurrently, try again")
}
