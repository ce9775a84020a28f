package usecases

import (
	"context"

	"briefing/internal/domain/reconciliation"
	"briefing/internal/domain/request"
	"briefing/internal/shared/errors"
	"briefing/internal/shared/logger"
)

type ReconcileCommand struct {
	RequestID uint
}

type ReconcileResult struct {
	RequestID      uint
	Status         string
	Reconciliation reconciliation.Result
}

// ReconcileUseCase re-derives the pending side effects for a request
// from its current state. Safe to run any number of times; an earlier
// incomplete pass is simply repeated until everything is evaluated.
type ReconcileUseCase struct {
	requestRepo request.Repository
	engine      *reconciliation.Engine
	logger      logger.Interface
}

func NewReconcileUseCase(
	requestRepo request.Repository,
	engine *reconciliation.Engine,
	logger logger.Interface,
) *ReconcileUseCase {
	return &ReconcileUseCase{
		requestRepo: requestRepo,
		engine:      engine,
		logger:      logger,
	}
}

func (uc *ReconcileUseCase) Execute(ctx context.Context, cmd ReconcileCommand) (*ReconcileResult, error) {
	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to load request", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}
	if req == nil {
		return nil, errors.NewNotFoundError("request not found")
	}

	result := uc.engine.Reevaluate(ctx, req)

	return &ReconcileResult{
		RequestID:      req.ID(),
		Status:         req.Status().String(),
		Reconciliation: result,
	}, nil
}
