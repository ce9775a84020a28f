package usecases

import (
	"context"

	"briefing/internal/domain/request"
	"briefing/internal/shared/errors"
	"briefing/internal/shared/logger"
)

type DeleteRequestCommand struct {
	RequestID uint
}

type DeleteRequestResult struct {
	RequestID uint
}

// DeleteRequestUseCase removes a request and its links. The linked
// channel items themselves are untouched; only the grouping goes away.
type DeleteRequestUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewDeleteRequestUseCase(
	requestRepo request.Repository,
	logger logger.Interface,
) *DeleteRequestUseCase {
	return &DeleteRequestUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *DeleteRequestUseCase) Execute(ctx context.Context, cmd DeleteRequestCommand) (*DeleteRequestResult, error) {
	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}

	existed, err := uc.requestRepo.Delete(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to delete request", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}
	if !existed {
		return nil, errors.NewNotFoundError("request not found")
	}

	uc.logger.Infow("request deleted", "request_id", cmd.RequestID)

	return &DeleteRequestResult{RequestID: cmd.RequestID}, nil
}
