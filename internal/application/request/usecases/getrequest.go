package usecases

import (
	"context"

	"briefing/internal/domain/request"
	"briefing/internal/shared/errors"
	"briefing/internal/shared/logger"
)

type GetRequestQuery struct {
	RequestID uint
}

type GetRequestUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewGetRequestUseCase(
	requestRepo request.Repository,
	logger logger.Interface,
) *GetRequestUseCase {
	return &GetRequestUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *GetRequestUseCase) Execute(ctx context.Context, query GetRequestQuery) (*RequestEntry, error) {
	if query.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}

	req, err := uc.requestRepo.GetByID(ctx, query.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to load request", "request_id", query.RequestID, "error", err)
		return nil, err
	}
	if req == nil {
		return nil, errors.NewNotFoundError("request not found")
	}

	entries := toEntries([]*request.Request{req})
	return &entries[0], nil
}
