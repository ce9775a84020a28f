package usecases

import (
	"context"

	"briefing/internal/domain/request"
	"briefing/internal/shared/errors"
	"briefing/internal/shared/logger"
)

type SearchRequestsQuery struct {
	Text string
}

type SearchRequestsResult struct {
	Requests []RequestEntry
}

type SearchRequestsUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewSearchRequestsUseCase(
	requestRepo request.Repository,
	logger logger.Interface,
) *SearchRequestsUseCase {
	return &SearchRequestsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *SearchRequestsUseCase) Execute(ctx context.Context, query SearchRequestsQuery) (*SearchRequestsResult, error) {
	if query.Text == "" {
		return nil, errors.NewValidationError("search text is required")
	}

	requests, err := uc.requestRepo.Search(ctx, query.Text)
	if err != nil {
		uc.logger.Errorw("failed to search requests", "text", query.Text, "error", err)
		return nil, err
	}

	return &SearchRequestsResult{Requests: toEntries(requests)}, nil
}
