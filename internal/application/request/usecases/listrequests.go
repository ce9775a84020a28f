package usecases

import (
	"context"
	"time"

	"briefing/internal/domain/request"
	vo "briefing/internal/domain/request/valueobjects"
	"briefing/internal/shared/errors"
	"briefing/internal/shared/logger"
)

type ListRequestsQuery struct {
	// Status filters the listing when set; empty means all.
	Status string
}

type LinkedItemEntry struct {
	ID      uint
	Channel string
	ItemID  string
	Label   string
	AddedAt time.Time
}

type RequestEntry struct {
	ID          uint
	Name        string
	Description string
	Status      string
	Priority    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ClosedAt    *time.Time
	Items       []LinkedItemEntry
}

type ListRequestsResult struct {
	Requests []RequestEntry
}

type ListRequestsUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewListRequestsUseCase(
	requestRepo request.Repository,
	logger logger.Interface,
) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ListRequestsUseCase) Execute(ctx context.Context, query ListRequestsQuery) (*ListRequestsResult, error) {
	filter := request.Filter{}
	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status")
		}
		filter.Status = &status
	}

	requests, err := uc.requestRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list requests", "error", err)
		return nil, err
	}

	return &ListRequestsResult{Requests: toEntries(requests)}, nil
}

func toEntries(requests []*request.Request) []RequestEntry {
	entries := make([]RequestEntry, 0, len(requests))
	for _, req := range requests {
		entry := RequestEntry{
			ID:          req.ID(),
			Name:        req.Name(),
			Description: req.Description(),
			Status:      req.Status().String(),
			Priority:    req.Priority().String(),
			CreatedAt:   req.CreatedAt(),
			UpdatedAt:   req.UpdatedAt(),
			ClosedAt:    req.ClosedAt(),
		}
		for _, item := range req.Items() {
			entry.Items = append(entry.Items, LinkedItemEntry{
				ID:      item.ID(),
				Channel: item.Channel().String(),
				ItemID:  item.ItemID(),
				Label:   item.Label(),
				AddedAt: item.AddedAt(),
			})
		}
		entries = append(entries, entry)
	}
	return entries
}
