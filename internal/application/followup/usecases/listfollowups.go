package usecases

import (
	"context"
	"time"

	"briefing/internal/domain/followup"
	"briefing/internal/shared/logger"
)

type ListFollowUpsQuery struct {
	IncludeResolved bool
}

type FollowUpEntry struct {
	ID         uint
	Person     string
	Summary    string
	SourceLink string
	CreatedAt  time.Time
	ResolvedAt *time.Time
	AgeDays    int
}

type ListFollowUpsResult struct {
	FollowUps []FollowUpEntry
}

type ListFollowUpsUseCase struct {
	followUpRepo followup.Repository
	logger       logger.Interface
}

func NewListFollowUpsUseCase(
	followUpRepo followup.Repository,
	logger logger.Interface,
) *ListFollowUpsUseCase {
	return &ListFollowUpsUseCase{
		followUpRepo: followUpRepo,
		logger:       logger,
	}
}

func (uc *ListFollowUpsUseCase) Execute(ctx context.Context, query ListFollowUpsQuery) (*ListFollowUpsResult, error) {
	followUps, err := uc.followUpRepo.List(ctx, query.IncludeResolved)
	if err != nil {
		uc.logger.Errorw("failed to list follow-ups", "error", err)
		return nil, err
	}

	now := time.Now().UTC()
	entries := make([]FollowUpEntry, 0, len(followUps))
	for _, f := range followUps {
		entries = append(entries, FollowUpEntry{
			ID:         f.ID(),
			Person:     f.Person(),
			Summary:    f.Summary(),
			SourceLink: f.SourceLink(),
			CreatedAt:  f.CreatedAt(),
			ResolvedAt: f.ResolvedAt(),
			AgeDays:    int(f.Age(now).Hours() / 24),
		})
	}

	return &ListFollowUpsResult{FollowUps: entries}, nil
}
