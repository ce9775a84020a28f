package usecases

import (
	"context"
	"time"

	"briefing/internal/domain/followup"
	"briefing/internal/shared/errors"
	"briefing/internal/shared/logger"
)

type ResolveFollowUpCommand struct {
	FollowUpID uint
}

type ResolveFollowUpResult struct {
	FollowUpID uint
	ResolvedAt time.Time
}

// ResolveFollowUpUseCase marks a follow-up as handled. Resolving twice
// keeps the first resolution time.
type ResolveFollowUpUseCase struct {
	followUpRepo followup.Repository
	logger       logger.Interface
}

func NewResolveFollowUpUseCase(
	followUpRepo followup.Repository,
	logger logger.Interface,
) *ResolveFollowUpUseCase {
	return &ResolveFollowUpUseCase{
		followUpRepo: followUpRepo,
		logger:       logger,
	}
}

func (uc *ResolveFollowUpUseCase) Execute(ctx context.Context, cmd ResolveFollowUpCommand) (*ResolveFollowUpResult, error) {
	if cmd.FollowUpID == 0 {
		return nil, errors.NewValidationError("follow-up ID is required")
	}

	f, err := uc.followUpRepo.GetByID(ctx, cmd.FollowUpID)
	if err != nil {
		uc.logger.Errorw("failed to load follow-up", "followup_id", cmd.FollowUpID, "error", err)
		return nil, err
	}
	if f == nil {
		return nil, errors.NewNotFoundError("follow-up not found")
	}

	alreadyResolved := f.IsResolved()
	f.Resolve()

	if !alreadyResolved {
		if err := uc.followUpRepo.Update(ctx, f); err != nil {
			uc.logger.Errorw("failed to update follow-up", "followup_id", f.ID(), "error", err)
			return nil, err
		}
		uc.logger.Infow("follow-up resolved", "followup_id", f.ID())
	}

	return &ResolveFollowUpResult{
		FollowUpID: f.ID(),
		ResolvedAt: *f.ResolvedAt(),
	}, nil
}
