package usecases

import (
	"context"
	"time"

	"briefing/internal/domain/followup"
	"briefing/internal/shared/errors"
	"briefing/internal/shared/logger"
)

type AddFollowUpCommand struct {
	Person     string
	Summary    string
	SourceLink string
}

type AddFollowUpResult struct {
	FollowUpID uint
	CreatedAt  time.Time
}

type AddFollowUpUseCase struct {
	followUpRepo followup.Repository
	logger       logger.Interface
}

func NewAddFollowUpUseCase(
	followUpRepo followup.Repository,
	logger logger.Interface,
) *AddFollowUpUseCase {
	return &AddFollowUpUseCase{
		followUpRepo: followUpRepo,
		logger:       logger,
	}
}

func (uc *AddFollowUpUseCase) Execute(ctx context.Context, cmd AddFollowUpCommand) (*AddFollowUpResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	f, err := followup.NewFollowUp(cmd.Person, cmd.Summary, cmd.SourceLink)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.followUpRepo.Save(ctx, f); err != nil {
		uc.logger.Errorw("failed to save follow-up", "person", cmd.Person, "error", err)
		return nil, err
	}

	uc.logger.Infow("follow-up added", "followup_id", f.ID(), "person", f.Person())

	return &AddFollowUpResult{
		FollowUpID: f.ID(),
		CreatedAt:  f.CreatedAt(),
	}, nil
}

func (uc *AddFollowUpUseCase) validateCommand(cmd AddFollowUpCommand) error {
	if len(cmd.Person) == 0 {
		return errors.NewValidationError("person is required")
	}
	if len(cmd.Person) > 200 {
		return errors.NewValidationError("person exceeds maximum length of 200 characters")
	}
	if len(cmd.Summary) == 0 {
		return errors.NewValidationError("summary is required")
	}
	if len(cmd.SourceLink) > 500 {
		return errors.NewValidationError("source link exceeds maximum length of 500 characters")
	}
	return nil
}
