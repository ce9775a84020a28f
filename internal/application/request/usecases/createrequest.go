package usecases

import (
	"context"
	"time"

	"briefing/internal/domain/request"
	vo "briefing/internal/domain/request/valueobjects"
	"briefing/internal/shared/errors"
	"briefing/internal/shared/logger"
)

type CreateRequestCommand struct {
	Name        string
	Description string
	Priority    string
}

type CreateRequestResult struct {
	RequestID uint
	Status    string
	Priority  string
	CreatedAt time.Time
}

type CreateRequestUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewCreateRequestUseCase(
	requestRepo request.Repository,
	logger logger.Interface,
) *CreateRequestUseCase {
	return &CreateRequestUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *CreateRequestUseCase) Execute(ctx context.Context, cmd CreateRequestCommand) (*CreateRequestResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	priority := vo.DefaultPriority()
	if cmd.Priority != "" {
		p, err := vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority")
		}
		priority = p
	}

	req, err := request.NewRequest(cmd.Name, cmd.Description, priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Save(ctx, req); err != nil {
		uc.logger.Errorw("failed to save request", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("request created", "request_id", req.ID(), "name", req.Name())

	return &CreateRequestResult{
		RequestID: req.ID(),
		Status:    req.Status().String(),
		Priority:  req.Priority().String(),
		CreatedAt: req.CreatedAt(),
	}, nil
}

func (uc *CreateRequestUseCase) validateCommand(cmd CreateRequestCommand) error {
	if len(cmd.Name) == 0 {
		return errors.NewValidationError("name is required")
	}
	if len(cmd.Name) > 200 {
		return errors.NewValidationError("name exceeds maximum length of 200 characters")
	}
	return nil
}
