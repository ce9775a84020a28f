package usecases

import (
	"context"
	"time"

	"briefing/internal/domain/briefing"
	"briefing/internal/shared/logger"
)

type GetMemoryResult struct {
	Content   string
	UpdatedAt *time.Time
}

type GetMemoryUseCase struct {
	memoryRepo briefing.MemoryRepository
	logger     logger.Interface
}

func NewGetMemoryUseCase(memoryRepo briefing.MemoryRepository, logger logger.Interface) *GetMemoryUseCase {
	return &GetMemoryUseCase{memoryRepo: memoryRepo, logger: logger}
}

func (uc *GetMemoryUseCase) Execute(ctx context.Context) (*GetMemoryResult, error) {
	memory, err := uc.memoryRepo.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load memory", "error", err)
		return nil, err
	}

	// An empty memory is a valid state, not an error.
	if memory == nil {
		return &GetMemoryResult{}, nil
	}

	updatedAt := memory.UpdatedAt
	return &GetMemoryResult{
		Content:   memory.Content,
		UpdatedAt: &updatedAt,
	}, nil
}

type SetMemoryCommand struct {
	Content string
}

type SetMemoryUseCase struct {
	memoryRepo briefing.MemoryRepository
	logger     logger.Interface
}

func NewSetMemoryUseCase(memoryRepo briefing.MemoryRepository, logger logger.Interface) *SetMemoryUseCase {
	return &SetMemoryUseCase{memoryRepo: memoryRepo, logger: logger}
}

func (uc *SetMemoryUseCase) Execute(ctx context.Context, cmd SetMemoryCommand) error {
	if err := uc.memoryRepo.Set(ctx, cmd.Content); err != nil {
		uc.logger.Errorw("failed to save memory", "error", err)
		return err
	}

	uc.logger.Infow("memory saved", "length", len(cmd.Content))
	return nil
}
