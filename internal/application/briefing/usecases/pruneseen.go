package usecases

import (
	"context"
	"time"

	"briefing/internal/domain/briefing"
	"briefing/internal/domain/channel"
	"briefing/internal/shared/logger"
)

type PruneSeenResult struct {
	Pruned int64
}

// PruneSeenUseCase trims old gmail seen records. Gmail message IDs are
// immutable, so anything briefed past the retention window can never
// become new again and only bloats the ledger.
type PruneSeenUseCase struct {
	seenRepo  briefing.SeenRepository
	retention time.Duration
	logger    logger.Interface
}

func NewPruneSeenUseCase(
	seenRepo briefing.SeenRepository,
	retention time.Duration,
	logger logger.Interface,
) *PruneSeenUseCase {
	return &PruneSeenUseCase{
		seenRepo:  seenRepo,
		retention: retention,
		logger:    logger,
	}
}

func (uc *PruneSeenUseCase) Execute(ctx context.Context) (*PruneSeenResult, error) {
	cutoff := time.Now().UTC().Add(-uc.retention)

	pruned, err := uc.seenRepo.PruneOlderThan(ctx, channel.Gmail, cutoff)
	if err != nil {
		uc.logger.Errorw("failed to prune seen records", "error", err)
		return nil, err
	}

	if pruned > 0 {
		uc.logger.Infow("pruned gmail seen records", "count", pruned, "cutoff", cutoff)
	}

	return &PruneSeenResult{Pruned: pruned}, nil
}
