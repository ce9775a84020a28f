package usecases

import (
	"context"

	"briefing/internal/domain/briefing"
	"briefing/internal/domain/channel"
	"briefing/internal/shared/errors"
	"briefing/internal/shared/logger"
)

type ResetChannelCommand struct {
	Channel string
}

type ResetChannelResult struct {
	Channel string
}

// ResetChannelUseCase clears a channel cursor and its dedup ledger so
// the next briefing treats everything as new. Cursor and ledger go
// together; a half reset would re-surface nothing.
type ResetChannelUseCase struct {
	stateRepo briefing.StateRepository
	seenRepo  briefing.SeenRepository
	txManager TransactionManager
	logger    logger.Interface
}

func NewResetChannelUseCase(
	stateRepo briefing.StateRepository,
	seenRepo briefing.SeenRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *ResetChannelUseCase {
	return &ResetChannelUseCase{
		stateRepo: stateRepo,
		seenRepo:  seenRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *ResetChannelUseCase) Execute(ctx context.Context, cmd ResetChannelCommand) (*ResetChannelResult, error) {
	ch, err := channel.NewChannel(cmd.Channel)
	if err != nil {
		return nil, errors.NewValidationError("invalid channel")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.stateRepo.Reset(txCtx, ch); err != nil {
			return err
		}
		return uc.seenRepo.DeleteByChannel(txCtx, ch)
	})
	if err != nil {
		uc.logger.Errorw("failed to reset channel", "channel", ch.String(), "error", err)
		return nil, err
	}

	uc.logger.Infow("channel reset", "channel", ch.String())

	return &ResetChannelResult{Channel: ch.String()}, nil
}
