package usecases

import (
	"context"
	"time"

	"briefing/internal/domain/briefing"
	"briefing/internal/domain/channel"
	"briefing/internal/shared/errors"
	"briefing/internal/shared/logger"
)

type BriefedItem struct {
	ItemKey      string
	VersionToken string
}

type MarkBriefedCommand struct {
	Channel string
	// Timestamp defaults to now when unset.
	Timestamp *time.Time
	Items     []BriefedItem
}

type MarkBriefedResult struct {
	Channel     string
	LastBriefed time.Time
	ItemsMarked int
}

// MarkBriefedUseCase advances a channel cursor and records the surfaced
// items in one transaction. Marking the same items again is harmless.
type MarkBriefedUseCase struct {
	stateRepo briefing.StateRepository
	seenRepo  briefing.SeenRepository
	txManager TransactionManager
	logger    logger.Interface
}

func NewMarkBriefedUseCase(
	stateRepo briefing.StateRepository,
	seenRepo briefing.SeenRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *MarkBriefedUseCase {
	return &MarkBriefedUseCase{
		stateRepo: stateRepo,
		seenRepo:  seenRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *MarkBriefedUseCase) Execute(ctx context.Context, cmd MarkBriefedCommand) (*MarkBriefedResult, error) {
	ch, err := channel.NewChannel(cmd.Channel)
	if err != nil {
		return nil, errors.NewValidationError("invalid channel")
	}

	if len(cmd.Items) > 0 && !ch.TracksItems() {
		return nil, errors.NewValidationError("channel does not track items")
	}

	ts := time.Now().UTC()
	if cmd.Timestamp != nil {
		ts = cmd.Timestamp.UTC()
	}

	records := make([]*briefing.SeenRecord, 0, len(cmd.Items))
	for _, item := range cmd.Items {
		record, err := briefing.NewSeenRecord(ch, item.ItemKey, item.VersionToken)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		records = append(records, record)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.stateRepo.MarkBriefed(txCtx, ch, ts); err != nil {
			return err
		}
		for _, record := range records {
			if err := uc.seenRepo.MarkSeen(txCtx, record); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to mark channel briefed", "channel", ch.String(), "error", err)
		return nil, err
	}

	uc.logger.Infow("channel briefed",
		"channel", ch.String(),
		"timestamp", ts,
		"items", len(records))

	return &MarkBriefedResult{
		Channel:     ch.String(),
		LastBriefed: ts,
		ItemsMarked: len(records),
	}, nil
}
