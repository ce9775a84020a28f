package usecases

import (
	"context"

	"briefing/internal/domain/briefing"
	"briefing/internal/domain/channel"
	"briefing/internal/shared/errors"
	"briefing/internal/shared/logger"
)

type IncomingItem struct {
	ItemKey      string
	VersionToken string
}

type CheckNewQuery struct {
	Channel string
	Items   []IncomingItem
}

type CheckNewResult struct {
	Channel string
	// NewItems holds the keys worth surfacing: never briefed, or briefed
	// at an older version.
	NewItems []string
}

// CheckNewUseCase filters a candidate batch against the dedup ledger.
// Read-only; marking happens separately once the briefing is delivered.
type CheckNewUseCase struct {
	seenRepo briefing.SeenRepository
	logger   logger.Interface
}

func NewCheckNewUseCase(seenRepo briefing.SeenRepository, logger logger.Interface) *CheckNewUseCase {
	return &CheckNewUseCase{
		seenRepo: seenRepo,
		logger:   logger,
	}
}

func (uc *CheckNewUseCase) Execute(ctx context.Context, query CheckNewQuery) (*CheckNewResult, error) {
	ch, err := channel.NewChannel(query.Channel)
	if err != nil {
		return nil, errors.NewValidationError("invalid channel")
	}
	if !ch.TracksItems() {
		return nil, errors.NewValidationError("channel does not track items")
	}

	newItems := make([]string, 0, len(query.Items))
	for _, item := range query.Items {
		if item.ItemKey == "" {
			return nil, errors.NewValidationError("item key cannot be empty")
		}

		record, err := uc.seenRepo.Find(ctx, ch, item.ItemKey)
		if err != nil {
			uc.logger.Errorw("failed to look up seen record",
				"channel", ch.String(), "item_key", item.ItemKey, "error", err)
			return nil, err
		}

		if record == nil || record.SupersededBy(item.VersionToken) {
			newItems = append(newItems, item.ItemKey)
		}
	}

	return &CheckNewResult{
		Channel:  ch.String(),
		NewItems: newItems,
	}, nil
}
