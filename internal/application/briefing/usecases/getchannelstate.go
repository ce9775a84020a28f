package usecases

import (
	"context"
	"time"

	"briefing/internal/domain/briefing"
	"briefing/internal/domain/channel"
	"briefing/internal/shared/errors"
	"briefing/internal/shared/logger"
)

type GetChannelStateQuery struct {
	Channel   string
	SeenLimit int
}

type SeenItem struct {
	ItemKey      string
	VersionToken string
	BriefedAt    time.Time
}

type GetChannelStateResult struct {
	Channel     string
	LastBriefed *time.Time
	RecentSeen  []SeenItem
}

type GetChannelStateUseCase struct {
	stateRepo briefing.StateRepository
	seenRepo  briefing.SeenRepository
	logger    logger.Interface
}

func NewGetChannelStateUseCase(
	stateRepo briefing.StateRepository,
	seenRepo briefing.SeenRepository,
	logger logger.Interface,
) *GetChannelStateUseCase {
	return &GetChannelStateUseCase{
		stateRepo: stateRepo,
		seenRepo:  seenRepo,
		logger:    logger,
	}
}

func (uc *GetChannelStateUseCase) Execute(ctx context.Context, query GetChannelStateQuery) (*GetChannelStateResult, error) {
	ch, err := channel.NewChannel(query.Channel)
	if err != nil {
		return nil, errors.NewValidationError("invalid channel")
	}

	state, err := uc.stateRepo.Get(ctx, ch)
	if err != nil {
		uc.logger.Errorw("failed to load channel state", "channel", ch.String(), "error", err)
		return nil, err
	}

	result := &GetChannelStateResult{Channel: ch.String()}
	if state != nil {
		result.LastBriefed = state.LastBriefed()
	}

	if ch.TracksItems() {
		records, err := uc.seenRepo.ListByChannel(ctx, ch, query.SeenLimit)
		if err != nil {
			uc.logger.Errorw("failed to list seen records", "channel", ch.String(), "error", err)
			return nil, err
		}
		for _, record := range records {
			result.RecentSeen = append(result.RecentSeen, SeenItem{
				ItemKey:      record.ItemKey(),
				VersionToken: record.VersionToken(),
				BriefedAt:    record.BriefedAt(),
			})
		}
	}

	return result, nil
}
