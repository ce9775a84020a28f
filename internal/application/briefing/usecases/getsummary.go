package usecases

import (
	"context"
	"time"

	"briefing/internal/domain/briefing"
	"briefing/internal/domain/channel"
	"briefing/internal/shared/logger"
)

type ChannelSummary struct {
	Channel     string
	LastBriefed *time.Time
	IsStale     bool
}

type GetSummaryResult struct {
	Channels []ChannelSummary
}

// GetSummaryUseCase reports every channel cursor with its staleness so
// the orchestrator can decide which channels need a fresh pass.
type GetSummaryUseCase struct {
	stateRepo   briefing.StateRepository
	staleWindow time.Duration
	logger      logger.Interface
}

func NewGetSummaryUseCase(
	stateRepo briefing.StateRepository,
	staleWindow time.Duration,
	logger logger.Interface,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		stateRepo:   stateRepo,
		staleWindow: staleWindow,
		logger:      logger,
	}
}

func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryResult, error) {
	states, err := uc.stateRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load channel states", "error", err)
		return nil, err
	}

	now := time.Now().UTC()
	byChannel := make(map[channel.Channel]*briefing.ChannelState, len(states))
	for _, state := range states {
		byChannel[state.Channel()] = state
	}

	// Every known channel appears, seeded or not.
	summaries := make([]ChannelSummary, 0, len(channel.All()))
	for _, ch := range channel.All() {
		summary := ChannelSummary{Channel: ch.String(), IsStale: true}
		if state, ok := byChannel[ch]; ok {
			summary.LastBriefed = state.LastBriefed()
			summary.IsStale = state.IsStale(uc.staleWindow, now)
		}
		summaries = append(summaries, summary)
	}

	return &GetSummaryResult{Channels: summaries}, nil
}
