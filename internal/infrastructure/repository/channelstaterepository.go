package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"briefing/internal/domain/briefing"
	"briefing/internal/domain/channel"
	"briefing/internal/infrastructure/persistence/models"
	db "briefing/internal/shared/db"
)

// ChannelStateRepository persists per-channel briefing cursors. The
// monotonic clamp lives in SQL so concurrent markers from different
// machines converge on the maximum timestamp without locks.
type ChannelStateRepository struct {
	db *gorm.DB
}

func NewChannelStateRepository(gdb *gorm.DB) *ChannelStateRepository {
	return &ChannelStateRepository{db: gdb}
}

func (r *ChannelStateRepository) Get(ctx context.Context, ch channel.Channel) (*briefing.ChannelState, error) {
	var model models.ChannelStateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("channel = ?", ch.String()).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find channel state: %w", err)
	}

	return r.toDomain(&model)
}

func (r *ChannelStateRepository) GetAll(ctx context.Context) ([]*briefing.ChannelState, error) {
	var stateModels []models.ChannelStateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Find(&stateModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list channel states: %w", err)
	}

	byChannel := make(map[string]*models.ChannelStateModel, len(stateModels))
	for i := range stateModels {
		byChannel[stateModels[i].Channel] = &stateModels[i]
	}

	// Stable channel order regardless of storage order
	states := make([]*briefing.ChannelState, 0, len(stateModels))
	for _, ch := range channel.All() {
		model, ok := byChannel[ch.String()]
		if !ok {
			continue
		}
		state, err := r.toDomain(model)
		if err != nil {
			return nil, err
		}
		states = append(states, state)
	}

	return states, nil
}

func (r *ChannelStateRepository) Seed(ctx context.Context, channels []channel.Channel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	for _, ch := range channels {
		model := models.ChannelStateModel{Channel: ch.String()}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to seed channel state: %w", err)
		}
	}

	return nil
}

func (r *ChannelStateRepository) MarkBriefed(ctx context.Context, ch channel.Channel, ts time.Time) error {
	tx := db.GetTxFromContext(ctx, r.db)
	millis := ts.UTC().UnixMilli()

	// Never move the cursor backward; a stale timestamp matches no row.
	result := tx.Model(&models.ChannelStateModel{}).
		Where("channel = ? AND (last_briefed IS NULL OR last_briefed < ?)", ch.String(), millis).
		Updates(map[string]interface{}{
			"last_briefed": millis,
			"updated_at":   time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark channel briefed: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// Either clamped or never seeded; insert if missing.
		model := models.ChannelStateModel{Channel: ch.String(), LastBriefed: &millis}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to seed channel state on mark: %w", err)
		}
	}

	return nil
}

func (r *ChannelStateRepository) Reset(ctx context.Context, ch channel.Channel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.ChannelStateModel{}).
		Where("channel = ?", ch.String()).
		Updates(map[string]interface{}{
			"last_briefed": nil,
			"updated_at":   time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to reset channel state: %w", result.Error)
	}

	return nil
}

func (r *ChannelStateRepository) toDomain(model *models.ChannelStateModel) (*briefing.ChannelState, error) {
	ch, err := channel.NewChannel(model.Channel)
	if err != nil {
		return nil, err
	}

	var lastBriefed *time.Time
	if model.LastBriefed != nil {
		t := time.UnixMilli(*model.LastBriefed).UTC()
		lastBriefed = &t
	}

	return briefing.ReconstructChannelState(ch, lastBriefed, time.UnixMilli(model.UpdatedAt).UTC())
}
