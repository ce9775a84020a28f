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

// SeenRepository persists the dedup ledger across the per-channel seen
// tables. Each channel keeps its natural key, so the switch on channel
// is the single place that knows which table holds what.
type SeenRepository struct {
	db *gorm.DB
}

func NewSeenRepository(gdb *gorm.DB) *SeenRepository {
	return &SeenRepository{db: gdb}
}

func (r *SeenRepository) Find(ctx context.Context, ch channel.Channel, itemKey string) (*briefing.SeenRecord, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	switch ch {
	case channel.Gmail:
		var model models.GmailSeenModel
		if err := tx.Where("message_id = ?", itemKey).First(&model).Error; err != nil {
			return r.wrapFindErr(err)
		}
		return briefing.ReconstructSeenRecord(ch, model.MessageID, "", time.UnixMilli(model.BriefedAt).UTC()), nil
	case channel.Zendesk:
		var model models.ZendeskSeenModel
		if err := tx.Where("ticket_id = ?", itemKey).First(&model).Error; err != nil {
			return r.wrapFindErr(err)
		}
		return briefing.ReconstructSeenRecord(ch, model.TicketID, model.LastUpdate, time.UnixMilli(model.BriefedAt).UTC()), nil
	case channel.GChat:
		var model models.GchatSeenModel
		if err := tx.Where("space_name = ?", itemKey).First(&model).Error; err != nil {
			return r.wrapFindErr(err)
		}
		return briefing.ReconstructSeenRecord(ch, model.SpaceName, model.LastMessage, time.UnixMilli(model.BriefedAt).UTC()), nil
	default:
		return nil, briefing.ErrChannelWithoutItems
	}
}

func (r *SeenRepository) MarkSeen(ctx context.Context, record *briefing.SeenRecord) error {
	tx := db.GetTxFromContext(ctx, r.db)
	briefedAt := record.BriefedAt().UnixMilli()

	switch record.Channel() {
	case channel.Gmail:
		model := models.GmailSeenModel{MessageID: record.ItemKey(), BriefedAt: briefedAt}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "message_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"briefed_at"}),
		}).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to mark gmail message seen: %w", err)
		}
	case channel.Zendesk:
		model := models.ZendeskSeenModel{
			TicketID:   record.ItemKey(),
			LastUpdate: record.VersionToken(),
			BriefedAt:  briefedAt,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ticket_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_update", "briefed_at"}),
		}).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to mark zendesk ticket seen: %w", err)
		}
	case channel.GChat:
		model := models.GchatSeenModel{
			SpaceName:   record.ItemKey(),
			LastMessage: record.VersionToken(),
			BriefedAt:   briefedAt,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "space_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_message", "briefed_at"}),
		}).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to mark gchat space seen: %w", err)
		}
	default:
		return briefing.ErrChannelWithoutItems
	}

	return nil
}

func (r *SeenRepository) ListByChannel(ctx context.Context, ch channel.Channel, limit int) ([]*briefing.SeenRecord, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	if limit <= 0 {
		limit = 100
	}

	records := make([]*briefing.SeenRecord, 0, limit)

	switch ch {
	case channel.Gmail:
		var seenModels []models.GmailSeenModel
		if err := tx.Order("briefed_at DESC").Limit(limit).Find(&seenModels).Error; err != nil {
			return nil, fmt.Errorf("failed to list gmail seen records: %w", err)
		}
		for _, m := range seenModels {
			records = append(records, briefing.ReconstructSeenRecord(ch, m.MessageID, "", time.UnixMilli(m.BriefedAt).UTC()))
		}
	case channel.Zendesk:
		var seenModels []models.ZendeskSeenModel
		if err := tx.Order("briefed_at DESC").Limit(limit).Find(&seenModels).Error; err != nil {
			return nil, fmt.Errorf("failed to list zendesk seen records: %w", err)
		}
		for _, m := range seenModels {
			records = append(records, briefing.ReconstructSeenRecord(ch, m.TicketID, m.LastUpdate, time.UnixMilli(m.BriefedAt).UTC()))
		}
	case channel.GChat:
		var seenModels []models.GchatSeenModel
		if err := tx.Order("briefed_at DESC").Limit(limit).Find(&seenModels).Error; err != nil {
			return nil, fmt.Errorf("failed to list gchat seen records: %w", err)
		}
		for _, m := range seenModels {
			records = append(records, briefing.ReconstructSeenRecord(ch, m.SpaceName, m.LastMessage, time.UnixMilli(m.BriefedAt).UTC()))
		}
	default:
		return nil, briefing.ErrChannelWithoutItems
	}

	return records, nil
}

func (r *SeenRepository) DeleteByChannel(ctx context.Context, ch channel.Channel) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var err error
	switch ch {
	case channel.Gmail:
		err = tx.Where("1 = 1").Delete(&models.GmailSeenModel{}).Error
	case channel.Zendesk:
		err = tx.Where("1 = 1").Delete(&models.ZendeskSeenModel{}).Error
	case channel.GChat:
		err = tx.Where("1 = 1").Delete(&models.GchatSeenModel{}).Error
	default:
		// Channels without item ledgers have nothing to clear.
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to clear seen records: %w", err)
	}

	return nil
}

func (r *SeenRepository) PruneOlderThan(ctx context.Context, ch channel.Channel, cutoff time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	millis := cutoff.UTC().UnixMilli()

	var result *gorm.DB
	switch ch {
	case channel.Gmail:
		result = tx.Where("briefed_at < ?", millis).Delete(&models.GmailSeenModel{})
	case channel.Zendesk:
		result = tx.Where("briefed_at < ?", millis).Delete(&models.ZendeskSeenModel{})
	case channel.GChat:
		result = tx.Where("briefed_at < ?", millis).Delete(&models.GchatSeenModel{})
	default:
		return 0, nil
	}
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune seen records: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *SeenRepository) wrapFindErr(err error) (*briefing.SeenRecord, error) {
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	return nil, fmt.Errorf("failed to find seen record: %w", err)
}
