package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"briefing/internal/domain/briefing"
	"briefing/internal/infrastructure/persistence/models"
	db "briefing/internal/shared/db"
)

type PrefRepository struct {
	db *gorm.DB
}

func NewPrefRepository(gdb *gorm.DB) *PrefRepository {
	return &PrefRepository{db: gdb}
}

func (r *PrefRepository) GetAll(ctx context.Context) ([]briefing.Pref, error) {
	var prefModels []models.PrefModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("pref_key ASC").Find(&prefModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}

	prefs := make([]briefing.Pref, 0, len(prefModels))
	for _, m := range prefModels {
		prefs = append(prefs, briefing.Pref{
			Key:       m.PrefKey,
			Value:     m.PrefValue,
			UpdatedAt: time.UnixMilli(m.UpdatedAt).UTC(),
		})
	}

	return prefs, nil
}

func (r *PrefRepository) Upsert(ctx context.Context, key, value string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := models.PrefModel{PrefKey: key, PrefValue: value}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pref_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"pref_value", "updated_at"}),
	}).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to upsert preference: %w", err)
	}

	return nil
}

func (r *PrefRepository) Delete(ctx context.Context, key string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("pref_key = ?", key).Delete(&models.PrefModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete preference: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// MemoryRepository persists the single orchestrator memory blob.
type MemoryRepository struct {
	db *gorm.DB
}

func NewMemoryRepository(gdb *gorm.DB) *MemoryRepository {
	return &MemoryRepository{db: gdb}
}

func (r *MemoryRepository) Get(ctx context.Context) (*briefing.Memory, error) {
	var model models.MemoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id DESC").First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load memory: %w", err)
	}

	return &briefing.Memory{
		Content:   model.Content,
		UpdatedAt: time.UnixMilli(model.UpdatedAt).UTC(),
	}, nil
}

func (r *MemoryRepository) Set(ctx context.Context, content string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	// Single-row table, last writer wins.
	model := models.MemoryModel{ID: 1, Content: content}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to save memory: %w", err)
	}

	return nil
}
