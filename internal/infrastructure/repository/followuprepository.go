package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"briefing/internal/domain/followup"
	"briefing/internal/infrastructure/persistence/mappers"
	"briefing/internal/infrastructure/persistence/models"
	db "briefing/internal/shared/db"
)

type FollowUpRepository struct {
	db     *gorm.DB
	mapper mappers.FollowUpMapper
}

func NewFollowUpRepository(gdb *gorm.DB) *FollowUpRepository {
	return &FollowUpRepository{
		db:     gdb,
		mapper: mappers.NewFollowUpMapper(),
	}
}

func (r *FollowUpRepository) Save(ctx context.Context, f *followup.FollowUp) error {
	model := r.mapper.ToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create follow-up: %w", err)
	}

	if f.ID() == 0 {
		if err := f.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set follow-up ID: %w", err)
		}
	}

	return nil
}

func (r *FollowUpRepository) Update(ctx context.Context, f *followup.FollowUp) error {
	model := r.mapper.ToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	// Map update so a nil resolved_at is written out, not skipped.
	result := tx.Model(&models.FollowUpModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"person":      model.Person,
			"summary":     model.Summary,
			"source_link": model.SourceLink,
			"resolved_at": model.ResolvedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update follow-up: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("follow-up not found: %d", model.ID)
	}

	return nil
}

func (r *FollowUpRepository) GetByID(ctx context.Context, id uint) (*followup.FollowUp, error) {
	var model models.FollowUpModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find follow-up: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *FollowUpRepository) List(ctx context.Context, includeResolved bool) ([]*followup.FollowUp, error) {
	var followUpModels []models.FollowUpModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Order("id ASC")
	if !includeResolved {
		query = query.Where("resolved_at IS NULL")
	}

	if err := query.Find(&followUpModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list follow-ups: %w", err)
	}

	followUps := make([]*followup.FollowUp, 0, len(followUpModels))
	for i := range followUpModels {
		f, err := r.mapper.ToDomain(&followUpModels[i])
		if err != nil {
			return nil, err
		}
		followUps = append(followUps, f)
	}

	return followUps, nil
}
