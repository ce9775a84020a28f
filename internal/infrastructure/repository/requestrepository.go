package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"briefing/internal/domain/request"
	vo "briefing/internal/domain/request/valueobjects"
	"briefing/internal/infrastructure/persistence/mappers"
	"briefing/internal/infrastructure/persistence/models"
	db "briefing/internal/shared/db"
)

// RequestRepository persists requests and their linked items. Status
// transitions use a compare-and-swap on the stored status so concurrent
// writers surface as request.ErrStatusConflict instead of lost updates.
type RequestRepository struct {
	db     *gorm.DB
	mapper mappers.RequestMapper
}

func NewRequestRepository(gdb *gorm.DB) *RequestRepository {
	return &RequestRepository{
		db:     gdb,
		mapper: mappers.NewRequestMapper(),
	}
}

func (r *RequestRepository) Save(ctx context.Context, req *request.Request) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if req.ID() == 0 {
		if err := req.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set request ID: %w", err)
		}
	}

	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id uint) (*request.Request, error) {
	var model models.RequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}

	req, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadItems(tx, []*request.Request{req}); err != nil {
		return nil, err
	}

	return req, nil
}

func (r *RequestRepository) List(ctx context.Context, filter request.Filter) ([]*request.Request, error) {
	var requestModels []models.RequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Order("id ASC")
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	if err := query.Find(&requestModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	return r.toDomainWithItems(tx, requestModels)
}

func (r *RequestRepository) Search(ctx context.Context, text string) ([]*request.Request, error) {
	var requestModels []models.RequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	pattern := "%" + strings.ToLower(text) + "%"
	query := tx.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("id ASC")

	if err := query.Find(&requestModels).Error; err != nil {
		return nil, fmt.Errorf("failed to search requests: %w", err)
	}

	return r.toDomainWithItems(tx, requestModels)
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, req *request.Request, expected vo.Status) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	// Compare-and-swap on the stored status. Map update so a cleared
	// closed_at is written out as NULL on reopen.
	result := tx.Model(&models.RequestModel{}).
		Where("id = ? AND status = ?", model.ID, expected.String()).
		Updates(map[string]interface{}{
			"status":     model.Status,
			"closed_at":  model.ClosedAt,
			"version":    model.Version,
			"updated_at": time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update request status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.RequestModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check request existence: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("request not found: %d", model.ID)
		}
		return request.ErrStatusConflict
	}

	return nil
}

func (r *RequestRepository) SaveItem(ctx context.Context, item *request.Item) error {
	model := r.mapper.ItemToModel(item)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to create request item: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// A concurrent writer linked the same item first; adopt its row.
		var existing models.RequestItemModel
		err := tx.Where("request_id = ? AND channel = ? AND item_id = ?",
			model.RequestID, model.Channel, model.ItemID).
			First(&existing).Error
		if err != nil {
			return fmt.Errorf("failed to load existing request item: %w", err)
		}
		model.ID = existing.ID
	}

	if item.ID() == 0 {
		if err := item.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set request item ID: %w", err)
		}
	}

	return nil
}

func (r *RequestRepository) Delete(ctx context.Context, id uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	existed := false
	err := tx.Transaction(func(ttx *gorm.DB) error {
		if err := ttx.Where("request_id = ?", id).Delete(&models.RequestItemModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete request items: %w", err)
		}

		result := ttx.Delete(&models.RequestModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete request: %w", result.Error)
		}
		existed = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}

	return existed, nil
}

func (r *RequestRepository) toDomainWithItems(tx *gorm.DB, requestModels []models.RequestModel) ([]*request.Request, error) {
	requests := make([]*request.Request, 0, len(requestModels))
	for i := range requestModels {
		req, err := r.mapper.ToDomain(&requestModels[i])
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err := r.loadItems(tx, requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// loadItems fetches the items for all given requests in one query.
func (r *RequestRepository) loadItems(tx *gorm.DB, requests []*request.Request) error {
	if len(requests) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(requests))
	byID := make(map[uint]*request.Request, len(requests))
	for _, req := range requests {
		ids = append(ids, req.ID())
		byID[req.ID()] = req
	}

	var itemModels []models.RequestItemModel
	if err := tx.Where("request_id IN ?", ids).Order("id ASC").Find(&itemModels).Error; err != nil {
		return fmt.Errorf("failed to load request items: %w", err)
	}

	for i := range itemModels {
		item, err := r.mapper.ItemToDomain(&itemModels[i])
		if err != nil {
			return err
		}
		req, ok := byID[item.RequestID()]
		if !ok {
			continue
		}
		if err := req.AddItem(item); err != nil {
			return err
		}
	}

	return nil
}
