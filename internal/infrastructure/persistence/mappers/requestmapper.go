package mappers

import (
	"time"

	"briefing/internal/domain/channel"
	"briefing/internal/domain/request"
	vo "briefing/internal/domain/request/valueobjects"
	"briefing/internal/infrastructure/persistence/models"
)

// RequestMapper handles the conversion between Request domain entities
// and persistence models.
type RequestMapper interface {
	ToModel(r *request.Request) *models.RequestModel
	ToDomain(model *models.RequestModel) (*request.Request, error)
	ItemToModel(item *request.Item) *models.RequestItemModel
	ItemToDomain(model *models.RequestItemModel) (*request.Item, error)
}

type RequestMapperImpl struct{}

func NewRequestMapper() RequestMapper {
	return &RequestMapperImpl{}
}

func (m *RequestMapperImpl) ToModel(r *request.Request) *models.RequestModel {
	model := &models.RequestModel{
		ID:          r.ID(),
		Name:        r.Name(),
		Description: r.Description(),
		Status:      r.Status().String(),
		Priority:    r.Priority().String(),
		Version:     r.Version(),
		CreatedAt:   r.CreatedAt().UnixMilli(),
		UpdatedAt:   r.UpdatedAt().UnixMilli(),
	}

	if r.ClosedAt() != nil {
		closed := r.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

func (m *RequestMapperImpl) ToDomain(model *models.RequestModel) (*request.Request, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}

	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, err
	}

	var closedAt *time.Time
	if model.ClosedAt != nil {
		t := time.UnixMilli(*model.ClosedAt).UTC()
		closedAt = &t
	}

	return request.ReconstructRequest(
		model.ID,
		model.Name,
		model.Description,
		status,
		priority,
		model.Version,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
		closedAt,
	)
}

func (m *RequestMapperImpl) ItemToModel(item *request.Item) *models.RequestItemModel {
	return &models.RequestItemModel{
		ID:        item.ID(),
		RequestID: item.RequestID(),
		Channel:   item.Channel().String(),
		ItemID:    item.ItemID(),
		Label:     item.Label(),
		AddedAt:   item.AddedAt().UnixMilli(),
	}
}

func (m *RequestMapperImpl) ItemToDomain(model *models.RequestItemModel) (*request.Item, error) {
	ch, err := channel.NewChannel(model.Channel)
	if err != nil {
		return nil, err
	}

	return request.ReconstructItem(
		model.ID,
		model.RequestID,
		ch,
		model.ItemID,
		model.Label,
		time.UnixMilli(model.AddedAt).UTC(),
	)
}
