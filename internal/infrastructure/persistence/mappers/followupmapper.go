package mappers

import (
	"time"

	"briefing/internal/domain/followup"
	"briefing/internal/infrastructure/persistence/models"
)

// FollowUpMapper handles the conversion between FollowUp domain
// entities and persistence models.
type FollowUpMapper interface {
	ToModel(f *followup.FollowUp) *models.FollowUpModel
	ToDomain(model *models.FollowUpModel) (*followup.FollowUp, error)
}

type FollowUpMapperImpl struct{}

func NewFollowUpMapper() FollowUpMapper {
	return &FollowUpMapperImpl{}
}

func (m *FollowUpMapperImpl) ToModel(f *followup.FollowUp) *models.FollowUpModel {
	model := &models.FollowUpModel{
		ID:         f.ID(),
		Person:     f.Person(),
		Summary:    f.Summary(),
		SourceLink: f.SourceLink(),
		CreatedAt:  f.CreatedAt().UnixMilli(),
	}

	if f.ResolvedAt() != nil {
		resolved := f.ResolvedAt().UnixMilli()
		model.ResolvedAt = &resolved
	}

	return model
}

func (m *FollowUpMapperImpl) ToDomain(model *models.FollowUpModel) (*followup.FollowUp, error) {
	var resolvedAt *time.Time
	if model.ResolvedAt != nil {
		t := time.UnixMilli(*model.ResolvedAt).UTC()
		resolvedAt = &t
	}

	return followup.ReconstructFollowUp(
		model.ID,
		model.Person,
		model.Summary,
		model.SourceLink,
		time.UnixMilli(model.CreatedAt).UTC(),
		resolvedAt,
	)
}
