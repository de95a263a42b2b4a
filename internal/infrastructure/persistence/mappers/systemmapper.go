package mappers

import (
	"time"

	"depot/internal/domain/system"
	"depot/internal/infrastructure/persistence/models"
)

// SystemMapper handles the conversion between system domain entities and persistence models.
type SystemMapper interface {
	ToModel(s *system.System) *models.SystemModel
	ToDomain(model *models.SystemModel) (*system.System, error)
	HistoryToModel(e *system.HistoryEntry) *models.LocationHistoryModel
	HistoryToDomain(model *models.LocationHistoryModel) (*system.HistoryEntry, error)
	LocationToDomain(model *models.LocationModel) (*system.Location, error)
}

// SystemMapperImpl is the concrete implementation of SystemMapper.
type SystemMapperImpl struct{}

// NewSystemMapper creates a new SystemMapper.
func NewSystemMapper() SystemMapper {
	return &SystemMapperImpl{}
}

func (m *SystemMapperImpl) ToModel(s *system.System) *models.SystemModel {
	return &models.SystemModel{
		ID:         s.ID(),
		Tag:        s.Tag(),
		Issue:      s.Issue(),
		PPID:       s.PPID(),
		LocationID: s.LocationID(),
		CreatedAt:  s.CreatedAt().UnixMilli(),
		UpdatedAt:  s.UpdatedAt().UnixMilli(),
	}
}

func (m *SystemMapperImpl) ToDomain(model *models.SystemModel) (*system.System, error) {
	return system.ReconstructSystem(
		model.ID,
		model.Tag,
		model.Issue,
		model.PPID,
		model.LocationID,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *SystemMapperImpl) HistoryToModel(e *system.HistoryEntry) *models.LocationHistoryModel {
	return &models.LocationHistoryModel{
		ID:             e.ID(),
		SystemID:       e.SystemID(),
		FromLocationID: e.FromLocationID(),
		ToLocationID:   e.ToLocationID(),
		ActorID:        e.ActorID(),
		Note:           e.Note(),
		ChangedAt:      e.ChangedAt().UnixMilli(),
	}
}

func (m *SystemMapperImpl) HistoryToDomain(model *models.LocationHistoryModel) (*system.HistoryEntry, error) {
	return system.ReconstructHistoryEntry(
		model.ID,
		model.SystemID,
		model.FromLocationID,
		model.ToLocationID,
		model.ActorID,
		model.Note,
		time.UnixMilli(model.ChangedAt),
	)
}

func (m *SystemMapperImpl) LocationToDomain(model *models.LocationModel) (*system.Location, error) {
	return system.ReconstructLocation(model.ID, model.Name, model.Category)
}
