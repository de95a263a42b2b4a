package dto

import (
	"time"

	"depot/internal/domain/system"
)

type HistoryEntryDTO struct {
	ID             uint      `json:"id"`
	SystemID       uint      `json:"system_id"`
	FromLocationID *uint     `json:"from_location_id"`
	ToLocationID   uint      `json:"to_location_id"`
	ActorID        uint      `json:"actor_id"`
	Note           string    `json:"note"`
	ChangedAt      time.Time `json:"changed_at"`
}

func ToHistoryEntryDTO(e *system.HistoryEntry) *HistoryEntryDTO {
	if e == nil {
		return nil
	}
	return &HistoryEntryDTO{
		ID:             e.ID(),
		SystemID:       e.SystemID(),
		FromLocationID: e.FromLocationID(),
		ToLocationID:   e.ToLocationID(),
		ActorID:        e.ActorID(),
		Note:           e.Note(),
		ChangedAt:      e.ChangedAt(),
	}
}

func ToHistoryEntryDTOs(entries []*system.HistoryEntry) []*HistoryEntryDTO {
	dtos := make([]*HistoryEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = ToHistoryEntryDTO(e)
	}
	return dtos
}
