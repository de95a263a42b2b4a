package system

import (
	"fmt"
	"time"
)

// HistoryEntry is one link of a unit's location chain. Entries are immutable
// once written; the only permitted mutation of the chain is deleting its
// newest entry (undo-last).
type HistoryEntry struct {
	id             uint
	systemID       uint
	fromLocationID *uint
	toLocationID   uint
	actorID        uint
	note           string
	changedAt      time.Time
}

func NewHistoryEntry(systemID uint, fromLocationID *uint, toLocationID, actorID uint, note string, changedAt time.Time) (*HistoryEntry, error) {
	if systemID == 0 {
		return nil, fmt.Errorf("system ID is required")
	}
	if toLocationID == 0 {
		return nil, fmt.Errorf("to-location is required")
	}
	if actorID == 0 {
		return nil, fmt.Errorf("actor ID is required")
	}
	if changedAt.IsZero() {
		return nil, fmt.Errorf("change time is required")
	}

	return &HistoryEntry{
		systemID:       systemID,
		fromLocationID: fromLocationID,
		toLocationID:   toLocationID,
		actorID:        actorID,
		note:           note,
		changedAt:      changedAt,
	}, nil
}

func ReconstructHistoryEntry(id, systemID uint, fromLocationID *uint, toLocationID, actorID uint, note string, changedAt time.Time) (*HistoryEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("history entry ID cannot be zero")
	}
	if systemID == 0 || toLocationID == 0 {
		return nil, fmt.Errorf("system and to-location IDs are required")
	}

	return &HistoryEntry{
		id:             id,
		systemID:       systemID,
		fromLocationID: fromLocationID,
		toLocationID:   toLocationID,
		actorID:        actorID,
		note:           note,
		changedAt:      changedAt,
	}, nil
}

func (e *HistoryEntry) ID() uint {
	return e.id
}

func (e *HistoryEntry) SystemID() uint {
	return e.systemID
}

func (e *HistoryEntry) FromLocationID() *uint {
	return e.fromLocationID
}

func (e *HistoryEntry) ToLocationID() uint {
	return e.toLocationID
}

func (e *HistoryEntry) ActorID() uint {
	return e.actorID
}

func (e *HistoryEntry) Note() string {
	return e.note
}

func (e *HistoryEntry) ChangedAt() time.Time {
	return e.changedAt
}

func (e *HistoryEntry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("history entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("history entry ID cannot be zero")
	}
	e.id = id
	return nil
}
