package dto

import (
	"time"

	"depot/internal/domain/pallet"
	"depot/internal/domain/system"
)

type PalletDTO struct {
	ID           uint            `json:"id"`
	Number       string          `json:"number"`
	Status       string          `json:"status"`
	FactoryID    uint            `json:"factory_id"`
	PartNumberID uint            `json:"part_number_id"`
	LockedBy     *uint           `json:"locked_by"`
	LockedAt     *time.Time      `json:"locked_at"`
	DOANumber    *string         `json:"doa_number"`
	ReleasedAt   *time.Time      `json:"released_at"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Snapshot     []SnapshotEntry `json:"snapshot"`
}

// SnapshotEntry is one member of a pallet's snapshot: the membership
// interval joined with the unit it covers.
type SnapshotEntry struct {
	SystemID   uint       `json:"system_id"`
	Tag        string     `json:"tag"`
	PPID       string     `json:"ppid"`
	LocationID *uint      `json:"location_id"`
	AddedAt    time.Time  `json:"added_at"`
	RemovedAt  *time.Time `json:"removed_at"`
}

func ToPalletDTO(p *pallet.Pallet, snapshot []SnapshotEntry) *PalletDTO {
	if p == nil {
		return nil
	}

	d := &PalletDTO{
		ID:           p.ID(),
		Number:       p.Number(),
		Status:       p.Status().String(),
		FactoryID:    p.FactoryID(),
		PartNumberID: p.PartNumberID(),
		DOANumber:    p.DOANumber(),
		ReleasedAt:   p.ReleasedAt(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
		Snapshot:     snapshot,
	}
	if d.Snapshot == nil {
		d.Snapshot = []SnapshotEntry{}
	}

	if lock := p.Lock(); lock != nil {
		by := lock.By()
		at := lock.At()
		d.LockedBy = &by
		d.LockedAt = &at
	}

	return d
}

func ToSnapshotEntries(memberships []*pallet.Membership, systems []*system.System) []SnapshotEntry {
	byID := make(map[uint]*system.System, len(systems))
	for _, s := range systems {
		byID[s.ID()] = s
	}

	entries := make([]SnapshotEntry, 0, len(memberships))
	for _, m := range memberships {
		entry := SnapshotEntry{
			SystemID:  m.SystemID(),
			AddedAt:   m.AddedAt(),
			RemovedAt: m.RemovedAt(),
		}
		if s, ok := byID[m.SystemID()]; ok {
			entry.Tag = s.Tag()
			entry.PPID = s.PPID()
			entry.LocationID = s.LocationID()
		}
		entries = append(entries, entry)
	}

	return entries
}
