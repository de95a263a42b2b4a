package pallet

import (
	"fmt"
	"time"
)

// Membership is one time-bounded interval of a system's presence on a
// pallet. A nil removedAt means the interval is still open. Re-adding a
// system after removal creates a new row; rows are never reopened.
type Membership struct {
	id        uint
	palletID  uint
	systemID  uint
	addedAt   time.Time
	removedAt *time.Time
}

func NewMembership(palletID, systemID uint, addedAt time.Time) (*Membership, error) {
	if palletID == 0 {
		return nil, fmt.Errorf("pallet ID is required")
	}
	if systemID == 0 {
		return nil, fmt.Errorf("system ID is required")
	}
	if addedAt.IsZero() {
		return nil, fmt.Errorf("added time is required")
	}

	return &Membership{
		palletID: palletID,
		systemID: systemID,
		addedAt:  addedAt,
	}, nil
}

func ReconstructMembership(id, palletID, systemID uint, addedAt time.Time, removedAt *time.Time) (*Membership, error) {
	if id == 0 {
		return nil, fmt.Errorf("membership ID cannot be zero")
	}
	if palletID == 0 || systemID == 0 {
		return nil, fmt.Errorf("pallet and system IDs are required")
	}

	return &Membership{
		id:        id,
		palletID:  palletID,
		systemID:  systemID,
		addedAt:   addedAt,
		removedAt: removedAt,
	}, nil
}

func (m *Membership) ID() uint {
	return m.id
}

func (m *Membership) PalletID() uint {
	return m.palletID
}

func (m *Membership) SystemID() uint {
	return m.systemID
}

func (m *Membership) AddedAt() time.Time {
	return m.addedAt
}

func (m *Membership) RemovedAt() *time.Time {
	return m.removedAt
}

func (m *Membership) IsActive() bool {
	return m.removedAt == nil
}

// ActiveAt reports whether the interval contains asOf. Both ends are
// inclusive, so a membership closed exactly at the release instant still
// counts as present at release.
func (m *Membership) ActiveAt(asOf time.Time) bool {
	if m.addedAt.After(asOf) {
		return false
	}
	return m.removedAt == nil || !m.removedAt.Before(asOf)
}

// Close ends the interval at the given instant.
func (m *Membership) Close(at time.Time) error {
	if m.removedAt != nil {
		return ErrMembershipClosed
	}
	m.removedAt = &at
	return nil
}

func (m *Membership) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("membership ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("membership ID cannot be zero")
	}
	m.id = id
	return nil
}
