package pallet

import (
	"fmt"
	"time"

	vo "depot/internal/domain/pallet/valueobjects"
)

// MinDOANumberLength is the minimum accepted length of a DOA reference code.
const MinDOANumberLength = 5

// Pallet is a shipping group of systems bound for one factory and part
// number. Its lifecycle is open -> released; while open it carries an
// optional lock.
type Pallet struct {
	id           uint
	number       string
	factoryID    uint
	partNumberID uint
	status       vo.PalletStatus
	lock         *vo.LockInfo
	doaNumber    *string
	releasedAt   *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPallet(number string, factoryID, partNumberID uint) (*Pallet, error) {
	if len(number) == 0 {
		return nil, fmt.Errorf("pallet number is required")
	}
	if factoryID == 0 {
		return nil, fmt.Errorf("factory ID is required")
	}
	if partNumberID == 0 {
		return nil, fmt.Errorf("part number ID is required")
	}

	now := time.Now()
	return &Pallet{
		number:       number,
		factoryID:    factoryID,
		partNumberID: partNumberID,
		status:       vo.StatusOpen,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructPallet(
	id uint,
	number string,
	factoryID uint,
	partNumberID uint,
	status vo.PalletStatus,
	lock *vo.LockInfo,
	doaNumber *string,
	releasedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Pallet, error) {
	if id == 0 {
		return nil, fmt.Errorf("pallet ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("pallet number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if status.IsReleased() && (doaNumber == nil || releasedAt == nil) {
		return nil, fmt.Errorf("released pallet must carry DOA number and release time")
	}
	if status.IsReleased() && lock != nil {
		return nil, fmt.Errorf("released pallet cannot be locked")
	}

	return &Pallet{
		id:           id,
		number:       number,
		factoryID:    factoryID,
		partNumberID: partNumberID,
		status:       status,
		lock:         lock,
		doaNumber:    doaNumber,
		releasedAt:   releasedAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *Pallet) ID() uint {
	return p.id
}

func (p *Pallet) Number() string {
	return p.number
}

func (p *Pallet) FactoryID() uint {
	return p.factoryID
}

func (p *Pallet) PartNumberID() uint {
	return p.partNumberID
}

func (p *Pallet) Status() vo.PalletStatus {
	return p.status
}

func (p *Pallet) Lock() *vo.LockInfo {
	return p.lock
}

func (p *Pallet) IsLocked() bool {
	return p.lock != nil
}

func (p *Pallet) DOANumber() *string {
	return p.doaNumber
}

func (p *Pallet) ReleasedAt() *time.Time {
	return p.releasedAt
}

func (p *Pallet) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Pallet) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Pallet) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("pallet ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("pallet ID cannot be zero")
	}
	p.id = id
	return nil
}

// SetLock applies the desired lock state. Repeating the current state is an
// idempotent no-op; the returned bool reports whether anything changed.
func (p *Pallet) SetLock(desired bool, actorID uint, at time.Time) (bool, error) {
	if !p.status.IsOpen() {
		return false, ErrNotOpen
	}

	if desired == p.IsLocked() {
		return false, nil
	}

	if desired {
		lock, err := vo.NewLockInfo(actorID, at)
		if err != nil {
			return false, err
		}
		p.lock = lock
	} else {
		p.lock = nil
	}
	p.updatedAt = at
	return true, nil
}

// CanModifyMembers reports whether the member set may change. Only an open,
// unlocked pallet accepts membership adds, removes, and moves.
func (p *Pallet) CanModifyMembers() error {
	if !p.status.IsOpen() {
		return ErrNotOpen
	}
	if p.lock != nil {
		return ErrLocked
	}
	return nil
}

// Release moves the pallet to its terminal state. The caller supplies the
// single authoritative release timestamp that membership closes share.
func (p *Pallet) Release(doaNumber string, at time.Time) error {
	if p.status.IsReleased() {
		return ErrAlreadyReleased
	}
	if !p.status.CanTransitionTo(vo.StatusReleased) {
		return ErrNotOpen
	}
	if len(doaNumber) < MinDOANumberLength {
		return ErrDOATooShort
	}

	p.status = vo.StatusReleased
	p.doaNumber = &doaNumber
	p.releasedAt = &at
	p.lock = nil
	p.updatedAt = at
	return nil
}

// SnapshotTime is the instant at which the pallet's member set is defined:
// now for open pallets, the release instant for released ones.
func (p *Pallet) SnapshotTime(now time.Time) time.Time {
	if p.status.IsReleased() && p.releasedAt != nil {
		return *p.releasedAt
	}
	return now
}

// SameDestination reports whether the other pallet shares this pallet's
// factory and part number. Members may only move between same-destination
// pallets.
func (p *Pallet) SameDestination(other *Pallet) bool {
	return p.factoryID == other.factoryID && p.partNumberID == other.partNumberID
}
