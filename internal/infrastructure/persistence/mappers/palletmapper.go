package mappers

import (
	"time"

	"depot/internal/domain/pallet"
	vo "depot/internal/domain/pallet/valueobjects"
	"depot/internal/infrastructure/persistence/models"
)

// PalletMapper handles the conversion between Pallet domain entities and persistence models.
type PalletMapper interface {
	// ToModel converts a pallet domain entity to a persistence model.
	ToModel(p *pallet.Pallet) *models.PalletModel

	// ToDomain converts a pallet persistence model to a domain entity.
	ToDomain(model *models.PalletModel) (*pallet.Pallet, error)

	// MembershipToModel converts a membership interval to a persistence model.
	MembershipToModel(m *pallet.Membership) *models.PalletMembershipModel

	// MembershipToDomain converts a membership persistence model to a domain entity.
	MembershipToDomain(model *models.PalletMembershipModel) (*pallet.Membership, error)
}

// PalletMapperImpl is the concrete implementation of PalletMapper.
type PalletMapperImpl struct{}

// NewPalletMapper creates a new PalletMapper.
func NewPalletMapper() PalletMapper {
	return &PalletMapperImpl{}
}

// ToModel converts a pallet domain entity to a persistence model.
func (m *PalletMapperImpl) ToModel(p *pallet.Pallet) *models.PalletModel {
	model := &models.PalletModel{
		ID:           p.ID(),
		Number:       p.Number(),
		FactoryID:    p.FactoryID(),
		PartNumberID: p.PartNumberID(),
		Status:       p.Status().String(),
		DOANumber:    p.DOANumber(),
		CreatedAt:    p.CreatedAt().UnixMilli(),
		UpdatedAt:    p.UpdatedAt().UnixMilli(),
	}

	if lock := p.Lock(); lock != nil {
		lockedAt := lock.At().UnixMilli()
		lockedBy := lock.By()
		model.LockedAt = &lockedAt
		model.LockedBy = &lockedBy
	}

	if p.ReleasedAt() != nil {
		released := p.ReleasedAt().UnixMilli()
		model.ReleasedAt = &released
	}

	return model
}

// ToDomain converts a pallet persistence model to a domain entity.
func (m *PalletMapperImpl) ToDomain(model *models.PalletModel) (*pallet.Pallet, error) {
	var lock *vo.LockInfo
	if model.LockedAt != nil && model.LockedBy != nil {
		l, err := vo.NewLockInfo(*model.LockedBy, time.UnixMilli(*model.LockedAt))
		if err != nil {
			return nil, err
		}
		lock = l
	}

	var releasedAt *time.Time
	if model.ReleasedAt != nil {
		t := time.UnixMilli(*model.ReleasedAt)
		releasedAt = &t
	}

	return pallet.ReconstructPallet(
		model.ID,
		model.Number,
		model.FactoryID,
		model.PartNumberID,
		vo.PalletStatus(model.Status),
		lock,
		model.DOANumber,
		releasedAt,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

// MembershipToModel converts a membership interval to a persistence model.
func (m *PalletMapperImpl) MembershipToModel(mem *pallet.Membership) *models.PalletMembershipModel {
	model := &models.PalletMembershipModel{
		ID:       mem.ID(),
		PalletID: mem.PalletID(),
		SystemID: mem.SystemID(),
		AddedAt:  mem.AddedAt().UnixMilli(),
	}

	if mem.RemovedAt() != nil {
		removed := mem.RemovedAt().UnixMilli()
		model.RemovedAt = &removed
	}

	return model
}

// MembershipToDomain converts a membership persistence model to a domain entity.
func (m *PalletMapperImpl) MembershipToDomain(model *models.PalletMembershipModel) (*pallet.Membership, error) {
	var removedAt *time.Time
	if model.RemovedAt != nil {
		t := time.UnixMilli(*model.RemovedAt)
		removedAt = &t
	}

	return pallet.ReconstructMembership(
		model.ID,
		model.PalletID,
		model.SystemID,
		time.UnixMilli(model.AddedAt),
		removedAt,
	)
}
