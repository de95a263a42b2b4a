package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depot/internal/domain/pallet"
	"depot/internal/domain/system"
	"depot/internal/shared/errors"
)

func TestAddPalletMemberUseCase_Execute_Success(t *testing.T) {
	p := openPallet(t, 10, "PAL-WHF-X1234-06150101", 3, 7)
	unit := unitAt(t, 100, "SN-A", "PPID-A", 5)

	var lockedID uint
	palletRepo := &mockPalletRepository{
		GetByNumberFunc: func(ctx context.Context, number string) (*pallet.Pallet, error) {
			return p, nil
		},
		GetByIDForUpdateFunc: func(ctx context.Context, palletID uint) (*pallet.Pallet, error) {
			lockedID = palletID
			return p, nil
		},
	}
	systemRepo := &mockSystemRepository{
		GetByTagForUpdateFunc: func(ctx context.Context, tag string) (*system.System, error) {
			return unit, nil
		},
	}
	ledger := &mockMembershipLedger{
		FindActiveBySystemFunc: func(ctx context.Context, systemID uint) (*pallet.Membership, error) {
			return nil, nil
		},
		OpenFunc: func(ctx context.Context, palletID, systemID uint, at time.Time) (*pallet.Membership, error) {
			assert.Equal(t, uint(10), palletID)
			assert.Equal(t, uint(100), systemID)
			return openMembership(t, 55, palletID, systemID), nil
		},
	}
	locationRepo := &mockLocationRepository{
		GetByIDFunc: func(ctx context.Context, locationID uint) (*system.Location, error) {
			return rmaLocation(t, locationID), nil
		},
	}

	useCase := NewAddPalletMemberUseCase(
		palletRepo, ledger, systemRepo, locationRepo, &mockTxManager{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), AddPalletMemberCommand{
		Number:    p.Number(),
		SystemTag: "SN-A",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(55), result.MembershipID)

	// The eligibility checks ran on the row-locked read.
	assert.Equal(t, uint(10), lockedID)
}

func TestAddPalletMemberUseCase_Execute_ReleasedUnderLock(t *testing.T) {
	// The unlocked read still sees an open pallet; the row-locked re-read
	// observes a release that committed in between.
	stale := openPallet(t, 10, "PAL-WHF-X1234-06150101", 3, 7)
	current := releasedPallet(t, 10, "PAL-WHF-X1234-06150101", 3, 7)
	unit := unitAt(t, 100, "SN-A", "PPID-A", 5)

	openCalled := false
	palletRepo := &mockPalletRepository{
		GetByNumberFunc: func(ctx context.Context, number string) (*pallet.Pallet, error) {
			return stale, nil
		},
		GetByIDForUpdateFunc: func(ctx context.Context, palletID uint) (*pallet.Pallet, error) {
			return current, nil
		},
	}
	systemRepo := &mockSystemRepository{
		GetByTagForUpdateFunc: func(ctx context.Context, tag string) (*system.System, error) {
			return unit, nil
		},
	}
	ledger := &mockMembershipLedger{
		OpenFunc: func(ctx context.Context, palletID, systemID uint, at time.Time) (*pallet.Membership, error) {
			openCalled = true
			return openMembership(t, 55, palletID, systemID), nil
		},
	}

	useCase := NewAddPalletMemberUseCase(
		palletRepo, ledger, systemRepo, &mockLocationRepository{},
		&mockTxManager{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), AddPalletMemberCommand{
		Number:    stale.Number(),
		SystemTag: "SN-A",
	})

	require.Error(t, err)
	assert.True(t, errors.IsInvalidStateError(err))
	assert.False(t, openCalled)
}

func TestAddPalletMemberUseCase_Execute_AlreadyOnPallet(t *testing.T) {
	p := openPallet(t, 10, "PAL-WHF-X1234-06150101", 3, 7)
	unit := unitAt(t, 100, "SN-A", "PPID-A", 5)

	palletRepo := &mockPalletRepository{
		GetByNumberFunc: func(ctx context.Context, number string) (*pallet.Pallet, error) {
			return p, nil
		},
		GetByIDForUpdateFunc: func(ctx context.Context, palletID uint) (*pallet.Pallet, error) {
			return p, nil
		},
	}
	systemRepo := &mockSystemRepository{
		GetByTagForUpdateFunc: func(ctx context.Context, tag string) (*system.System, error) {
			return unit, nil
		},
	}
	ledger := &mockMembershipLedger{
		FindActiveBySystemFunc: func(ctx context.Context, systemID uint) (*pallet.Membership, error) {
			return openMembership(t, 1, 99, systemID), nil
		},
	}

	useCase := NewAddPalletMemberUseCase(
		palletRepo, ledger, systemRepo, &mockLocationRepository{}, &mockTxManager{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), AddPalletMemberCommand{
		Number:    p.Number(),
		SystemTag: "SN-A",
	})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestAddPalletMemberUseCase_Execute_NotRMA(t *testing.T) {
	p := openPallet(t, 10, "PAL-WHF-X1234-06150101", 3, 7)
	unit := unitAt(t, 100, "SN-A", "PPID-A", 6)

	palletRepo := &mockPalletRepository{
		GetByNumberFunc: func(ctx context.Context, number string) (*pallet.Pallet, error) {
			return p, nil
		},
		GetByIDForUpdateFunc: func(ctx context.Context, palletID uint) (*pallet.Pallet, error) {
			return p, nil
		},
	}
	systemRepo := &mockSystemRepository{
		GetByTagForUpdateFunc: func(ctx context.Context, tag string) (*system.System, error) {
			return unit, nil
		},
	}
	locationRepo := &mockLocationRepository{
		GetByIDFunc: func(ctx context.Context, locationID uint) (*system.Location, error) {
			return repairLocation(t, locationID), nil
		},
	}

	useCase := NewAddPalletMemberUseCase(
		palletRepo, &mockMembershipLedger{}, systemRepo, locationRepo,
		&mockTxManager{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), AddPalletMemberCommand{
		Number:    p.Number(),
		SystemTag: "SN-A",
	})

	require.Error(t, err)
	assert.True(t, errors.IsInvalidStateError(err))
}

func TestAddPalletMemberUseCase_Execute_LockedPallet(t *testing.T) {
	p := lockedPallet(t, 10, "PAL-WHF-X1234-06150101", 3, 7, 9)
	unit := unitAt(t, 100, "SN-A", "PPID-A", 5)

	palletRepo := &mockPalletRepository{
		GetByNumberFunc: func(ctx context.Context, number string) (*pallet.Pallet, error) {
			return p, nil
		},
		GetByIDForUpdateFunc: func(ctx context.Context, palletID uint) (*pallet.Pallet, error) {
			return p, nil
		},
	}
	systemRepo := &mockSystemRepository{
		GetByTagForUpdateFunc: func(ctx context.Context, tag string) (*system.System, error) {
			return unit, nil
		},
	}

	useCase := NewAddPalletMemberUseCase(
		palletRepo, &mockMembershipLedger{}, systemRepo, &mockLocationRepository{},
		&mockTxManager{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), AddPalletMemberCommand{
		Number:    p.Number(),
		SystemTag: "SN-A",
	})

	require.Error(t, err)
	assert.True(t, errors.IsInvalidStateError(err))
}
