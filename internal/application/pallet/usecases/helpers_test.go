package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"depot/internal/domain/pallet"
	vo "depot/internal/domain/pallet/valueobjects"
	"depot/internal/domain/system"
)

func openPallet(t *testing.T, id uint, number string, factoryID, partNumberID uint) *pallet.Pallet {
	t.Helper()
	now := time.Now().Add(-time.Hour)
	p, err := pallet.ReconstructPallet(
		id, number, factoryID, partNumberID, vo.StatusOpen, nil, nil, nil, now, now)
	require.NoError(t, err)
	return p
}

func lockedPallet(t *testing.T, id uint, number string, factoryID, partNumberID, lockedBy uint) *pallet.Pallet {
	t.Helper()
	now := time.Now().Add(-time.Hour)
	lock, err := vo.NewLockInfo(lockedBy, now)
	require.NoError(t, err)
	p, err := pallet.ReconstructPallet(
		id, number, factoryID, partNumberID, vo.StatusOpen, lock, nil, nil, now, now)
	require.NoError(t, err)
	return p
}

func releasedPallet(t *testing.T, id uint, number string, factoryID, partNumberID uint) *pallet.Pallet {
	t.Helper()
	created := time.Now().Add(-2 * time.Hour)
	released := time.Now().Add(-time.Hour)
	doa := "DOA00001"
	p, err := pallet.ReconstructPallet(
		id, number, factoryID, partNumberID, vo.StatusReleased, nil, &doa, &released, created, released)
	require.NoError(t, err)
	return p
}

func openMembership(t *testing.T, id, palletID, systemID uint) *pallet.Membership {
	t.Helper()
	m, err := pallet.ReconstructMembership(
		id, palletID, systemID, time.Now().Add(-time.Hour), nil)
	require.NoError(t, err)
	return m
}

func unitAt(t *testing.T, id uint, tag, ppid string, locationID uint) *system.System {
	t.Helper()
	now := time.Now().Add(-time.Hour)
	s, err := system.ReconstructSystem(id, tag, "screen cracked", ppid, &locationID, now, now)
	require.NoError(t, err)
	return s
}
