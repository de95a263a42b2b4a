package usecases

import (
	"context"
	"time"

	"depot/internal/application/pallet/dto"
	"depot/internal/domain/pallet"
	"depot/internal/domain/system"
)

// buildSnapshot resolves a pallet's member set at its snapshot instant:
// now for open pallets, the release instant for released ones. Every view
// of a pallet's members derives from this one interval query.
func buildSnapshot(
	ctx context.Context,
	ledger pallet.MembershipLedger,
	systemRepo system.SystemRepository,
	p *pallet.Pallet,
	now time.Time,
) ([]dto.SnapshotEntry, error) {
	memberships, err := ledger.ActiveAt(ctx, p.ID(), p.SnapshotTime(now))
	if err != nil {
		return nil, err
	}
	if len(memberships) == 0 {
		return []dto.SnapshotEntry{}, nil
	}

	systemIDs := make([]uint, len(memberships))
	for i, m := range memberships {
		systemIDs[i] = m.SystemID()
	}

	systems, err := systemRepo.GetByIDs(ctx, systemIDs)
	if err != nil {
		return nil, err
	}

	return dto.ToSnapshotEntries(memberships, systems), nil
}
