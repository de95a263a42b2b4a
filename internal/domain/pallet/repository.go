package pallet

import (
	"context"
	"time"

	"depot/internal/shared/query"
)

type PalletRepository interface {
	Save(ctx context.Context, p *Pallet) error
	Update(ctx context.Context, p *Pallet) error
	Delete(ctx context.Context, palletID uint) error
	GetByID(ctx context.Context, palletID uint) (*Pallet, error)
	// GetByIDForUpdate reads the pallet under a row-level lock. Release and
	// lock toggles go through it so they serialize on the pallet row.
	GetByIDForUpdate(ctx context.Context, palletID uint) (*Pallet, error)
	GetByNumber(ctx context.Context, number string) (*Pallet, error)
	List(ctx context.Context, filter PalletFilter) ([]*Pallet, int64, error)
}

type PalletFilter struct {
	// Expr is an optional caller-supplied predicate tree over whitelisted
	// pallet columns.
	Expr *query.FilterNode
	query.PageFilter
	query.SortFilter
}

// MembershipLedger is the append-only interval ledger of pallet<->system
// memberships. Open and Close must be called inside the transaction that
// performed their existence checks.
type MembershipLedger interface {
	// Open starts a membership interval. Fails if an open interval already
	// exists for the (pallet, system) pair.
	Open(ctx context.Context, palletID, systemID uint, at time.Time) (*Membership, error)
	// Close ends the open interval for the pair. Fails if none is open.
	Close(ctx context.Context, palletID, systemID uint, at time.Time) error
	// CloseAllForPallet closes every open interval on the pallet with one
	// shared timestamp. Returns the number of intervals closed.
	CloseAllForPallet(ctx context.Context, palletID uint, at time.Time) (int64, error)
	// ActiveAt returns the memberships whose interval contains asOf,
	// inclusive on both ends.
	ActiveAt(ctx context.Context, palletID uint, asOf time.Time) ([]*Membership, error)
	// FindActiveByPalletAndSystem returns the open interval for the pair,
	// or nil when there is none.
	FindActiveByPalletAndSystem(ctx context.Context, palletID, systemID uint) (*Membership, error)
	// FindActiveBySystem returns the system's open interval across all
	// pallets, or nil. A system holds at most one at any instant.
	FindActiveBySystem(ctx context.Context, systemID uint) (*Membership, error)
	// CountActive returns the number of open intervals on the pallet.
	CountActive(ctx context.Context, palletID uint) (int64, error)
}
