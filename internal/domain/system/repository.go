package system

import "context"

type SystemRepository interface {
	Save(ctx context.Context, s *System) error
	Update(ctx context.Context, s *System) error
	GetByID(ctx context.Context, systemID uint) (*System, error)
	GetByIDs(ctx context.Context, systemIDs []uint) ([]*System, error)
	GetByTag(ctx context.Context, tag string) (*System, error)
	// GetByTagForUpdate reads the system under a row-level lock so location
	// appends serialize with the move eligibility check.
	GetByTagForUpdate(ctx context.Context, tag string) (*System, error)
}

type LocationRepository interface {
	GetByID(ctx context.Context, locationID uint) (*Location, error)
	ListAll(ctx context.Context) ([]*Location, error)
}

// HistoryRepository persists the append-only location chain. Entries come
// back newest first.
type HistoryRepository interface {
	Append(ctx context.Context, e *HistoryEntry) error
	// ListNewestFirst returns up to limit entries for the system, newest
	// first. limit <= 0 means all.
	ListNewestFirst(ctx context.Context, systemID uint, limit int) ([]*HistoryEntry, error)
	CountBySystem(ctx context.Context, systemID uint) (int64, error)
	DeleteEntry(ctx context.Context, entryID uint) error
}
