package usecases

import (
	"context"

	"depot/internal/domain/system"
	"depot/internal/shared/logger"
)

type mockSystemRepository struct {
	SaveFunc              func(ctx context.Context, s *system.System) error
	UpdateFunc            func(ctx context.Context, s *system.System) error
	GetByIDFunc           func(ctx context.Context, systemID uint) (*system.System, error)
	GetByIDsFunc          func(ctx context.Context, systemIDs []uint) ([]*system.System, error)
	GetByTagFunc          func(ctx context.Context, tag string) (*system.System, error)
	GetByTagForUpdateFunc func(ctx context.Context, tag string) (*system.System, error)
}

func (m *mockSystemRepository) Save(ctx context.Context, s *system.System) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockSystemRepository) Update(ctx context.Context, s *system.System) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSystemRepository) GetByID(ctx context.Context, systemID uint) (*system.System, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, systemID)
	}
	return nil, nil
}

func (m *mockSystemRepository) GetByIDs(ctx context.Context, systemIDs []uint) ([]*system.System, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, systemIDs)
	}
	return nil, nil
}

func (m *mockSystemRepository) GetByTag(ctx context.Context, tag string) (*system.System, error) {
	if m.GetByTagFunc != nil {
		return m.GetByTagFunc(ctx, tag)
	}
	return nil, nil
}

func (m *mockSystemRepository) GetByTagForUpdate(ctx context.Context, tag string) (*system.System, error) {
	if m.GetByTagForUpdateFunc != nil {
		return m.GetByTagForUpdateFunc(ctx, tag)
	}
	return nil, nil
}

type mockHistoryRepository struct {
	AppendFunc          func(ctx context.Context, e *system.HistoryEntry) error
	ListNewestFirstFunc func(ctx context.Context, systemID uint, limit int) ([]*system.HistoryEntry, error)
	CountBySystemFunc   func(ctx context.Context, systemID uint) (int64, error)
	DeleteEntryFunc     func(ctx context.Context, entryID uint) error
}

func (m *mockHistoryRepository) Append(ctx context.Context, e *system.HistoryEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, e)
	}
	return nil
}

func (m *mockHistoryRepository) ListNewestFirst(ctx context.Context, systemID uint, limit int) ([]*system.HistoryEntry, error) {
	if m.ListNewestFirstFunc != nil {
		return m.ListNewestFirstFunc(ctx, systemID, limit)
	}
	return nil, nil
}

func (m *mockHistoryRepository) CountBySystem(ctx context.Context, systemID uint) (int64, error) {
	if m.CountBySystemFunc != nil {
		return m.CountBySystemFunc(ctx, systemID)
	}
	return 0, nil
}

func (m *mockHistoryRepository) DeleteEntry(ctx context.Context, entryID uint) error {
	if m.DeleteEntryFunc != nil {
		return m.DeleteEntryFunc(ctx, entryID)
	}
	return nil
}

type mockLocationRepository struct {
	GetByIDFunc func(ctx context.Context, locationID uint) (*system.Location, error)
	ListAllFunc func(ctx context.Context) ([]*system.Location, error)
}

func (m *mockLocationRepository) GetByID(ctx context.Context, locationID uint) (*system.Location, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, locationID)
	}
	return nil, nil
}

func (m *mockLocationRepository) ListAll(ctx context.Context) ([]*system.Location, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
