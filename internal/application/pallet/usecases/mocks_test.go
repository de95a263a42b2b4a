package usecases

import (
	"context"
	"time"

	"depot/internal/domain/catalog"
	"depot/internal/domain/pallet"
	"depot/internal/domain/system"
	"depot/internal/shared/logger"
)

type mockPalletRepository struct {
	SaveFunc             func(ctx context.Context, p *pallet.Pallet) error
	UpdateFunc           func(ctx context.Context, p *pallet.Pallet) error
	DeleteFunc           func(ctx context.Context, palletID uint) error
	GetByIDFunc          func(ctx context.Context, palletID uint) (*pallet.Pallet, error)
	GetByIDForUpdateFunc func(ctx context.Context, palletID uint) (*pallet.Pallet, error)
	GetByNumberFunc      func(ctx context.Context, number string) (*pallet.Pallet, error)
	ListFunc             func(ctx context.Context, filter pallet.PalletFilter) ([]*pallet.Pallet, int64, error)
}

func (m *mockPalletRepository) Save(ctx context.Context, p *pallet.Pallet) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPalletRepository) Update(ctx context.Context, p *pallet.Pallet) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPalletRepository) Delete(ctx context.Context, palletID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, palletID)
	}
	return nil
}

func (m *mockPalletRepository) GetByID(ctx context.Context, palletID uint) (*pallet.Pallet, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, palletID)
	}
	return nil, nil
}

func (m *mockPalletRepository) GetByIDForUpdate(ctx context.Context, palletID uint) (*pallet.Pallet, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, palletID)
	}
	return nil, nil
}

func (m *mockPalletRepository) GetByNumber(ctx context.Context, number string) (*pallet.Pallet, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockPalletRepository) List(ctx context.Context, filter pallet.PalletFilter) ([]*pallet.Pallet, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockMembershipLedger struct {
	OpenFunc                        func(ctx context.Context, palletID, systemID uint, at time.Time) (*pallet.Membership, error)
	CloseFunc                       func(ctx context.Context, palletID, systemID uint, at time.Time) error
	CloseAllForPalletFunc           func(ctx context.Context, palletID uint, at time.Time) (int64, error)
	ActiveAtFunc                    func(ctx context.Context, palletID uint, asOf time.Time) ([]*pallet.Membership, error)
	FindActiveByPalletAndSystemFunc func(ctx context.Context, palletID, systemID uint) (*pallet.Membership, error)
	FindActiveBySystemFunc          func(ctx context.Context, systemID uint) (*pallet.Membership, error)
	CountActiveFunc                 func(ctx context.Context, palletID uint) (int64, error)
}

func (m *mockMembershipLedger) Open(ctx context.Context, palletID, systemID uint, at time.Time) (*pallet.Membership, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(ctx, palletID, systemID, at)
	}
	return nil, nil
}

func (m *mockMembershipLedger) Close(ctx context.Context, palletID, systemID uint, at time.Time) error {
	if m.CloseFunc != nil {
		return m.CloseFunc(ctx, palletID, systemID, at)
	}
	return nil
}

func (m *mockMembershipLedger) CloseAllForPallet(ctx context.Context, palletID uint, at time.Time) (int64, error) {
	if m.CloseAllForPalletFunc != nil {
		return m.CloseAllForPalletFunc(ctx, palletID, at)
	}
	return 0, nil
}

func (m *mockMembershipLedger) ActiveAt(ctx context.Context, palletID uint, asOf time.Time) ([]*pallet.Membership, error) {
	if m.ActiveAtFunc != nil {
		return m.ActiveAtFunc(ctx, palletID, asOf)
	}
	return nil, nil
}

func (m *mockMembershipLedger) FindActiveByPalletAndSystem(ctx context.Context, palletID, systemID uint) (*pallet.Membership, error) {
	if m.FindActiveByPalletAndSystemFunc != nil {
		return m.FindActiveByPalletAndSystemFunc(ctx, palletID, systemID)
	}
	return nil, nil
}

func (m *mockMembershipLedger) FindActiveBySystem(ctx context.Context, systemID uint) (*pallet.Membership, error) {
	if m.FindActiveBySystemFunc != nil {
		return m.FindActiveBySystemFunc(ctx, systemID)
	}
	return nil, nil
}

func (m *mockMembershipLedger) CountActive(ctx context.Context, palletID uint) (int64, error) {
	if m.CountActiveFunc != nil {
		return m.CountActiveFunc(ctx, palletID)
	}
	return 0, nil
}

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

type mockFactoryRepository struct {
	GetByIDFunc   func(ctx context.Context, factoryID uint) (*catalog.Factory, error)
	GetByCodeFunc func(ctx context.Context, code string) (*catalog.Factory, error)
	ListAllFunc   func(ctx context.Context) ([]*catalog.Factory, error)
}

func (m *mockFactoryRepository) GetByID(ctx context.Context, factoryID uint) (*catalog.Factory, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, factoryID)
	}
	return nil, nil
}

func (m *mockFactoryRepository) GetByCode(ctx context.Context, code string) (*catalog.Factory, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockFactoryRepository) ListAll(ctx context.Context) ([]*catalog.Factory, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

type mockPartNumberRepository struct {
	GetByIDFunc   func(ctx context.Context, partNumberID uint) (*catalog.PartNumber, error)
	GetByNameFunc func(ctx context.Context, name string) (*catalog.PartNumber, error)
	ListAllFunc   func(ctx context.Context) ([]*catalog.PartNumber, error)
}

func (m *mockPartNumberRepository) GetByID(ctx context.Context, partNumberID uint) (*catalog.PartNumber, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, partNumberID)
	}
	return nil, nil
}

func (m *mockPartNumberRepository) GetByName(ctx context.Context, name string) (*catalog.PartNumber, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockPartNumberRepository) ListAll(ctx context.Context) ([]*catalog.PartNumber, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context, factoryID uint, factoryCode string, partNumberID uint, partNumberName string) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context, factoryID uint, factoryCode string, partNumberID uint, partNumberName string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, factoryID, factoryCode, partNumberID, partNumberName)
	}
	return "PAL-TEST-PART-01010101", nil
}

// mockTxManager runs the function directly; usecase tests exercise the
// logic, not the store.
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
