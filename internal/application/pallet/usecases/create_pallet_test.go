package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depot/internal/domain/catalog"
	"depot/internal/domain/pallet"
	"depot/internal/shared/errors"
)

func TestCreatePalletUseCase_Execute_Success(t *testing.T) {
	factory, err := catalog.ReconstructFactory(3, "WHF", "Weihai")
	require.NoError(t, err)
	part, err := catalog.ReconstructPartNumber(7, "X1234", "mainboard")
	require.NoError(t, err)

	var saved *pallet.Pallet
	palletRepo := &mockPalletRepository{
		SaveFunc: func(ctx context.Context, p *pallet.Pallet) error {
			if err := p.SetID(42); err != nil {
				return err
			}
			saved = p
			return nil
		},
	}
	factoryRepo := &mockFactoryRepository{
		GetByCodeFunc: func(ctx context.Context, code string) (*catalog.Factory, error) {
			assert.Equal(t, "WHF", code)
			return factory, nil
		},
	}
	partRepo := &mockPartNumberRepository{
		GetByNameFunc: func(ctx context.Context, name string) (*catalog.PartNumber, error) {
			assert.Equal(t, "X1234", name)
			return part, nil
		},
	}
	generator := &mockNumberGenerator{
		GenerateFunc: func(ctx context.Context, factoryID uint, factoryCode string, partNumberID uint, partNumberName string) (string, error) {
			assert.Equal(t, uint(3), factoryID)
			assert.Equal(t, uint(7), partNumberID)
			return "PAL-WHF-X1234-06150101", nil
		},
	}

	useCase := NewCreatePalletUseCase(
		palletRepo, factoryRepo, partRepo, generator, &mockTxManager{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), CreatePalletCommand{
		PartNumber:  "X1234",
		FactoryCode: "WHF",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(42), result.PalletID)
	assert.Equal(t, "PAL-WHF-X1234-06150101", result.Number)
	assert.Equal(t, "open", result.Status)

	require.NotNil(t, saved)
	assert.Equal(t, uint(3), saved.FactoryID())
	assert.Equal(t, uint(7), saved.PartNumberID())
	assert.False(t, saved.IsLocked())
}

func TestCreatePalletUseCase_Execute_UnknownFactory(t *testing.T) {
	factoryRepo := &mockFactoryRepository{
		GetByCodeFunc: func(ctx context.Context, code string) (*catalog.Factory, error) {
			return nil, assert.AnError
		},
	}

	useCase := NewCreatePalletUseCase(
		&mockPalletRepository{}, factoryRepo, &mockPartNumberRepository{},
		&mockNumberGenerator{}, &mockTxManager{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), CreatePalletCommand{
		PartNumber:  "X1234",
		FactoryCode: "NOPE",
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreatePalletUseCase_Execute_DuplicateNumber(t *testing.T) {
	factory, err := catalog.ReconstructFactory(3, "WHF", "Weihai")
	require.NoError(t, err)
	part, err := catalog.ReconstructPartNumber(7, "X1234", "mainboard")
	require.NoError(t, err)

	palletRepo := &mockPalletRepository{
		SaveFunc: func(ctx context.Context, p *pallet.Pallet) error {
			return fmt.Errorf("Error 1062 (23000): Duplicate entry 'PAL-WHF-X1234-06150101' for key 'idx_pallets_number'")
		},
	}

	useCase := NewCreatePalletUseCase(
		palletRepo,
		&mockFactoryRepository{GetByCodeFunc: func(ctx context.Context, code string) (*catalog.Factory, error) {
			return factory, nil
		}},
		&mockPartNumberRepository{GetByNameFunc: func(ctx context.Context, name string) (*catalog.PartNumber, error) {
			return part, nil
		}},
		&mockNumberGenerator{}, &mockTxManager{}, &mockLogger{})

	_, err = useCase.Execute(context.Background(), CreatePalletCommand{
		PartNumber:  "X1234",
		FactoryCode: "WHF",
	})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestCreatePalletUseCase_Execute_BlankInput(t *testing.T) {
	useCase := NewCreatePalletUseCase(
		&mockPalletRepository{}, &mockFactoryRepository{}, &mockPartNumberRepository{},
		&mockNumberGenerator{}, &mockTxManager{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), CreatePalletCommand{
		PartNumber:  "  ",
		FactoryCode: "WHF",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
