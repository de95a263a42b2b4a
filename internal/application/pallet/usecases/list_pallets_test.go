package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depot/internal/domain/pallet"
	"depot/internal/shared/errors"
	"depot/internal/shared/query"
)

func TestListPalletsUseCase_Execute_Success(t *testing.T) {
	p := openPallet(t, 10, "PAL-WHF-X1234-06150101", 3, 7)

	var captured pallet.PalletFilter
	palletRepo := &mockPalletRepository{
		ListFunc: func(ctx context.Context, filter pallet.PalletFilter) ([]*pallet.Pallet, int64, error) {
			captured = filter
			return []*pallet.Pallet{p}, 1, nil
		},
	}
	ledger := &mockMembershipLedger{
		ActiveAtFunc: func(ctx context.Context, palletID uint, asOf time.Time) ([]*pallet.Membership, error) {
			return nil, nil
		},
	}

	useCase := NewListPalletsUseCase(palletRepo, ledger, &mockSystemRepository{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), ListPalletsQuery{
		Filter:    &query.FilterNode{Field: "status", Op: "=", Values: []string{"open"}},
		Page:      2,
		PageSize:  25,
		SortBy:    "number",
		SortOrder: "asc",
	})

	require.NoError(t, err)
	require.Len(t, result.Pallets, 1)
	assert.Equal(t, "PAL-WHF-X1234-06150101", result.Pallets[0].Number)
	assert.Equal(t, int64(1), result.Total)

	require.NotNil(t, captured.Expr)
	assert.Equal(t, "status", captured.Expr.Field)
	assert.Equal(t, 2, captured.Page)
	assert.Equal(t, 25, captured.PageSize)
	assert.Equal(t, "number", captured.SortBy)
}

func TestListPalletsUseCase_Execute_BadFilterStaysBadRequest(t *testing.T) {
	palletRepo := &mockPalletRepository{
		ListFunc: func(ctx context.Context, filter pallet.PalletFilter) ([]*pallet.Pallet, int64, error) {
			return nil, 0, errors.NewBadRequestError("invalid pallet filter", "field \"secret\" is not filterable")
		},
	}

	useCase := NewListPalletsUseCase(
		palletRepo, &mockMembershipLedger{}, &mockSystemRepository{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), ListPalletsQuery{})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeBadRequest, appErr.Type)
}

func TestListPalletsUseCase_Execute_StoreFailureIsNotBadRequest(t *testing.T) {
	// A store outage must not surface to clients as their fault.
	palletRepo := &mockPalletRepository{
		ListFunc: func(ctx context.Context, filter pallet.PalletFilter) ([]*pallet.Pallet, int64, error) {
			return nil, 0, assert.AnError
		},
	}

	useCase := NewListPalletsUseCase(
		palletRepo, &mockMembershipLedger{}, &mockSystemRepository{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), ListPalletsQuery{})

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, errors.IsAppError(err))
}
