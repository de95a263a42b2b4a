package usecases

import (
	"context"

	"depot/internal/application/pallet/dto"
)

// TransactionManager runs fn inside a store transaction; the transactional
// handle travels on the context.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreatePalletExecutor interface {
	Execute(ctx context.Context, cmd CreatePalletCommand) (*CreatePalletResult, error)
}

type GetPalletExecutor interface {
	Execute(ctx context.Context, query GetPalletQuery) (*dto.PalletDTO, error)
}

type ListPalletsExecutor interface {
	Execute(ctx context.Context, query ListPalletsQuery) (*ListPalletsResult, error)
}

type SetPalletLockExecutor interface {
	Execute(ctx context.Context, cmd SetPalletLockCommand) (*dto.PalletDTO, error)
}

type ReleasePalletExecutor interface {
	Execute(ctx context.Context, cmd ReleasePalletCommand) (*ReleasePalletResult, error)
}

type DeletePalletExecutor interface {
	Execute(ctx context.Context, cmd DeletePalletCommand) error
}

type MovePalletMemberExecutor interface {
	Execute(ctx context.Context, cmd MovePalletMemberCommand) (*MovePalletMemberResult, error)
}
