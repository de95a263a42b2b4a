package usecases

import "context"

// TransactionManager runs fn inside a store transaction; the transactional
// handle travels on the context.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type AppendLocationHistoryExecutor interface {
	Execute(ctx context.Context, cmd AppendLocationHistoryCommand) (*AppendLocationHistoryResult, error)
}

type UndoLocationHistoryExecutor interface {
	Execute(ctx context.Context, cmd UndoLocationHistoryCommand) (*UndoLocationHistoryResult, error)
}

type GetSystemHistoryExecutor interface {
	Execute(ctx context.Context, query GetSystemHistoryQuery) (*GetSystemHistoryResult, error)
}
