package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depot/internal/domain/system"
	"depot/internal/shared/errors"
)

const testDeletedActorID = uint(1)

func TestUndoLocationHistoryUseCase_Execute_Success(t *testing.T) {
	loc5, loc3 := uint(5), uint(3)
	unit := unitAt(t, 100, "SN-A", &loc5)

	newest := historyEntry(t, 20, 100, &loc3, loc5, 9, time.Now().Add(-time.Minute))
	previous := historyEntry(t, 19, 100, nil, loc3, 9, time.Now().Add(-time.Hour))

	var deletedEntry uint
	historyRepo := &mockHistoryRepository{
		ListNewestFirstFunc: func(ctx context.Context, systemID uint, limit int) ([]*system.HistoryEntry, error) {
			assert.Equal(t, 2, limit)
			return []*system.HistoryEntry{newest, previous}, nil
		},
		DeleteEntryFunc: func(ctx context.Context, entryID uint) error {
			deletedEntry = entryID
			return nil
		},
	}
	var updated *system.System
	systemRepo := &mockSystemRepository{
		GetByTagForUpdateFunc: func(ctx context.Context, tag string) (*system.System, error) {
			return unit, nil
		},
		UpdateFunc: func(ctx context.Context, s *system.System) error {
			updated = s
			return nil
		},
	}

	useCase := NewUndoLocationHistoryUseCase(
		systemRepo, historyRepo, &mockTxManager{}, testDeletedActorID, &mockLogger{})

	result, err := useCase.Execute(context.Background(), UndoLocationHistoryCommand{
		SystemTag: "SN-A",
		ActorID:   9,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(20), deletedEntry)
	// The location rewinds to the entry now newest.
	assert.Equal(t, uint(3), result.NewLocationID)
	require.NotNil(t, updated)
	assert.Equal(t, uint(3), *updated.LocationID())
}

func TestUndoLocationHistoryUseCase_Execute_SingleEntry(t *testing.T) {
	loc3 := uint(3)
	unit := unitAt(t, 100, "SN-A", &loc3)

	historyRepo := &mockHistoryRepository{
		ListNewestFirstFunc: func(ctx context.Context, systemID uint, limit int) ([]*system.HistoryEntry, error) {
			return []*system.HistoryEntry{
				historyEntry(t, 19, 100, nil, loc3, 9, time.Now().Add(-time.Hour)),
			}, nil
		},
	}
	systemRepo := &mockSystemRepository{
		GetByTagForUpdateFunc: func(ctx context.Context, tag string) (*system.System, error) {
			return unit, nil
		},
	}

	useCase := NewUndoLocationHistoryUseCase(
		systemRepo, historyRepo, &mockTxManager{}, testDeletedActorID, &mockLogger{})

	_, err := useCase.Execute(context.Background(), UndoLocationHistoryCommand{
		SystemTag: "SN-A",
		ActorID:   9,
	})

	require.Error(t, err)
	assert.True(t, errors.IsInvalidStateError(err))
}

func TestUndoLocationHistoryUseCase_Execute_ForeignEntry(t *testing.T) {
	loc5, loc3 := uint(5), uint(3)
	unit := unitAt(t, 100, "SN-A", &loc5)

	historyRepo := &mockHistoryRepository{
		ListNewestFirstFunc: func(ctx context.Context, systemID uint, limit int) ([]*system.HistoryEntry, error) {
			return []*system.HistoryEntry{
				historyEntry(t, 20, 100, &loc3, loc5, 4, time.Now().Add(-time.Minute)),
				historyEntry(t, 19, 100, nil, loc3, 4, time.Now().Add(-time.Hour)),
			}, nil
		},
	}
	systemRepo := &mockSystemRepository{
		GetByTagForUpdateFunc: func(ctx context.Context, tag string) (*system.System, error) {
			return unit, nil
		},
	}

	useCase := NewUndoLocationHistoryUseCase(
		systemRepo, historyRepo, &mockTxManager{}, testDeletedActorID, &mockLogger{})

	_, err := useCase.Execute(context.Background(), UndoLocationHistoryCommand{
		SystemTag: "SN-A",
		ActorID:   9,
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestUndoLocationHistoryUseCase_Execute_DeletedActorEntry(t *testing.T) {
	loc5, loc3 := uint(5), uint(3)
	unit := unitAt(t, 100, "SN-A", &loc5)

	// The newest entry belongs to the reserved placeholder actor, so any
	// actor may retract it.
	historyRepo := &mockHistoryRepository{
		ListNewestFirstFunc: func(ctx context.Context, systemID uint, limit int) ([]*system.HistoryEntry, error) {
			return []*system.HistoryEntry{
				historyEntry(t, 20, 100, &loc3, loc5, testDeletedActorID, time.Now().Add(-time.Minute)),
				historyEntry(t, 19, 100, nil, loc3, 4, time.Now().Add(-time.Hour)),
			}, nil
		},
	}
	systemRepo := &mockSystemRepository{
		GetByTagForUpdateFunc: func(ctx context.Context, tag string) (*system.System, error) {
			return unit, nil
		},
	}

	useCase := NewUndoLocationHistoryUseCase(
		systemRepo, historyRepo, &mockTxManager{}, testDeletedActorID, &mockLogger{})

	result, err := useCase.Execute(context.Background(), UndoLocationHistoryCommand{
		SystemTag: "SN-A",
		ActorID:   9,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(3), result.NewLocationID)
}
