package sequence

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The MySQL driver reports a violated unique index with this message shape.
var errDuplicateKey = fmt.Errorf("Error 1062 (23000): Duplicate entry 'WHF-X1234-061526' for key 'pallet_sequences.idx_pallet_seq_key'")

func TestAllocateSeq_FirstAttemptWins(t *testing.T) {
	calls := 0
	seq, err := allocateSeq(3, func() (int, error) {
		calls++
		return 1, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, seq)
	assert.Equal(t, 1, calls)
}

func TestAllocateSeq_RetriesAfterLostInsertRace(t *testing.T) {
	calls := 0
	seq, err := allocateSeq(3, func() (int, error) {
		calls++
		if calls < 3 {
			return 0, errDuplicateKey
		}
		return 2, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, seq)
	assert.Equal(t, 3, calls)
}

func TestAllocateSeq_GivesUpAfterRetryBudget(t *testing.T) {
	calls := 0
	_, err := allocateSeq(3, func() (int, error) {
		calls++
		return 0, errDuplicateKey
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, 3, calls)
}

func TestAllocateSeq_StoreErrorStopsImmediately(t *testing.T) {
	storeErr := errors.New("connection reset")
	calls := 0
	_, err := allocateSeq(3, func() (int, error) {
		calls++
		return 0, storeErr
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, 1, calls)
}
