package valueobjects

import (
	"fmt"
	"time"
)

// LockInfo is the single optional fact "who locked this pallet and when".
// Modeling both fields as one value makes the locked/locked_at/locked_by
// all-or-nothing invariant hold by construction.
type LockInfo struct {
	by uint
	at time.Time
}

func NewLockInfo(by uint, at time.Time) (*LockInfo, error) {
	if by == 0 {
		return nil, fmt.Errorf("locking actor ID is required")
	}
	if at.IsZero() {
		return nil, fmt.Errorf("lock time is required")
	}
	return &LockInfo{by: by, at: at}, nil
}

func (l *LockInfo) By() uint {
	return l.by
}

func (l *LockInfo) At() time.Time {
	return l.at
}
