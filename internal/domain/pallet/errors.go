package pallet

import "errors"

var (
	// ErrNotOpen is returned when a lifecycle operation requires an open pallet.
	ErrNotOpen = errors.New("pallet is not open")
	// ErrLocked is returned when an operation is blocked by the pallet lock.
	ErrLocked = errors.New("pallet is locked")
	// ErrDOATooShort is returned when the DOA number fails the minimum length check.
	ErrDOATooShort = errors.New("DOA number must be at least 5 characters")
	// ErrAlreadyReleased is returned on a second release attempt.
	ErrAlreadyReleased = errors.New("pallet is already released")
	// ErrMembershipClosed is returned when closing an interval that is not open.
	ErrMembershipClosed = errors.New("membership is already closed")
)
