package pallet

import (
	"context"
	"fmt"
)

// NumberGenerator allocates pallet numbers of the form
// PAL-<factoryCode>-<partNumberName>-<MMDDYY><seq>, where seq is a
// two-digit 1-based sequence per (factory, part number, calendar day).
// Implementations must be safe under concurrent allocation; two concurrent
// calls for the same key must never both observe the same sequence slot.
type NumberGenerator interface {
	Generate(ctx context.Context, factoryID uint, factoryCode string, partNumberID uint, partNumberName string) (string, error)
}

// FormatNumber renders a pallet number from its components. dayKey is the
// MMDDYY calendar-day string in the business timezone.
func FormatNumber(factoryCode, partNumberName, dayKey string, seq int) string {
	return fmt.Sprintf("PAL-%s-%s-%s%02d", factoryCode, partNumberName, dayKey, seq)
}
