package pallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		factory  string
		part     string
		dayKey   string
		seq      int
		expected string
	}{
		{"first of the day", "WHF", "X1234", "061526", 1, "PAL-WHF-X1234-06152601"},
		{"single digit pads to two", "WHF", "X1234", "061526", 9, "PAL-WHF-X1234-06152609"},
		{"two digits unchanged", "AUS", "K3H7D", "090126", 12, "PAL-AUS-K3H7D-09012612"},
		{"hundredth widens past two digits", "AUS", "K3H7D", "090126", 100, "PAL-AUS-K3H7D-090126100"},
		{"day key crosses year", "FTW", "Z0001", "123125", 2, "PAL-FTW-Z0001-12312502"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatNumber(tt.factory, tt.part, tt.dayKey, tt.seq))
		})
	}
}
