package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKey_CrossesMidnightInBusinessTimezone(t *testing.T) {
	// 04:30 UTC on June 16 is still June 15 in Chicago (UTC-5 in summer).
	utc := time.Date(2026, 6, 16, 4, 30, 0, 0, time.UTC)

	assert.Equal(t, "061526", DayKey(utc))
}

func TestDayKey_SameDay(t *testing.T) {
	utc := time.Date(2026, 6, 16, 18, 0, 0, 0, time.UTC)

	assert.Equal(t, "061626", DayKey(utc))
}

func TestStartOfDayUTC(t *testing.T) {
	utc := time.Date(2026, 6, 16, 18, 0, 0, 0, time.UTC)

	start := StartOfDayUTC(utc)

	// Midnight June 16 in Chicago is 05:00 UTC during daylight saving.
	require.Equal(t, time.UTC, start.Location())
	assert.Equal(t, time.Date(2026, 6, 16, 5, 0, 0, 0, time.UTC), start)
}

func TestEndOfDayUTC_AfterStartOfDay(t *testing.T) {
	utc := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	start := StartOfDayUTC(utc)
	end := EndOfDayUTC(utc)

	assert.True(t, end.After(start))
	assert.Equal(t, DayKey(start), DayKey(end))
}

func TestNowUTC_IsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, NowUTC().Location())
}
