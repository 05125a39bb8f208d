package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDayUTC(t *testing.T) {
	got := StartOfDayUTC(time.Date(2026, 3, 10, 22, 15, 33, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestStartOfDayUTC_NormalizesLocation(t *testing.T) {
	sp := Location(DefaultTimezone)

	// 23:00 in São Paulo is already the next day in UTC.
	local := time.Date(2026, 3, 10, 23, 0, 0, 0, sp)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), StartOfDayUTC(local))
}

func TestSameDayUTC(t *testing.T) {
	a := time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 12, 25, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 12, 26, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDayUTC(a, b))
	assert.False(t, SameDayUTC(a, c))
}

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, DefaultTimezone, Location("").String())
}

func TestLocation_ResolvesKnownZone(t *testing.T) {
	assert.Equal(t, "America/Recife", Location("America/Recife").String())
}
