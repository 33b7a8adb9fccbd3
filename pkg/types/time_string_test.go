package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:00:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), ts)

	_, err = NewTimeStringFromString("9:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutesAndCompare(t *testing.T) {
	start := TimeString("16:00")

	next, err := start.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("17:00"), next)
	assert.True(t, start.IsBefore(next))
	assert.True(t, next.IsAfter(start))

	end, err := TimeString("23:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), end)
	assert.True(t, TimeString("23:59").IsBefore(end))

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_IsWholeHour(t *testing.T) {
	assert.True(t, TimeString("10:00").IsWholeHour())
	assert.False(t, TimeString("10:30").IsWholeHour())
	assert.False(t, TimeString("bad").IsWholeHour())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("10:00:00")))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 14, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:00"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_ScanEndOfDayFromDriver(t *testing.T) {
	// lib/pq разбирает TIME '24:00:00' как полночь следующего дня
	midnight, err := time.Parse("15:04:05", "00:00:00")
	require.NoError(t, err)

	var ts TimeString
	require.NoError(t, ts.Scan(midnight.Add(24*time.Hour)))
	assert.Equal(t, EndOfDay, ts)

	require.NoError(t, ts.Scan(midnight))
	assert.Equal(t, TimeString("00:00"), ts)

	require.NoError(t, ts.Scan([]byte("24:00:00")))
	assert.Equal(t, EndOfDay, ts)

	value, err := EndOfDay.Value()
	require.NoError(t, err)
	assert.Equal(t, "24:00", value)
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	at, err := TimeString("10:00").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC), at)
}
