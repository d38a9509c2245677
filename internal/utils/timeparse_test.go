package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeReminderTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("explicit offset is converted to UTC", func(t *testing.T) {
		got, err := NormalizeReminderTime("2030-01-01T10:00:00+02:00", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC), got)
		assert.Equal(t, time.UTC, got.Location())
	})

	t.Run("negative offset is converted to UTC", func(t *testing.T) {
		got, err := NormalizeReminderTime("2030-01-01T10:00:00-05:00", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2030, 1, 1, 15, 0, 0, 0, time.UTC), got)
	})

	t.Run("zulu timestamp is unchanged", func(t *testing.T) {
		got, err := NormalizeReminderTime("2030-01-01T08:00:00Z", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC), got)
	})

	t.Run("naive timestamp is taken as UTC as-is", func(t *testing.T) {
		got, err := NormalizeReminderTime("2030-01-01T08:00:00", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC), got)
	})

	t.Run("minute precision naive timestamp", func(t *testing.T) {
		got, err := NormalizeReminderTime("2030-01-01T08:00", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC), got)
	})

	t.Run("past time is rejected", func(t *testing.T) {
		_, err := NormalizeReminderTime("2000-01-01T00:00:00Z", now)
		assert.ErrorIs(t, err, ErrPastTime)
	})

	t.Run("past only after offset conversion is rejected", func(t *testing.T) {
		// 13:00+02:00 is 11:00Z, one hour before now
		_, err := NormalizeReminderTime("2025-06-01T13:00:00+02:00", now)
		assert.ErrorIs(t, err, ErrPastTime)
	})

	t.Run("exactly now is accepted", func(t *testing.T) {
		got, err := NormalizeReminderTime("2025-06-01T12:00:00Z", now)
		require.NoError(t, err)
		assert.True(t, got.Equal(now))
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := NormalizeReminderTime("not-a-time", now)
		assert.ErrorIs(t, err, ErrInvalidTime)
	})
}

func TestParseUTC(t *testing.T) {
	got, err := ParseUTC("2024-03-01T10:30:00+01:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC), got)

	// no past-time check here
	got, err = ParseUTC("2000-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 2000, got.Year())

	_, err = ParseUTC("")
	assert.ErrorIs(t, err, ErrInvalidTime)
}
