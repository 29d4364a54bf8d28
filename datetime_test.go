package ogpeek_test

import (
	"testing"
	"time"

	"github.com/fwojciec/ogpeek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	t.Parallel()

	t.Run("parses a date", func(t *testing.T) {
		t.Parallel()

		dt, ok := ogpeek.ParseDateTime("1996-06-07")

		require.True(t, ok)
		assert.Equal(t, 1996, dt.Year)
		assert.Equal(t, 6, dt.Month)
		assert.Equal(t, 7, dt.Day)
		assert.Nil(t, dt.Hour)
		assert.Nil(t, dt.Minute)
	})

	t.Run("parses a date with time of day", func(t *testing.T) {
		t.Parallel()

		dt, ok := ogpeek.ParseDateTime("2024-02-29T13:45")

		require.True(t, ok)
		require.NotNil(t, dt.Hour)
		require.NotNil(t, dt.Minute)
		assert.Equal(t, 13, *dt.Hour)
		assert.Equal(t, 45, *dt.Minute)
		assert.Equal(t, time.Date(2024, 2, 29, 13, 45, 0, 0, time.UTC), dt.Time())
	})

	t.Run("ignores seconds and zone offset", func(t *testing.T) {
		t.Parallel()

		dt, ok := ogpeek.ParseDateTime("2024-02-29T13:45:10+02:00")

		require.True(t, ok)
		assert.Equal(t, "2024-02-29T13:45", dt.String())
	})

	t.Run("rejects malformed literals", func(t *testing.T) {
		t.Parallel()

		for _, s := range []string{
			"",
			"1996",
			"96-06-07",
			"1996/06/07",
			"1996-13-01",
			"1996-00-10",
			"1996-06-32",
			"199a-06-07",
			"1996-06-07 13:45",
			"1996-06-07T1345",
			"1996-06-07T25:00",
			"1996-06-07T12:60",
			"yesterday",
		} {
			_, ok := ogpeek.ParseDateTime(s)
			assert.False(t, ok, "expected %q to be rejected", s)
		}
	})
}

func TestDateTime_String(t *testing.T) {
	t.Parallel()

	dt, ok := ogpeek.ParseDateTime("0999-01-02")

	require.True(t, ok)
	assert.Equal(t, "0999-01-02", dt.String())
	assert.Equal(t, time.Date(999, 1, 2, 0, 0, 0, 0, time.UTC), dt.Time())
}
