package util_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	util "github.com/healthtrackapp/healthtrack/internal/utils"
)

func TestParseDate(t *testing.T) {
	d, err := util.ParseDate("2026-08-25")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-25", d.String())

	_, err = util.ParseDate("25/08/2026")
	assert.Error(t, err)
}

func TestAddDays(t *testing.T) {
	d := util.NewDate(2026, time.August, 25)
	assert.Equal(t, "2026-08-31", d.AddDays(6).String())
	assert.Equal(t, "2026-07-31", d.AddDays(-25).String())
}

func TestJSONRoundTrip(t *testing.T) {
	d := util.NewDate(2026, time.March, 1)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-01"`, string(b))

	var parsed util.Date
	require.NoError(t, json.Unmarshal(b, &parsed))
	assert.True(t, parsed.Equal(d))
}

func TestMarshalZeroDate(t *testing.T) {
	b, err := json.Marshal(util.Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestScan(t *testing.T) {
	t.Run("Time", func(t *testing.T) {
		var d util.Date
		require.NoError(t, d.Scan(time.Date(2026, time.May, 2, 13, 45, 0, 0, time.UTC)))
		assert.Equal(t, "2026-05-02", d.String())
	})

	t.Run("BareDateString", func(t *testing.T) {
		var d util.Date
		require.NoError(t, d.Scan("2026-05-02"))
		assert.Equal(t, "2026-05-02", d.String())
	})

	t.Run("TimestampString", func(t *testing.T) {
		var d util.Date
		require.NoError(t, d.Scan("2026-05-02 00:00:00+00:00"))
		assert.Equal(t, "2026-05-02", d.String())
	})

	t.Run("Nil", func(t *testing.T) {
		var d util.Date
		require.NoError(t, d.Scan(nil))
		assert.True(t, d.IsZero())
	})

	t.Run("UnsupportedType", func(t *testing.T) {
		var d util.Date
		assert.Error(t, d.Scan(42))
	})
}
