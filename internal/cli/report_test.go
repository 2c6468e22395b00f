package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	util "github.com/healthtrackapp/healthtrack/internal/utils"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[--------------------]", progressBar(0))
	assert.Equal(t, "[#####---------------]", progressBar(25))
	assert.Equal(t, "[##########----------]", progressBar(50))
	assert.Equal(t, "[####################]", progressBar(100))
	assert.Equal(t, "[####################]", progressBar(250), "bar never overflows")
	assert.Equal(t, "[--------------------]", progressBar(-5))
}

func TestStartOfWeek(t *testing.T) {
	monday := util.NewDate(2026, time.August, 24)

	// Every day of that week maps back to the same Monday.
	for offset := 0; offset < 7; offset++ {
		got := startOfWeek(monday.AddDays(offset))
		assert.True(t, got.Equal(monday), "day %d should resolve to %s, got %s", offset, monday, got)
	}

	sunday := util.NewDate(2026, time.August, 23)
	assert.Equal(t, "2026-08-17", startOfWeek(sunday).String())
}
