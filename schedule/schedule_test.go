package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standup = "30 9 * * *"

func at(h, m, s int) time.Time {
	return time.Date(2026, time.March, 10, h, m, s, 0, time.UTC)
}

func TestNextWaitsForLeadWindow(t *testing.T) {
	p, err := Next(standup, at(9, 0, 0))
	require.NoError(t, err)

	assert.Equal(t, at(9, 30, 0), p.Meeting)
	assert.Equal(t, at(9, 25, 0), p.Start)
	assert.Equal(t, 25*time.Minute, p.Delay)
	assert.False(t, p.Due())
	assert.Zero(t, p.AlreadyElapsed)
}

func TestNextInsideLeadWindow(t *testing.T) {
	p, err := Next(standup, at(9, 27, 0))
	require.NoError(t, err)

	assert.True(t, p.Due())
	assert.Equal(t, 120, p.AlreadyElapsed)
}

func TestNextAtLeadBoundary(t *testing.T) {
	p, err := Next(standup, at(9, 25, 0))
	require.NoError(t, err)

	assert.True(t, p.Due())
	assert.Zero(t, p.AlreadyElapsed)
}

func TestNextAfterMeetingRollsOver(t *testing.T) {
	p, err := Next(standup, at(9, 31, 0))
	require.NoError(t, err)

	assert.Equal(t, at(9, 30, 0).AddDate(0, 0, 1), p.Meeting)
	assert.False(t, p.Due())
}

func TestNextRejectsInvalidExpression(t *testing.T) {
	_, err := Next("not a cron", at(9, 0, 0))
	assert.Error(t, err)
	assert.Error(t, Validate("61 * * * *"))
	assert.NoError(t, Validate("@hourly"))
}

func TestNextAfterSkipsArmedMeeting(t *testing.T) {
	// Planned from inside the lead window, past the meeting already armed
	p, err := NextAfter(standup, at(9, 30, 0), at(9, 26, 0))
	require.NoError(t, err)

	assert.Equal(t, at(9, 30, 0).AddDate(0, 0, 1), p.Meeting)
	assert.Equal(t, 24*time.Hour-time.Minute, p.Delay)
	assert.False(t, p.Due())
}
