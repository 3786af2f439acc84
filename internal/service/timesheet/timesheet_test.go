package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, c.Hour)
	assert.Equal(t, 30, c.Minute)
	assert.Equal(t, 570, c.Minutes())

	c, err = ParseClock("17:05:30")
	require.NoError(t, err)
	assert.Equal(t, 61530, c.Seconds())

	// trailing garbage and short components must not be silently truncated
	for _, bad := range []string{"", "9:00", "24:00", "12:60", "ab:cd", "12-30", "12:3", "1:234", "12:3x", "12:300", "12:30:5", " 09:30"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
		assert.IsType(t, &ParseError{}, err, bad)
	}
}

func TestNetHours(t *testing.T) {
	net, err := NetHours("09:00", "17:00", "12:00", "13:00")
	require.NoError(t, err)
	assert.Equal(t, 7.0, net)

	// no break
	net, err = NetHours("08:00", "12:00", "10:00", "10:00")
	require.NoError(t, err)
	assert.Equal(t, 4.0, net)

	// rounding to one decimal
	net, err = NetHours("09:00", "17:10", "12:00", "13:00")
	require.NoError(t, err)
	assert.Equal(t, 7.2, net)

	// inverted window stays negative rather than clamping
	net, err = NetHours("17:00", "09:00", "12:00", "12:00")
	require.NoError(t, err)
	assert.Equal(t, -8.0, net)

	_, err = NetHours("bad", "17:00", "12:00", "13:00")
	assert.Error(t, err)
}

func TestDailyEarnings(t *testing.T) {
	assert.Equal(t, 140.0, DailyEarnings(7.0, 20))
	assert.Equal(t, 0.0, DailyEarnings(7.0, 0))
	assert.Equal(t, 108.75, DailyEarnings(7.25, 15))
}

func TestPerSecondRate(t *testing.T) {
	rate, err := PerSecondRate("09:00", "17:00", 140)
	require.NoError(t, err)
	assert.InDelta(t, 140.0/480/60, rate, 1e-9)

	rate, err = PerSecondRate("09:00", "09:00", 140)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rate)
}

func at(hour, minute, second int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, second, 0, time.UTC)
}

func TestEarnedSoFar(t *testing.T) {
	s := Schedule{
		WorkStart:  "09:00",
		BreakStart: "12:00",
		BreakEnd:   "13:00",
		WorkEnd:    "17:00",
		HourlyRate: 20,
	}

	daily, err := s.DailyEarnings()
	require.NoError(t, err)
	assert.Equal(t, 140.0, daily)

	earned, err := s.EarnedSoFar(at(8, 59, 59))
	require.NoError(t, err)
	assert.Equal(t, 0.0, earned)

	earned, err = s.EarnedSoFar(at(9, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, earned)

	earned, err = s.EarnedSoFar(at(10, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 20.0, earned)

	// the break hour accrues nothing
	earned, err = s.EarnedSoFar(at(12, 30, 0))
	require.NoError(t, err)
	assert.Equal(t, 60.0, earned)

	earned, err = s.EarnedSoFar(at(13, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 60.0, earned)

	earned, err = s.EarnedSoFar(at(17, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, daily, earned)

	earned, err = s.EarnedSoFar(at(23, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, daily, earned)
}

func TestIsWorking(t *testing.T) {
	s := Schedule{
		WorkStart:  "09:00",
		BreakStart: "12:00",
		BreakEnd:   "13:00",
		WorkEnd:    "17:00",
		HourlyRate: 20,
	}

	assert.False(t, s.IsWorking(at(8, 0, 0)))
	assert.True(t, s.IsWorking(at(9, 0, 0)))
	assert.False(t, s.IsWorking(at(12, 30, 0)))
	assert.True(t, s.IsWorking(at(13, 0, 0)))
	assert.False(t, s.IsWorking(at(17, 0, 0)))
}

func TestScheduleValidate(t *testing.T) {
	valid := Schedule{WorkStart: "09:00", BreakStart: "12:00", BreakEnd: "13:00", WorkEnd: "17:00"}
	assert.NoError(t, valid.Validate())

	inverted := Schedule{WorkStart: "09:00", BreakStart: "13:00", BreakEnd: "12:00", WorkEnd: "17:00"}
	assert.Error(t, inverted.Validate())

	breakOutside := Schedule{WorkStart: "09:00", BreakStart: "08:00", BreakEnd: "08:30", WorkEnd: "17:00"}
	assert.Error(t, breakOutside.Validate())
}

func TestCounterSample(t *testing.T) {
	s := Schedule{
		WorkStart:  "09:00",
		BreakStart: "12:00",
		BreakEnd:   "13:00",
		WorkEnd:    "17:00",
		HourlyRate: 20,
	}

	counter := NewCounter(s)
	counter.now = func() time.Time { return at(10, 0, 0) }

	tick, err := counter.Sample()
	require.NoError(t, err)
	assert.Equal(t, 20.0, tick.Amount)
	assert.True(t, tick.Working)
	assert.Equal(t, "10:00", tick.At)

	counter.now = func() time.Time { return at(20, 0, 0) }
	tick, err = counter.Sample()
	require.NoError(t, err)
	assert.Equal(t, 140.0, tick.Amount)
	assert.False(t, tick.Working)
}
