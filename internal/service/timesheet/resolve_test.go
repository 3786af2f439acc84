package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Furoshaa/HowMuch/internal/entity"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

// 2026-03-02 is a Monday.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func mondaySchedule() []entity.WorkSchedule {
	return []entity.WorkSchedule{{
		DayOfWeek:  strPtr("monday"),
		WorkStart:  strPtr("09:00"),
		BreakStart: strPtr("12:00"),
		BreakEnd:   strPtr("13:00"),
		WorkEnd:    strPtr("17:00"),
		HourlyRate: floatPtr(20),
	}}
}

func TestResolveDaySchedule(t *testing.T) {
	plan := ResolveDay(monday, nil, nil, mondaySchedule())

	assert.Equal(t, SourceSchedule, plan.Source)
	assert.True(t, plan.Working)
	assert.Equal(t, 7.0, plan.NetHours)
	assert.Equal(t, 140.0, plan.DailyEarnings)
}

func TestResolveDayNoPlan(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)
	plan := ResolveDay(tuesday, nil, nil, mondaySchedule())

	assert.Equal(t, SourceNone, plan.Source)
	assert.False(t, plan.Working)
	assert.Equal(t, 0.0, plan.DailyEarnings)
}

func TestResolveDayExceptionOverridesSchedule(t *testing.T) {
	exceptions := []entity.WorkException{{
		Date:       strPtr("2026-03-02"),
		Reason:     strPtr("overtime"),
		WorkStart:  strPtr("09:00"),
		BreakStart: strPtr("12:00"),
		BreakEnd:   strPtr("12:30"),
		WorkEnd:    strPtr("19:00"),
		HourlyRate: floatPtr(25),
	}}

	plan := ResolveDay(monday, nil, exceptions, mondaySchedule())

	assert.Equal(t, SourceException, plan.Source)
	assert.True(t, plan.Working)
	assert.Equal(t, 9.5, plan.NetHours)
	assert.Equal(t, 237.5, plan.DailyEarnings)
	assert.Equal(t, "overtime", *plan.Reason)
}

func TestResolveDayExceptionDayOff(t *testing.T) {
	exceptions := []entity.WorkException{{
		Date:   strPtr("2026-03-02"),
		Reason: strPtr("sick"),
	}}

	plan := ResolveDay(monday, nil, exceptions, mondaySchedule())

	assert.Equal(t, SourceException, plan.Source)
	assert.False(t, plan.Working)
	assert.Equal(t, 0.0, plan.NetHours)
	assert.Equal(t, "sick", *plan.Reason)
}

func TestResolveDaySessionWins(t *testing.T) {
	sessions := []entity.WorkSession{{
		WorkDate:   strPtr("2026-03-02"),
		WorkStart:  strPtr("10:00"),
		BreakStart: strPtr("12:00"),
		BreakEnd:   strPtr("13:00"),
		WorkEnd:    strPtr("16:00"),
		HourlyRate: floatPtr(18),
	}}
	exceptions := []entity.WorkException{{
		Date:   strPtr("2026-03-02"),
		Reason: strPtr("vacation"),
	}}

	plan := ResolveDay(monday, sessions, exceptions, mondaySchedule())

	assert.Equal(t, SourceSession, plan.Source)
	assert.Equal(t, 5.0, plan.NetHours)
	assert.Equal(t, 90.0, plan.DailyEarnings)
}

func TestResolveDayCanceledSessionFallsThrough(t *testing.T) {
	sessions := []entity.WorkSession{{
		WorkDate:   strPtr("2026-03-02"),
		WorkStart:  strPtr("10:00"),
		BreakStart: strPtr("12:00"),
		BreakEnd:   strPtr("13:00"),
		WorkEnd:    strPtr("16:00"),
		HourlyRate: floatPtr(18),
		IsCanceled: boolPtr(true),
	}}

	plan := ResolveDay(monday, sessions, nil, mondaySchedule())

	assert.Equal(t, SourceSchedule, plan.Source)
	assert.Equal(t, 140.0, plan.DailyEarnings)
}

func TestResolveDayTimestampShapedDates(t *testing.T) {
	sessions := []entity.WorkSession{{
		WorkDate:   strPtr("2026-03-02T00:00:00Z"),
		WorkStart:  strPtr("09:00"),
		BreakStart: strPtr("12:00"),
		BreakEnd:   strPtr("13:00"),
		WorkEnd:    strPtr("17:00"),
		HourlyRate: floatPtr(20),
	}}

	plan := ResolveDay(monday, sessions, nil, nil)
	assert.Equal(t, SourceSession, plan.Source)
}
