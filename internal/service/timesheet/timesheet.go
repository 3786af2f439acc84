// Package timesheet holds the work-hours and earnings arithmetic shared by
// the schedule, exception and session endpoints.
package timesheet

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// ParseError reports a malformed clock value. Callers get this instead of a
// silent NaN result.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid time value %q, expected HH:MM or HH:MM:SS", e.Input)
}

// Clock is a time of day, seconds resolution.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

var clockPattern = regexp.MustCompile(`^(\d{2}):(\d{2})(?::(\d{2}))?$`)

// ParseClock accepts "HH:MM" and "HH:MM:SS" with both components in range.
func ParseClock(s string) (Clock, error) {
	match := clockPattern.FindStringSubmatch(s)
	if match == nil {
		return Clock{}, &ParseError{Input: s}
	}

	var c Clock
	c.Hour, _ = strconv.Atoi(match[1])
	c.Minute, _ = strconv.Atoi(match[2])
	if match[3] != "" {
		c.Second, _ = strconv.Atoi(match[3])
	}

	if c.Hour > 23 || c.Minute > 59 || c.Second > 59 {
		return Clock{}, &ParseError{Input: s}
	}

	return c, nil
}

// Minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Seconds since midnight.
func (c Clock) Seconds() int {
	return c.Minutes()*60 + c.Second
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ClockOf projects a wall-clock instant onto a Clock.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// NetHours is (workEnd-workStart)-(breakEnd-breakStart) in hours, one
// decimal. Inverted intervals produce a negative result rather than a
// clamped zero, matching the arithmetic of the earnings views.
func NetHours(workStart, workEnd, breakStart, breakEnd string) (float64, error) {
	ws, err := ParseClock(workStart)
	if err != nil {
		return 0, err
	}
	we, err := ParseClock(workEnd)
	if err != nil {
		return 0, err
	}
	bs, err := ParseClock(breakStart)
	if err != nil {
		return 0, err
	}
	be, err := ParseClock(breakEnd)
	if err != nil {
		return 0, err
	}

	netMinutes := (we.Minutes() - ws.Minutes()) - (be.Minutes() - bs.Minutes())
	return round1(float64(netMinutes) / 60), nil
}

// DailyEarnings is netHours * rate, two decimals.
func DailyEarnings(netHours, hourlyRate float64) float64 {
	return round2(netHours * hourlyRate)
}

// PerSecondRate spreads a daily rate over the work window, for the
// once-per-second accrual ticker.
func PerSecondRate(workStart, workEnd string, dailyRate float64) (float64, error) {
	ws, err := ParseClock(workStart)
	if err != nil {
		return 0, err
	}
	we, err := ParseClock(workEnd)
	if err != nil {
		return 0, err
	}

	workMinutes := we.Minutes() - ws.Minutes()
	if workMinutes == 0 {
		return 0, nil
	}
	return dailyRate / float64(workMinutes) / 60, nil
}

// Schedule is the day window the accrual functions operate on.
type Schedule struct {
	WorkStart  string
	BreakStart string
	BreakEnd   string
	WorkEnd    string
	HourlyRate float64
}

// NetHours of the whole window.
func (s Schedule) NetHours() (float64, error) {
	return NetHours(s.WorkStart, s.WorkEnd, s.BreakStart, s.BreakEnd)
}

// DailyEarnings of the whole window.
func (s Schedule) DailyEarnings() (float64, error) {
	net, err := s.NetHours()
	if err != nil {
		return 0, err
	}
	return DailyEarnings(net, s.HourlyRate), nil
}

// EarnedSoFar is the money accrued at the given instant: zero before
// work_start, the full daily earnings at or after work_end, a per-second
// accrual in between. Elapsed break time is subtracted from the accrual so
// EarnedSoFar at work_end agrees with DailyEarnings.
func (s Schedule) EarnedSoFar(now time.Time) (float64, error) {
	ws, err := ParseClock(s.WorkStart)
	if err != nil {
		return 0, err
	}
	we, err := ParseClock(s.WorkEnd)
	if err != nil {
		return 0, err
	}
	bs, err := ParseClock(s.BreakStart)
	if err != nil {
		return 0, err
	}
	be, err := ParseClock(s.BreakEnd)
	if err != nil {
		return 0, err
	}

	nowSec := ClockOf(now).Seconds()

	if nowSec < ws.Seconds() {
		return 0, nil
	}
	if nowSec >= we.Seconds() {
		return s.DailyEarnings()
	}

	elapsed := nowSec - ws.Seconds()
	elapsed -= overlap(ws.Seconds(), nowSec, bs.Seconds(), be.Seconds())

	return round2(s.HourlyRate * float64(elapsed) / 3600), nil
}

// IsWorking reports whether now falls in [work_start, work_end) and outside
// the break window.
func (s Schedule) IsWorking(now time.Time) bool {
	ws, err := ParseClock(s.WorkStart)
	if err != nil {
		return false
	}
	we, err := ParseClock(s.WorkEnd)
	if err != nil {
		return false
	}
	bs, err := ParseClock(s.BreakStart)
	if err != nil {
		return false
	}
	be, err := ParseClock(s.BreakEnd)
	if err != nil {
		return false
	}

	nowSec := ClockOf(now).Seconds()
	if nowSec < ws.Seconds() || nowSec >= we.Seconds() {
		return false
	}
	if nowSec >= bs.Seconds() && nowSec < be.Seconds() {
		return false
	}
	return true
}

// Validate checks the ordering invariant work_start <= break_start <=
// break_end <= work_end.
func (s Schedule) Validate() error {
	ws, err := ParseClock(s.WorkStart)
	if err != nil {
		return err
	}
	bs, err := ParseClock(s.BreakStart)
	if err != nil {
		return err
	}
	be, err := ParseClock(s.BreakEnd)
	if err != nil {
		return err
	}
	we, err := ParseClock(s.WorkEnd)
	if err != nil {
		return err
	}

	if ws.Minutes() > bs.Minutes() || bs.Minutes() > be.Minutes() || be.Minutes() > we.Minutes() {
		return fmt.Errorf("times must satisfy work_start <= break_start <= break_end <= work_end")
	}
	return nil
}

// overlap of [aStart,aEnd) and [bStart,bEnd) in seconds, zero when disjoint.
func overlap(aStart, aEnd, bStart, bEnd int) int {
	start := aStart
	if bStart > start {
		start = bStart
	}
	end := aEnd
	if bEnd < end {
		end = bEnd
	}
	if end <= start {
		return 0
	}
	return end - start
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
