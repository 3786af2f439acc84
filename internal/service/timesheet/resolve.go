package timesheet

import (
	"strings"
	"time"

	"github.com/Furoshaa/HowMuch/internal/entity"
)

const (
	SourceSession   = "session"
	SourceException = "exception"
	SourceSchedule  = "schedule"
	SourceNone      = "none"
)

// DayPlan is the effective plan for one calendar date after layering
// sessions over exceptions over the weekly schedule.
type DayPlan struct {
	Date          string   `json:"date"`
	Source        string   `json:"source"`
	Working       bool     `json:"working"`
	WorkStart     *string  `json:"work_start,omitempty"`
	BreakStart    *string  `json:"break_start,omitempty"`
	BreakEnd      *string  `json:"break_end,omitempty"`
	WorkEnd       *string  `json:"work_end,omitempty"`
	HourlyRate    *float64 `json:"hourly_rate,omitempty"`
	Reason        *string  `json:"reason,omitempty"`
	Comment       *string  `json:"comment,omitempty"`
	NetHours      float64  `json:"net_hours"`
	DailyEarnings float64  `json:"daily_earnings"`
}

// Schedule view of the plan, for the accrual functions. Only valid when
// Working is true.
func (p DayPlan) Schedule() Schedule {
	var s Schedule
	if p.WorkStart != nil {
		s.WorkStart = *p.WorkStart
	}
	if p.BreakStart != nil {
		s.BreakStart = *p.BreakStart
	}
	if p.BreakEnd != nil {
		s.BreakEnd = *p.BreakEnd
	}
	if p.WorkEnd != nil {
		s.WorkEnd = *p.WorkEnd
	}
	if p.HourlyRate != nil {
		s.HourlyRate = *p.HourlyRate
	}
	return s
}

// ResolveDay picks the plan for one date. A non-canceled session for the
// date wins, then a date exception, then the weekly schedule row for the
// weekday. An exception without times is a day off carrying its reason.
func ResolveDay(date time.Time, sessions []entity.WorkSession, exceptions []entity.WorkException, schedules []entity.WorkSchedule) DayPlan {
	dateStr := date.Format("2006-01-02")
	plan := DayPlan{Date: dateStr, Source: SourceNone}

	for i := range sessions {
		s := &sessions[i]
		if s.WorkDate == nil || !sameDate(*s.WorkDate, dateStr) {
			continue
		}
		if s.IsCanceled != nil && *s.IsCanceled {
			continue
		}

		plan.Source = SourceSession
		plan.WorkStart = s.WorkStart
		plan.BreakStart = s.BreakStart
		plan.BreakEnd = s.BreakEnd
		plan.WorkEnd = s.WorkEnd
		plan.HourlyRate = s.HourlyRate
		fillTotals(&plan)
		return plan
	}

	for i := range exceptions {
		e := &exceptions[i]
		if e.Date == nil || !sameDate(*e.Date, dateStr) {
			continue
		}

		plan.Source = SourceException
		plan.Reason = e.Reason
		plan.Comment = e.Comment
		if e.WorkStart == nil || e.WorkEnd == nil {
			// day off
			return plan
		}
		plan.WorkStart = e.WorkStart
		plan.BreakStart = e.BreakStart
		plan.BreakEnd = e.BreakEnd
		plan.WorkEnd = e.WorkEnd
		plan.HourlyRate = e.HourlyRate
		fillTotals(&plan)
		return plan
	}

	weekday := strings.ToLower(date.Weekday().String())
	for i := range schedules {
		s := &schedules[i]
		if s.DayOfWeek == nil || *s.DayOfWeek != weekday {
			continue
		}

		plan.Source = SourceSchedule
		plan.WorkStart = s.WorkStart
		plan.BreakStart = s.BreakStart
		plan.BreakEnd = s.BreakEnd
		plan.WorkEnd = s.WorkEnd
		plan.HourlyRate = s.HourlyRate
		fillTotals(&plan)
		return plan
	}

	return plan
}

func fillTotals(plan *DayPlan) {
	if plan.WorkStart == nil || plan.WorkEnd == nil || plan.BreakStart == nil || plan.BreakEnd == nil {
		return
	}

	net, err := NetHours(*plan.WorkStart, *plan.WorkEnd, *plan.BreakStart, *plan.BreakEnd)
	if err != nil {
		return
	}

	plan.Working = true
	plan.NetHours = net
	if plan.HourlyRate != nil {
		plan.DailyEarnings = DailyEarnings(net, *plan.HourlyRate)
	}
}

// sameDate tolerates timestamp-shaped values coming back from date columns.
func sameDate(a, b string) bool {
	if len(a) > 10 {
		a = a[:10]
	}
	if len(b) > 10 {
		b = b[:10]
	}
	return a == b
}
