package entity

import (
	"github.com/uptrace/bun"
)

type WorkSchedule struct {
	bun.BaseModel `bun:"table:work_schedule"`

	BasicEntity
	UserID     *int     `json:"user_id"     bun:"user_id"`
	DayOfWeek  *string  `json:"day_of_week" bun:"day_of_week"`
	WorkStart  *string  `json:"work_start"  bun:"work_start"`
	BreakStart *string  `json:"break_start" bun:"break_start"`
	BreakEnd   *string  `json:"break_end"   bun:"break_end"`
	WorkEnd    *string  `json:"work_end"    bun:"work_end"`
	HourlyRate *float64 `json:"hourly_rate" bun:"hourly_rate"`
}
