package entity

import (
	"github.com/uptrace/bun"
)

// WorkException overrides the weekly schedule on a single calendar date.
type WorkException struct {
	bun.BaseModel `bun:"table:work_exceptions"`

	BasicEntity
	UserID     *int     `json:"user_id"     bun:"user_id"`
	Date       *string  `json:"date"        bun:"date"`
	Reason     *string  `json:"reason"      bun:"reason"`
	WorkStart  *string  `json:"work_start"  bun:"work_start"`
	BreakStart *string  `json:"break_start" bun:"break_start"`
	BreakEnd   *string  `json:"break_end"   bun:"break_end"`
	WorkEnd    *string  `json:"work_end"    bun:"work_end"`
	HourlyRate *float64 `json:"hourly_rate" bun:"hourly_rate"`
	Comment    *string  `json:"comment"     bun:"comment"`
}
