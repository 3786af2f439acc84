package entity

import (
	"github.com/uptrace/bun"
)

// WorkSession is the recorded work interval for a specific date, as opposed
// to the planned schedule or exception.
type WorkSession struct {
	bun.BaseModel `bun:"table:work_sessions"`

	BasicEntity
	UserID          *int     `json:"user_id"           bun:"user_id"`
	WorkDate        *string  `json:"work_date"         bun:"work_date"`
	WorkStart       *string  `json:"work_start"        bun:"work_start"`
	BreakStart      *string  `json:"break_start"       bun:"break_start"`
	BreakEnd        *string  `json:"break_end"         bun:"break_end"`
	WorkEnd         *string  `json:"work_end"          bun:"work_end"`
	HourlyRate      *float64 `json:"hourly_rate"       bun:"hourly_rate"`
	IsAutoGenerated *bool    `json:"is_auto_generated" bun:"is_auto_generated"`
	IsCanceled      *bool    `json:"is_canceled"       bun:"is_canceled"`
}
