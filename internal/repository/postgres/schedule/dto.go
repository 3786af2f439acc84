package schedule

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	UserID *int
}

type GetListResponse struct {
	ID            int     `json:"id"`
	UserID        int     `json:"user_id"`
	DayOfWeek     string  `json:"day_of_week"`
	WorkStart     string  `json:"work_start"`
	BreakStart    string  `json:"break_start"`
	BreakEnd      string  `json:"break_end"`
	WorkEnd       string  `json:"work_end"`
	HourlyRate    float64 `json:"hourly_rate"`
	NetHours      float64 `json:"net_hours"`
	DailyEarnings float64 `json:"daily_earnings"`
}

type GetDetailByIdResponse struct {
	ID            int     `json:"id"`
	UserID        int     `json:"user_id"`
	DayOfWeek     string  `json:"day_of_week"`
	WorkStart     string  `json:"work_start"`
	BreakStart    string  `json:"break_start"`
	BreakEnd      string  `json:"break_end"`
	WorkEnd       string  `json:"work_end"`
	HourlyRate    float64 `json:"hourly_rate"`
	NetHours      float64 `json:"net_hours"`
	DailyEarnings float64 `json:"daily_earnings"`
}

type CreateRequest struct {
	UserID     *int     `json:"user_id"     form:"user_id"`
	DayOfWeek  *string  `json:"day_of_week" form:"day_of_week"`
	WorkStart  *string  `json:"work_start"  form:"work_start"`
	BreakStart *string  `json:"break_start" form:"break_start"`
	BreakEnd   *string  `json:"break_end"   form:"break_end"`
	WorkEnd    *string  `json:"work_end"    form:"work_end"`
	HourlyRate *float64 `json:"hourly_rate" form:"hourly_rate"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:work_schedule"`

	ID         int       `json:"id" bun:"id,pk,autoincrement"`
	UserID     *int      `json:"user_id"     bun:"user_id"`
	DayOfWeek  *string   `json:"day_of_week" bun:"day_of_week"`
	WorkStart  *string   `json:"work_start"  bun:"work_start"`
	BreakStart *string   `json:"break_start" bun:"break_start"`
	BreakEnd   *string   `json:"break_end"   bun:"break_end"`
	WorkEnd    *string   `json:"work_end"    bun:"work_end"`
	HourlyRate *float64  `json:"hourly_rate" bun:"hourly_rate"`
	CreatedAt  time.Time `json:"-"           bun:"created_at"`
	CreatedBy  *int      `json:"-"           bun:"created_by"`
}

type UpdateRequest struct {
	ID         int      `json:"id" form:"id"`
	DayOfWeek  *string  `json:"day_of_week" form:"day_of_week"`
	WorkStart  *string  `json:"work_start"  form:"work_start"`
	BreakStart *string  `json:"break_start" form:"break_start"`
	BreakEnd   *string  `json:"break_end"   form:"break_end"`
	WorkEnd    *string  `json:"work_end"    form:"work_end"`
	HourlyRate *float64 `json:"hourly_rate" form:"hourly_rate"`
}
