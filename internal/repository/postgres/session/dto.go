package session

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	UserID *int
	Month  *string
}

type GetListResponse struct {
	ID              int        `json:"id"`
	UserID          int        `json:"user_id"`
	WorkDate        *date.Date `json:"work_date"`
	WorkStart       string     `json:"work_start"`
	BreakStart      string     `json:"break_start"`
	BreakEnd        string     `json:"break_end"`
	WorkEnd         string     `json:"work_end"`
	HourlyRate      float64    `json:"hourly_rate"`
	IsAutoGenerated bool       `json:"is_auto_generated"`
	IsCanceled      bool       `json:"is_canceled"`
	NetHours        float64    `json:"net_hours"`
	DailyEarnings   float64    `json:"daily_earnings"`
}

type GetDetailByIdResponse struct {
	ID              int        `json:"id"`
	UserID          int        `json:"user_id"`
	WorkDate        *date.Date `json:"work_date"`
	WorkStart       string     `json:"work_start"`
	BreakStart      string     `json:"break_start"`
	BreakEnd        string     `json:"break_end"`
	WorkEnd         string     `json:"work_end"`
	HourlyRate      float64    `json:"hourly_rate"`
	IsAutoGenerated bool       `json:"is_auto_generated"`
	IsCanceled      bool       `json:"is_canceled"`
	NetHours        float64    `json:"net_hours"`
	DailyEarnings   float64    `json:"daily_earnings"`
}

type CreateRequest struct {
	UserID          *int     `json:"user_id"    form:"user_id"`
	WorkDate        *string  `json:"work_date"  form:"work_date"`
	WorkStart       *string  `json:"work_start" form:"work_start"`
	BreakStart      *string  `json:"break_start" form:"break_start"`
	BreakEnd        *string  `json:"break_end"  form:"break_end"`
	WorkEnd         *string  `json:"work_end"   form:"work_end"`
	HourlyRate      *float64 `json:"hourly_rate" form:"hourly_rate"`
	IsAutoGenerated *bool    `json:"is_auto_generated" form:"is_auto_generated"`
	IsCanceled      *bool    `json:"is_canceled" form:"is_canceled"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:work_sessions"`

	ID              int       `json:"id" bun:"id,pk,autoincrement"`
	UserID          *int      `json:"user_id"     bun:"user_id"`
	WorkDate        *string   `json:"work_date"   bun:"work_date"`
	WorkStart       *string   `json:"work_start"  bun:"work_start"`
	BreakStart      *string   `json:"break_start" bun:"break_start"`
	BreakEnd        *string   `json:"break_end"   bun:"break_end"`
	WorkEnd         *string   `json:"work_end"    bun:"work_end"`
	HourlyRate      *float64  `json:"hourly_rate" bun:"hourly_rate"`
	IsAutoGenerated *bool     `json:"is_auto_generated" bun:"is_auto_generated"`
	IsCanceled      *bool     `json:"is_canceled" bun:"is_canceled"`
	CreatedAt       time.Time `json:"-"           bun:"created_at"`
	CreatedBy       *int      `json:"-"           bun:"created_by"`
}

type UpdateRequest struct {
	ID         int      `json:"id" form:"id"`
	WorkDate   *string  `json:"work_date"   form:"work_date"`
	WorkStart  *string  `json:"work_start"  form:"work_start"`
	BreakStart *string  `json:"break_start" form:"break_start"`
	BreakEnd   *string  `json:"break_end"   form:"break_end"`
	WorkEnd    *string  `json:"work_end"    form:"work_end"`
	HourlyRate *float64 `json:"hourly_rate" form:"hourly_rate"`
	IsCanceled *bool    `json:"is_canceled" form:"is_canceled"`
}
