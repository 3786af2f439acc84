package exception

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
}

type GetListResponse struct {
	ID         int        `json:"id"`
	UserID     int        `json:"user_id"`
	Date       *date.Date `json:"date"`
	Reason     string     `json:"reason"`
	WorkStart  *string    `json:"work_start"`
	BreakStart *string    `json:"break_start"`
	BreakEnd   *string    `json:"break_end"`
	WorkEnd    *string    `json:"work_end"`
	HourlyRate *float64   `json:"hourly_rate"`
	Comment    *string    `json:"comment"`
}

type GetDetailByIdResponse struct {
	ID         int        `json:"id"`
	UserID     int        `json:"user_id"`
	Date       *date.Date `json:"date"`
	Reason     string     `json:"reason"`
	WorkStart  *string    `json:"work_start"`
	BreakStart *string    `json:"break_start"`
	BreakEnd   *string    `json:"break_end"`
	WorkEnd    *string    `json:"work_end"`
	HourlyRate *float64   `json:"hourly_rate"`
	Comment    *string    `json:"comment"`
}

type CreateRequest struct {
	UserID     *int     `json:"user_id"     form:"user_id"`
	Date       *string  `json:"date"        form:"date"`
	Reason     *string  `json:"reason"      form:"reason"`
	WorkStart  *string  `json:"work_start"  form:"work_start"`
	BreakStart *string  `json:"break_start" form:"break_start"`
	BreakEnd   *string  `json:"break_end"   form:"break_end"`
	WorkEnd    *string  `json:"work_end"    form:"work_end"`
	HourlyRate *float64 `json:"hourly_rate" form:"hourly_rate"`
	Comment    *string  `json:"comment"     form:"comment"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:work_exceptions"`

	ID         int       `json:"id" bun:"id,pk,autoincrement"`
	UserID     *int      `json:"user_id"     bun:"user_id"`
	Date       *string   `json:"date"        bun:"date"`
	Reason     *string   `json:"reason"      bun:"reason"`
	WorkStart  *string   `json:"work_start"  bun:"work_start"`
	BreakStart *string   `json:"break_start" bun:"break_start"`
	BreakEnd   *string   `json:"break_end"   bun:"break_end"`
	WorkEnd    *string   `json:"work_end"    bun:"work_end"`
	HourlyRate *float64  `json:"hourly_rate" bun:"hourly_rate"`
	Comment    *string   `json:"comment"     bun:"comment"`
	CreatedAt  time.Time `json:"-"           bun:"created_at"`
	CreatedBy  *int      `json:"-"           bun:"created_by"`
}

type UpdateRequest struct {
	ID         int      `json:"id" form:"id"`
	Date       *string  `json:"date"        form:"date"`
	Reason     *string  `json:"reason"      form:"reason"`
	WorkStart  *string  `json:"work_start"  form:"work_start"`
	BreakStart *string  `json:"break_start" form:"break_start"`
	BreakEnd   *string  `json:"break_end"   form:"break_end"`
	WorkEnd    *string  `json:"work_end"    form:"work_end"`
	HourlyRate *float64 `json:"hourly_rate" form:"hourly_rate"`
	Comment    *string  `json:"comment"     form:"comment"`
}
