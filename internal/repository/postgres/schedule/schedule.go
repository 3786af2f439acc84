package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/Furoshaa/HowMuch/foundation/web"
	"github.com/Furoshaa/HowMuch/internal/entity"
	"github.com/Furoshaa/HowMuch/internal/pkg/repository/postgresql"
	"github.com/Furoshaa/HowMuch/internal/repository/postgres"
	"github.com/Furoshaa/HowMuch/internal/service/timesheet"
	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	whereQuery := `WHERE s.deleted_at IS NULL`
	if filter.UserID != nil {
		whereQuery += fmt.Sprintf(` AND s.user_id = %d`, *filter.UserID)
	}

	orderQuery := ` ORDER BY array_position(enum_range(NULL::day_of_week), s.day_of_week)`

	var limitQuery, offsetQuery string
	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}
	if filter.Limit != nil {
		limitQuery += fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}
	if filter.Offset != nil {
		offsetQuery += fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	query := fmt.Sprintf(`
		SELECT
			s.id,
			s.user_id,
			s.day_of_week,
			to_char(s.work_start, 'HH24:MI'),
			to_char(s.break_start, 'HH24:MI'),
			to_char(s.break_end, 'HH24:MI'),
			to_char(s.work_end, 'HH24:MI'),
			s.hourly_rate
		FROM work_schedule s %s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting schedules"), http.StatusInternalServerError)
	}
	defer rows.Close()

	list := make([]GetListResponse, 0)
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.UserID,
			&detail.DayOfWeek,
			&detail.WorkStart,
			&detail.BreakStart,
			&detail.BreakEnd,
			&detail.WorkEnd,
			&detail.HourlyRate,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning schedules"), http.StatusInternalServerError)
		}
		fillComputed(&detail)
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`SELECT count(s.id) FROM work_schedule s %s`, whereQuery)

	countRows, err := r.QueryContext(ctx, countQuery)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting schedules count"), http.StatusInternalServerError)
	}
	defer countRows.Close()

	count := 0
	for countRows.Next() {
		if err = countRows.Scan(&count); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning schedules count"), http.StatusInternalServerError)
		}
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	query := `
		SELECT
			s.id,
			s.user_id,
			s.day_of_week,
			to_char(s.work_start, 'HH24:MI'),
			to_char(s.break_start, 'HH24:MI'),
			to_char(s.break_end, 'HH24:MI'),
			to_char(s.work_end, 'HH24:MI'),
			s.hourly_rate
		FROM work_schedule s
		WHERE s.deleted_at IS NULL AND s.id = $1
	`

	var detail GetDetailByIdResponse

	err := r.QueryRowContext(ctx, query, id).Scan(
		&detail.ID,
		&detail.UserID,
		&detail.DayOfWeek,
		&detail.WorkStart,
		&detail.BreakStart,
		&detail.BreakEnd,
		&detail.WorkEnd,
		&detail.HourlyRate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting schedule detail"), http.StatusInternalServerError)
	}

	fillComputed((*GetListResponse)(&detail))

	return detail, nil
}

// GetByUserID returns the weekly rows for one user, schedule order.
func (r Repository) GetByUserID(ctx context.Context, userID int) ([]GetListResponse, error) {
	list, _, err := r.GetList(ctx, Filter{UserID: &userID})
	return list, err
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (GetDetailByIdResponse, error) {
	if err := r.ValidateStruct(&request,
		"UserID", "DayOfWeek", "WorkStart", "BreakStart", "BreakEnd", "WorkEnd", "HourlyRate",
	); err != nil {
		return GetDetailByIdResponse{}, err
	}

	if !weekdays[*request.DayOfWeek] {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.New("day_of_week must be a lowercase weekday name"), http.StatusBadRequest)
	}

	window := timesheet.Schedule{
		WorkStart:  *request.WorkStart,
		BreakStart: *request.BreakStart,
		BreakEnd:   *request.BreakEnd,
		WorkEnd:    *request.WorkEnd,
	}
	if err := window.Validate(); err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(err, http.StatusBadRequest)
	}

	response := CreateResponse{
		UserID:     request.UserID,
		DayOfWeek:  request.DayOfWeek,
		WorkStart:  request.WorkStart,
		BreakStart: request.BreakStart,
		BreakEnd:   request.BreakEnd,
		WorkEnd:    request.WorkEnd,
		HourlyRate: request.HourlyRate,
		CreatedAt:  time.Now(),
		CreatedBy:  r.ClaimsUserID(ctx),
	}

	_, err := r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return GetDetailByIdResponse{}, postgresql.ErrStatus(err, "creating schedule")
	}

	return r.GetDetailById(ctx, response.ID)
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	if request.DayOfWeek != nil && !weekdays[*request.DayOfWeek] {
		return web.NewRequestError(errors.New("day_of_week must be a lowercase weekday name"), http.StatusBadRequest)
	}
	for _, v := range []*string{request.WorkStart, request.BreakStart, request.BreakEnd, request.WorkEnd} {
		if v == nil {
			continue
		}
		if _, err := timesheet.ParseClock(*v); err != nil {
			return web.NewRequestError(err, http.StatusBadRequest)
		}
	}

	q := r.NewUpdate().Table("work_schedule").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.DayOfWeek != nil {
		q.Set("day_of_week = ?", request.DayOfWeek)
	}
	if request.WorkStart != nil {
		q.Set("work_start = ?", request.WorkStart)
	}
	if request.BreakStart != nil {
		q.Set("break_start = ?", request.BreakStart)
	}
	if request.BreakEnd != nil {
		q.Set("break_end = ?", request.BreakEnd)
	}
	if request.WorkEnd != nil {
		q.Set("work_end = ?", request.WorkEnd)
	}
	if request.HourlyRate != nil {
		q.Set("hourly_rate = ?", request.HourlyRate)
	}

	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", r.ClaimsUserID(ctx))

	_, err := q.Exec(ctx)
	if err != nil {
		return postgresql.ErrStatus(err, "updating schedule")
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "work_schedule", id)
}

// Plans loads the entity rows used by the day resolver and summary views.
func (r Repository) Plans(ctx context.Context, userID int) ([]entity.WorkSchedule, error) {
	var rows []entity.WorkSchedule

	err := r.NewSelect().Model(&rows).
		Where("deleted_at IS NULL AND user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting schedule plans"), http.StatusInternalServerError)
	}

	return rows, nil
}

func fillComputed(detail *GetListResponse) {
	net, err := timesheet.NetHours(detail.WorkStart, detail.WorkEnd, detail.BreakStart, detail.BreakEnd)
	if err != nil {
		return
	}

	detail.NetHours = net
	detail.DailyEarnings = timesheet.DailyEarnings(net, detail.HourlyRate)
}
