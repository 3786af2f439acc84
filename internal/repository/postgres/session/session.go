package session

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"

	"github.com/Furoshaa/HowMuch/foundation/web"
	"github.com/Furoshaa/HowMuch/internal/entity"
	"github.com/Furoshaa/HowMuch/internal/pkg/repository/postgresql"
	"github.com/Furoshaa/HowMuch/internal/repository/postgres"
	"github.com/Furoshaa/HowMuch/internal/service/timesheet"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	whereQuery := `WHERE w.deleted_at IS NULL`
	if filter.UserID != nil {
		whereQuery += fmt.Sprintf(` AND w.user_id = %d`, *filter.UserID)
	}
	if filter.Month != nil {
		whereQuery += fmt.Sprintf(` AND to_char(w.work_date, 'YYYY-MM') = '%s'`, escape(*filter.Month))
	}

	orderQuery := ` ORDER BY w.work_date`

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
			w.id,
			w.user_id,
			w.work_date,
			to_char(w.work_start, 'HH24:MI'),
			to_char(w.break_start, 'HH24:MI'),
			to_char(w.break_end, 'HH24:MI'),
			to_char(w.work_end, 'HH24:MI'),
			w.hourly_rate,
			w.is_auto_generated,
			w.is_canceled
		FROM work_sessions w %s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting sessions"), http.StatusInternalServerError)
	}
	defer rows.Close()

	list := make([]GetListResponse, 0)
	for rows.Next() {
		var detail GetListResponse
		var dateString string

		if err = rows.Scan(
			&detail.ID,
			&detail.UserID,
			&dateString,
			&detail.WorkStart,
			&detail.BreakStart,
			&detail.BreakEnd,
			&detail.WorkEnd,
			&detail.HourlyRate,
			&detail.IsAutoGenerated,
			&detail.IsCanceled,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning sessions"), http.StatusInternalServerError)
		}

		workDate, err := date.ParseDate(dateString)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "converting work_date to date.Date"), http.StatusInternalServerError)
		}
		detail.WorkDate = &workDate

		fillComputed(&detail)
		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`SELECT count(w.id) FROM work_sessions w %s`, whereQuery)

	countRows, err := r.QueryContext(ctx, countQuery)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting sessions count"), http.StatusInternalServerError)
	}
	defer countRows.Close()

	count := 0
	for countRows.Next() {
		if err = countRows.Scan(&count); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning sessions count"), http.StatusInternalServerError)
		}
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	query := `
		SELECT
			w.id,
			w.user_id,
			w.work_date,
			to_char(w.work_start, 'HH24:MI'),
			to_char(w.break_start, 'HH24:MI'),
			to_char(w.break_end, 'HH24:MI'),
			to_char(w.work_end, 'HH24:MI'),
			w.hourly_rate,
			w.is_auto_generated,
			w.is_canceled
		FROM work_sessions w
		WHERE w.deleted_at IS NULL AND w.id = $1
	`

	var detail GetDetailByIdResponse
	var dateString string

	err := r.QueryRowContext(ctx, query, id).Scan(
		&detail.ID,
		&detail.UserID,
		&dateString,
		&detail.WorkStart,
		&detail.BreakStart,
		&detail.BreakEnd,
		&detail.WorkEnd,
		&detail.HourlyRate,
		&detail.IsAutoGenerated,
		&detail.IsCanceled,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting session detail"), http.StatusInternalServerError)
	}

	workDate, err := date.ParseDate(dateString)
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "converting work_date to date.Date"), http.StatusInternalServerError)
	}
	detail.WorkDate = &workDate

	fillComputed((*GetListResponse)(&detail))

	return detail, nil
}

func (r Repository) GetByUserID(ctx context.Context, userID int) ([]GetListResponse, error) {
	list, _, err := r.GetList(ctx, Filter{UserID: &userID})
	return list, err
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (GetDetailByIdResponse, error) {
	if err := r.ValidateStruct(&request,
		"UserID", "WorkDate", "WorkStart", "BreakStart", "BreakEnd", "WorkEnd", "HourlyRate",
	); err != nil {
		return GetDetailByIdResponse{}, err
	}

	if _, err := date.ParseDate(*request.WorkDate); err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.New("work_date must be YYYY-MM-DD"), http.StatusBadRequest)
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
		UserID:          request.UserID,
		WorkDate:        request.WorkDate,
		WorkStart:       request.WorkStart,
		BreakStart:      request.BreakStart,
		BreakEnd:        request.BreakEnd,
		WorkEnd:         request.WorkEnd,
		HourlyRate:      request.HourlyRate,
		IsAutoGenerated: request.IsAutoGenerated,
		IsCanceled:      request.IsCanceled,
		CreatedAt:       time.Now(),
		CreatedBy:       r.ClaimsUserID(ctx),
	}

	_, err := r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return GetDetailByIdResponse{}, postgresql.ErrStatus(err, "creating session")
	}

	return r.GetDetailById(ctx, response.ID)
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	if request.WorkDate != nil {
		if _, err := date.ParseDate(*request.WorkDate); err != nil {
			return web.NewRequestError(errors.New("work_date must be YYYY-MM-DD"), http.StatusBadRequest)
		}
	}
	for _, v := range []*string{request.WorkStart, request.BreakStart, request.BreakEnd, request.WorkEnd} {
		if v == nil {
			continue
		}
		if _, err := timesheet.ParseClock(*v); err != nil {
			return web.NewRequestError(err, http.StatusBadRequest)
		}
	}

	q := r.NewUpdate().Table("work_sessions").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.WorkDate != nil {
		q.Set("work_date = ?", request.WorkDate)
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
	if request.IsCanceled != nil {
		q.Set("is_canceled = ?", request.IsCanceled)
	}

	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", r.ClaimsUserID(ctx))

	_, err := q.Exec(ctx)
	if err != nil {
		return postgresql.ErrStatus(err, "updating session")
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "work_sessions", id)
}

// Plans loads the entity rows used by the day resolver.
func (r Repository) Plans(ctx context.Context, userID int) ([]entity.WorkSession, error) {
	var rows []entity.WorkSession

	err := r.NewSelect().Model(&rows).
		Where("deleted_at IS NULL AND user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting session plans"), http.StatusInternalServerError)
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

func escape(s string) string {
	var out []rune
	for _, r := range s {
		if r == '\'' {
			out = append(out, '\'')
		}
		out = append(out, r)
	}
	return string(out)
}
