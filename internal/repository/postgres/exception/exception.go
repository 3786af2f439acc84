package exception

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

var reasons = map[string]bool{
	"vacation": true, "sick": true, "late": true,
	"early_out": true, "overtime": true, "other": true,
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	whereQuery := `WHERE e.deleted_at IS NULL`
	if filter.UserID != nil {
		whereQuery += fmt.Sprintf(` AND e.user_id = %d`, *filter.UserID)
	}

	orderQuery := ` ORDER BY e.date`

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
			e.id,
			e.user_id,
			e.date,
			e.reason,
			to_char(e.work_start, 'HH24:MI'),
			to_char(e.break_start, 'HH24:MI'),
			to_char(e.break_end, 'HH24:MI'),
			to_char(e.work_end, 'HH24:MI'),
			e.hourly_rate,
			e.comment
		FROM work_exceptions e %s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting exceptions"), http.StatusInternalServerError)
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
			&detail.Reason,
			&detail.WorkStart,
			&detail.BreakStart,
			&detail.BreakEnd,
			&detail.WorkEnd,
			&detail.HourlyRate,
			&detail.Comment,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning exceptions"), http.StatusInternalServerError)
		}

		day, err := date.ParseDate(dateString)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "converting date to date.Date"), http.StatusInternalServerError)
		}
		detail.Date = &day

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`SELECT count(e.id) FROM work_exceptions e %s`, whereQuery)

	countRows, err := r.QueryContext(ctx, countQuery)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting exceptions count"), http.StatusInternalServerError)
	}
	defer countRows.Close()

	count := 0
	for countRows.Next() {
		if err = countRows.Scan(&count); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning exceptions count"), http.StatusInternalServerError)
		}
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	query := `
		SELECT
			e.id,
			e.user_id,
			e.date,
			e.reason,
			to_char(e.work_start, 'HH24:MI'),
			to_char(e.break_start, 'HH24:MI'),
			to_char(e.break_end, 'HH24:MI'),
			to_char(e.work_end, 'HH24:MI'),
			e.hourly_rate,
			e.comment
		FROM work_exceptions e
		WHERE e.deleted_at IS NULL AND e.id = $1
	`

	var detail GetDetailByIdResponse
	var dateString string

	err := r.QueryRowContext(ctx, query, id).Scan(
		&detail.ID,
		&detail.UserID,
		&dateString,
		&detail.Reason,
		&detail.WorkStart,
		&detail.BreakStart,
		&detail.BreakEnd,
		&detail.WorkEnd,
		&detail.HourlyRate,
		&detail.Comment,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting exception detail"), http.StatusInternalServerError)
	}

	day, err := date.ParseDate(dateString)
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "converting date to date.Date"), http.StatusInternalServerError)
	}
	detail.Date = &day

	return detail, nil
}

func (r Repository) GetByUserID(ctx context.Context, userID int) ([]GetListResponse, error) {
	list, _, err := r.GetList(ctx, Filter{UserID: &userID})
	return list, err
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (GetDetailByIdResponse, error) {
	if err := r.ValidateStruct(&request, "UserID", "Date", "Reason"); err != nil {
		return GetDetailByIdResponse{}, err
	}

	if !reasons[*request.Reason] {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.New("reason must be one of: vacation, sick, late, early_out, overtime, other"), http.StatusBadRequest)
	}
	if _, err := date.ParseDate(*request.Date); err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.New("date must be YYYY-MM-DD"), http.StatusBadRequest)
	}
	if err := validateWindow(request.WorkStart, request.BreakStart, request.BreakEnd, request.WorkEnd); err != nil {
		return GetDetailByIdResponse{}, err
	}

	response := CreateResponse{
		UserID:     request.UserID,
		Date:       request.Date,
		Reason:     request.Reason,
		WorkStart:  request.WorkStart,
		BreakStart: request.BreakStart,
		BreakEnd:   request.BreakEnd,
		WorkEnd:    request.WorkEnd,
		HourlyRate: request.HourlyRate,
		Comment:    request.Comment,
		CreatedAt:  time.Now(),
		CreatedBy:  r.ClaimsUserID(ctx),
	}

	_, err := r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return GetDetailByIdResponse{}, postgresql.ErrStatus(err, "creating exception")
	}

	return r.GetDetailById(ctx, response.ID)
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	if request.Reason != nil && !reasons[*request.Reason] {
		return web.NewRequestError(errors.New("reason must be one of: vacation, sick, late, early_out, overtime, other"), http.StatusBadRequest)
	}
	if request.Date != nil {
		if _, err := date.ParseDate(*request.Date); err != nil {
			return web.NewRequestError(errors.New("date must be YYYY-MM-DD"), http.StatusBadRequest)
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

	q := r.NewUpdate().Table("work_exceptions").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Date != nil {
		q.Set("date = ?", request.Date)
	}
	if request.Reason != nil {
		q.Set("reason = ?", request.Reason)
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
	if request.Comment != nil {
		q.Set("comment = ?", request.Comment)
	}

	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", r.ClaimsUserID(ctx))

	_, err := q.Exec(ctx)
	if err != nil {
		return postgresql.ErrStatus(err, "updating exception")
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "work_exceptions", id)
}

// Plans loads the entity rows used by the day resolver.
func (r Repository) Plans(ctx context.Context, userID int) ([]entity.WorkException, error) {
	var rows []entity.WorkException

	err := r.NewSelect().Model(&rows).
		Where("deleted_at IS NULL AND user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting exception plans"), http.StatusInternalServerError)
	}

	return rows, nil
}

// validateWindow applies the ordering invariant when all four times are
// present; a partial window is rejected, no times at all marks a day off.
func validateWindow(workStart, breakStart, breakEnd, workEnd *string) error {
	present := 0
	for _, v := range []*string{workStart, breakStart, breakEnd, workEnd} {
		if v != nil {
			present++
		}
	}
	if present == 0 {
		return nil
	}
	if present != 4 {
		return web.NewRequestError(errors.New("either all of work_start, break_start, break_end, work_end or none"), http.StatusBadRequest)
	}

	window := timesheet.Schedule{
		WorkStart:  *workStart,
		BreakStart: *breakStart,
		BreakEnd:   *breakEnd,
		WorkEnd:    *workEnd,
	}
	if err := window.Validate(); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}
	return nil
}
