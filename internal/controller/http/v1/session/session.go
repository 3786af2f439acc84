package session

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"

	"github.com/Furoshaa/HowMuch/foundation/web"
	"github.com/Furoshaa/HowMuch/internal/repository/postgres/session"
	"github.com/Furoshaa/HowMuch/internal/service"
)

type Controller struct {
	session Session
	user    User
}

func NewController(session Session, user User) *Controller {
	return &Controller{session, user}
}

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

func (sc Controller) GetSessionList(c *web.Context) error {
	var filter session.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if userID, ok := c.GetQueryFunc(reflect.Int, "user_id").(*int); ok {
		filter.UserID = userID
	}
	if month, ok := c.GetQueryFunc(reflect.String, "month").(*string); ok {
		filter.Month = month
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}
	if filter.Month != nil && !monthPattern.MatchString(*filter.Month) {
		return c.RespondError(web.NewRequestError(errors.New("month must be YYYY-MM"), http.StatusBadRequest))
	}

	list, count, err := sc.session.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
	}, http.StatusOK)
}

func (sc Controller) GetSessionDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := sc.session.GetDetailById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    response,
	}, http.StatusOK)
}

func (sc Controller) GetSessionsByUser(c *web.Context) error {
	userID := c.GetParam(reflect.Int, "user_id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	list, err := sc.session.GetByUserID(c.Ctx, userID)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    list,
	}, http.StatusOK)
}

func (sc Controller) CreateSession(c *web.Context) error {
	var request session.CreateRequest
	if err := c.BindFunc(&request, "UserID", "WorkDate", "WorkStart", "BreakStart", "BreakEnd", "WorkEnd", "HourlyRate"); err != nil {
		return c.RespondError(err)
	}

	response, err := sc.session.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    response,
	}, http.StatusCreated)
}

func (sc Controller) UpdateSessionColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request session.UpdateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	if err := sc.session.UpdateColumns(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    "ok!",
	}, http.StatusOK)
}

func (sc Controller) DeleteSession(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := sc.session.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    "ok!",
	}, http.StatusOK)
}

// ExportSessions writes the user's sessions as an xlsx download.
func (sc Controller) ExportSessions(c *web.Context) error {
	userID := c.GetParam(reflect.Int, "user_id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	detail, err := sc.user.GetDetailById(c.Ctx, userID)
	if err != nil {
		return c.RespondError(err)
	}

	list, err := sc.session.GetByUserID(c.Ctx, userID)
	if err != nil {
		return c.RespondError(err)
	}

	username := ""
	if detail.Username != nil {
		username = *detail.Username
	}

	file, err := service.SessionsToExcel(username, toRows(list))
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"sessions_%d.xlsx\"", userID))
	c.Status(http.StatusOK)
	if _, err := c.Writer.Write(file); err != nil {
		return c.RespondError(err)
	}

	return nil
}

// MonthlyReport writes a PDF summary of one month's sessions.
func (sc Controller) MonthlyReport(c *web.Context) error {
	userID := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	month := c.Query("month")
	if month == "" {
		return c.RespondError(web.NewRequestError(errors.New("month parameter is required"), http.StatusBadRequest))
	}
	if !monthPattern.MatchString(month) {
		return c.RespondError(web.NewRequestError(errors.New("month must be YYYY-MM"), http.StatusBadRequest))
	}

	detail, err := sc.user.GetDetailById(c.Ctx, userID)
	if err != nil {
		return c.RespondError(err)
	}

	list, _, err := sc.session.GetList(c.Ctx, session.Filter{UserID: &userID, Month: &month})
	if err != nil {
		return c.RespondError(err)
	}

	username := ""
	if detail.Username != nil {
		username = *detail.Username
	}

	file, err := service.MonthlyReport(username, month, toRows(list))
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"report_%d_%s.pdf\"", userID, month))
	c.Status(http.StatusOK)
	if _, err := c.Writer.Write(file); err != nil {
		return c.RespondError(err)
	}

	return nil
}

func toRows(list []session.GetListResponse) []service.SessionRow {
	rows := make([]service.SessionRow, 0, len(list))
	for _, entry := range list {
		row := service.SessionRow{
			WorkStart:     entry.WorkStart,
			BreakStart:    entry.BreakStart,
			BreakEnd:      entry.BreakEnd,
			WorkEnd:       entry.WorkEnd,
			HourlyRate:    entry.HourlyRate,
			NetHours:      entry.NetHours,
			DailyEarnings: entry.DailyEarnings,
			Canceled:      entry.IsCanceled,
		}
		if entry.WorkDate != nil {
			row.WorkDate = entry.WorkDate.String()
		}
		rows = append(rows, row)
	}
	return rows
}
