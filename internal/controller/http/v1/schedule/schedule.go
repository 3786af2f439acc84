package schedule

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/Furoshaa/HowMuch/foundation/web"
	"github.com/Furoshaa/HowMuch/internal/repository/postgres/schedule"
	"github.com/Furoshaa/HowMuch/internal/service/dial"
	"github.com/Furoshaa/HowMuch/internal/service/timesheet"
)

type Controller struct {
	schedule Schedule
}

func NewController(schedule Schedule) *Controller {
	return &Controller{schedule}
}

func (sc Controller) GetScheduleList(c *web.Context) error {
	var filter schedule.Filter

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
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := sc.schedule.GetList(c.Ctx, filter)
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

func (sc Controller) GetScheduleDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := sc.schedule.GetDetailById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    response,
	}, http.StatusOK)
}

// GetSchedulesByUser returns the weekly rows for one user. An unknown user
// yields an empty list, not a 404.
func (sc Controller) GetSchedulesByUser(c *web.Context) error {
	userID := c.GetParam(reflect.Int, "user_id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	list, err := sc.schedule.GetByUserID(c.Ctx, userID)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    list,
	}, http.StatusOK)
}

// GetScheduleDial returns the circular selector geometry for one schedule
// row: angles for each bound, the SVG paths for the work and break arcs,
// and the handle positions on the circle.
func (sc Controller) GetScheduleDial(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	snap := 15
	if v, ok := c.GetQueryFunc(reflect.Int, "snap").(*int); ok && v != nil {
		snap = *v
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}
	if snap != 1 && snap != 15 {
		return c.RespondError(web.NewRequestError(errors.New("snap must be 1 or 15"), http.StatusBadRequest))
	}

	detail, err := sc.schedule.GetDetailById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	bounds := make([]int, 0, 4)
	for _, v := range []string{detail.WorkStart, detail.BreakStart, detail.BreakEnd, detail.WorkEnd} {
		clock, err := timesheet.ParseClock(v)
		if err != nil {
			return c.RespondError(web.NewRequestError(err, http.StatusInternalServerError))
		}
		bounds = append(bounds, clock.Minutes())
	}

	workArc := dial.Arc{Start: bounds[0], End: bounds[3]}
	breakArc := dial.Arc{Start: bounds[1], End: bounds[2]}
	d := dial.New(200, 200, 160, workArc, breakArc, snap)

	handles := map[string]interface{}{}
	for name, minutes := range map[string]int{
		"work_start":  workArc.Start,
		"break_start": breakArc.Start,
		"break_end":   breakArc.End,
		"work_end":    workArc.End,
	} {
		angle := dial.MinutesToAngle(minutes)
		x, y := d.Point(angle)
		handles[name] = map[string]interface{}{
			"angle": angle,
			"x":     x,
			"y":     y,
			"time":  dial.FormatMinutes(minutes),
		}
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"center_x":       d.CenterX,
			"center_y":       d.CenterY,
			"radius":         d.Radius,
			"snap_minutes":   snap,
			"work_arc_path":  d.ArcPath(workArc),
			"break_arc_path": d.ArcPath(breakArc),
			"handles":        handles,
			"work_duration":  workArc.Duration(),
			"break_duration": breakArc.Duration(),
		},
	}, http.StatusOK)
}

func (sc Controller) CreateSchedule(c *web.Context) error {
	var request schedule.CreateRequest
	if err := c.BindFunc(&request, "UserID", "DayOfWeek", "WorkStart", "BreakStart", "BreakEnd", "WorkEnd", "HourlyRate"); err != nil {
		return c.RespondError(err)
	}

	response, err := sc.schedule.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    response,
	}, http.StatusCreated)
}

func (sc Controller) UpdateScheduleColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request schedule.UpdateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	if err := sc.schedule.UpdateColumns(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    "ok!",
	}, http.StatusOK)
}

func (sc Controller) DeleteSchedule(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := sc.schedule.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    "ok!",
	}, http.StatusOK)
}
