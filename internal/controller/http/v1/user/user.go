package user

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Furoshaa/HowMuch/foundation/web"
	"github.com/Furoshaa/HowMuch/internal/auth"
	"github.com/Furoshaa/HowMuch/internal/repository/postgres/user"
	"github.com/Furoshaa/HowMuch/internal/service"
	"github.com/Furoshaa/HowMuch/internal/service/timesheet"
)

type Controller struct {
	user      User
	schedule  Schedule
	exception Exception
	session   Session
	auth      *auth.Auth
	baseURL   string
}

func NewController(user User, schedule Schedule, exception Exception, session Session, a *auth.Auth, baseURL string) *Controller {
	return &Controller{user, schedule, exception, session, a, baseURL}
}

func (uc Controller) GetUserList(c *web.Context) error {
	var filter user.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.user.GetList(c.Ctx, filter)
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

func (uc Controller) GetUserDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.user.GetDetailById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    response,
	}, http.StatusOK)
}

func (uc Controller) GetUserByUsername(c *web.Context) error {
	username := c.Param("username")
	if username == "" {
		return c.RespondError(web.NewRequestError(errors.New("username parameter is required"), http.StatusBadRequest))
	}

	response, err := uc.user.GetByUsername(c.Ctx, username)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    response,
	}, http.StatusOK)
}

func (uc Controller) CreateUser(c *web.Context) error {
	var request user.CreateRequest
	if err := c.BindFunc(&request, "Username", "Firstname", "Lastname", "Email", "Password"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.user.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    response,
	}, http.StatusCreated)
}

func (uc Controller) SignIn(c *web.Context) error {
	var request user.SignInRequest
	if err := c.BindFunc(&request, "Email", "Password"); err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.user.GetByEmail(c.Ctx, request.Email)
	if err != nil {
		return c.RespondError(err)
	}

	if detail.Password == nil || bcrypt.CompareHashAndPassword([]byte(*detail.Password), []byte(request.Password)) != nil {
		return c.RespondError(web.NewRequestError(errors.New("incorrect password"), http.StatusUnauthorized))
	}

	access, refresh, err := uc.auth.GenerateTokens(detail.ID)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"id":            detail.ID,
			"username":      detail.Username,
			"firstname":     detail.Firstname,
			"lastname":      detail.Lastname,
			"email":         detail.Email,
			"access_token":  access,
			"refresh_token": refresh,
		},
	}, http.StatusOK)
}

func (uc Controller) RefreshToken(c *web.Context) error {
	var request user.RefreshTokenRequest
	if err := c.BindFunc(&request, "RefreshToken"); err != nil {
		return c.RespondError(err)
	}

	claims, err := uc.auth.ValidateToken(c.Ctx, request.RefreshToken)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
	}
	if claims.Type != auth.TypeRefresh {
		return c.RespondError(web.NewRequestError(errors.New("refresh token required"), http.StatusUnauthorized))
	}

	access, refresh, err := uc.auth.GenerateTokens(claims.UserId)
	if err != nil {
		return c.RespondError(err)
	}

	// the old refresh token is single use
	if err := uc.auth.Revoke(c.Ctx, claims); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"access_token":  access,
			"refresh_token": refresh,
		},
	}, http.StatusOK)
}

func (uc Controller) Logout(c *web.Context) error {
	claims, err := auth.GetClaims(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	if err := uc.auth.Revoke(c.Ctx, claims); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    "ok!",
	}, http.StatusOK)
}

// GetDaySummary resolves the effective plan for one date and the money
// accrued so far when that date is today.
func (uc Controller) GetDaySummary(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return c.RespondError(web.NewRequestError(errors.New("date must be YYYY-MM-DD"), http.StatusBadRequest))
		}
		day = parsed
	}

	plan, err := uc.resolvePlan(c, id, day)
	if err != nil {
		return c.RespondError(err)
	}

	response := map[string]interface{}{
		"plan": plan,
	}
	if plan.Working && plan.Date == time.Now().Format("2006-01-02") {
		earned, err := plan.Schedule().EarnedSoFar(time.Now())
		if err == nil {
			response["earned_so_far"] = earned
		}
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    response,
	}, http.StatusOK)
}

// GetLiveEarnings streams the accrual counter once per second as
// server-sent events until the client disconnects.
func (uc Controller) GetLiveEarnings(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	plan, err := uc.resolvePlan(c, id, time.Now())
	if err != nil {
		return c.RespondError(err)
	}
	if !plan.Working {
		return c.RespondError(web.NewRequestError(errors.New("no working plan for today"), http.StatusNotFound))
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	counter := timesheet.NewCounter(plan.Schedule())
	_ = counter.Run(c.Request.Context(), func(tick timesheet.Tick) {
		fmt.Fprintf(c.Writer, "data: {\"amount\": %.2f, \"working\": %t, \"at\": %q}\n\n", tick.Amount, tick.Working, tick.At)
		c.Writer.Flush()
	})

	return nil
}

func (uc Controller) GetQrCode(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if _, err := uc.user.GetDetailById(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	png, err := service.ProfileQRCode(uc.baseURL, id)
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=\"user_%d.png\"", id))
	c.Status(http.StatusOK)
	if _, err := c.Writer.Write(png); err != nil {
		return c.RespondError(err)
	}

	return nil
}

func (uc Controller) UpdateUserColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request user.UpdateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	if err := uc.user.UpdateColumns(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    "ok!",
	}, http.StatusOK)
}

func (uc Controller) DeleteUser(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.user.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    "ok!",
	}, http.StatusOK)
}

func (uc Controller) resolvePlan(c *web.Context, userID int, day time.Time) (timesheet.DayPlan, error) {
	sessions, err := uc.session.Plans(c.Ctx, userID)
	if err != nil {
		return timesheet.DayPlan{}, err
	}
	exceptions, err := uc.exception.Plans(c.Ctx, userID)
	if err != nil {
		return timesheet.DayPlan{}, err
	}
	schedules, err := uc.schedule.Plans(c.Ctx, userID)
	if err != nil {
		return timesheet.DayPlan{}, err
	}

	return timesheet.ResolveDay(day, sessions, exceptions, schedules), nil
}
