package schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Furoshaa/HowMuch/foundation/web"
	"github.com/Furoshaa/HowMuch/internal/repository/postgres/schedule"
)

type stubSchedule struct {
	rows []schedule.GetListResponse
	err  error
}

func (s stubSchedule) GetList(ctx context.Context, filter schedule.Filter) ([]schedule.GetListResponse, int, error) {
	return s.rows, len(s.rows), s.err
}

func (s stubSchedule) GetDetailById(ctx context.Context, id int) (schedule.GetDetailByIdResponse, error) {
	return schedule.GetDetailByIdResponse{}, s.err
}

func (s stubSchedule) GetByUserID(ctx context.Context, userID int) ([]schedule.GetListResponse, error) {
	return s.rows, s.err
}

func (s stubSchedule) Create(ctx context.Context, request schedule.CreateRequest) (schedule.GetDetailByIdResponse, error) {
	return schedule.GetDetailByIdResponse{}, s.err
}

func (s stubSchedule) UpdateColumns(ctx context.Context, request schedule.UpdateRequest) error {
	return s.err
}

func (s stubSchedule) Delete(ctx context.Context, id int) error {
	return s.err
}

func testContext(t *testing.T, target string, params gin.Params) (*web.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	gc, _ := gin.CreateTestContext(w)
	gc.Request = httptest.NewRequest(http.MethodGet, target, nil)
	gc.Params = params

	return web.NewContext(gc), w
}

func TestGetSchedulesByUserEmpty(t *testing.T) {
	// repositories return a zero-length slice, never nil, so an unknown
	// user serializes as an empty array rather than null or a 404
	controller := NewController(stubSchedule{rows: make([]schedule.GetListResponse, 0)})

	c, w := testContext(t, "/api/schedules/user/9999", gin.Params{{Key: "user_id", Value: "9999"}})
	require.NoError(t, controller.GetSchedulesByUser(c))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())
}

func TestGetSchedulesByUser(t *testing.T) {
	row := schedule.GetListResponse{
		ID:            1,
		UserID:        7,
		DayOfWeek:     "monday",
		WorkStart:     "09:00",
		BreakStart:    "12:00",
		BreakEnd:      "13:00",
		WorkEnd:       "17:00",
		HourlyRate:    20,
		NetHours:      7,
		DailyEarnings: 140,
	}
	controller := NewController(stubSchedule{rows: []schedule.GetListResponse{row}})

	c, w := testContext(t, "/api/schedules/user/7", gin.Params{{Key: "user_id", Value: "7"}})
	require.NoError(t, controller.GetSchedulesByUser(c))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"success": true,
		"data": [{
			"id": 1,
			"user_id": 7,
			"day_of_week": "monday",
			"work_start": "09:00",
			"break_start": "12:00",
			"break_end": "13:00",
			"work_end": "17:00",
			"hourly_rate": 20,
			"net_hours": 7,
			"daily_earnings": 140
		}]
	}`, w.Body.String())
}

func TestGetSchedulesByUserBadParam(t *testing.T) {
	controller := NewController(stubSchedule{})

	c, w := testContext(t, "/api/schedules/user/abc", gin.Params{{Key: "user_id", Value: "abc"}})
	require.NoError(t, controller.GetSchedulesByUser(c))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
