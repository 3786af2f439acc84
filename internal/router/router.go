package router

import (
	"github.com/redis/go-redis/v9"

	"github.com/Furoshaa/HowMuch/foundation/web"
	"github.com/Furoshaa/HowMuch/internal/auth"
	"github.com/Furoshaa/HowMuch/internal/middleware"
	"github.com/Furoshaa/HowMuch/internal/pkg/repository/postgresql"
	"github.com/Furoshaa/HowMuch/internal/repository/postgres/exception"
	"github.com/Furoshaa/HowMuch/internal/repository/postgres/schedule"
	"github.com/Furoshaa/HowMuch/internal/repository/postgres/session"
	"github.com/Furoshaa/HowMuch/internal/repository/postgres/user"

	exception_controller "github.com/Furoshaa/HowMuch/internal/controller/http/v1/exception"
	schedule_controller "github.com/Furoshaa/HowMuch/internal/controller/http/v1/schedule"
	session_controller "github.com/Furoshaa/HowMuch/internal/controller/http/v1/session"
	user_controller "github.com/Furoshaa/HowMuch/internal/controller/http/v1/user"
)

type Router struct {
	*web.App
	postgresDB *postgresql.Database
	redisDB    *redis.Client
	port       string
	auth       *auth.Auth
	baseURL    string
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	redisDB *redis.Client,
	port string,
	auth *auth.Auth,
	baseURL string,
) *Router {
	return &Router{
		app,
		postgresDB,
		redisDB,
		port,
		auth,
		baseURL,
	}
}

func (r Router) Init() error {

	r.HandleMethodNotAllowed = true
	r.Use(middleware.CorsMiddleware())

	// - postgresql
	userPostgres := user.NewRepository(r.postgresDB)
	schedulePostgres := schedule.NewRepository(r.postgresDB)
	exceptionPostgres := exception.NewRepository(r.postgresDB)
	sessionPostgres := session.NewRepository(r.postgresDB)

	// controller
	userController := user_controller.NewController(userPostgres, schedulePostgres, exceptionPostgres, sessionPostgres, r.auth, r.baseURL)
	scheduleController := schedule_controller.NewController(schedulePostgres)
	exceptionController := exception_controller.NewController(exceptionPostgres)
	sessionController := session_controller.NewController(sessionPostgres, userPostgres)

	// #user
	r.Post("/api/users", userController.CreateUser)
	r.Post("/api/users/login", userController.SignIn)
	r.Post("/api/users/refresh-token", userController.RefreshToken)
	r.Post("/api/users/logout", userController.Logout, middleware.Authenticate(r.auth))
	r.Get("/api/users", userController.GetUserList)
	r.Get("/api/users/username/:username", userController.GetUserByUsername)
	r.Get("/api/users/:id", userController.GetUserDetailById)
	r.Get("/api/users/:id/summary", userController.GetDaySummary, middleware.Authenticate(r.auth))
	r.Get("/api/users/:id/earnings/live", userController.GetLiveEarnings, middleware.Authenticate(r.auth))
	r.Get("/api/users/:id/qrcode", userController.GetQrCode, middleware.Authenticate(r.auth))
	r.Get("/api/users/:id/report", sessionController.MonthlyReport, middleware.Authenticate(r.auth))
	r.Patch("/api/users/:id", userController.UpdateUserColumns)
	r.Delete("/api/users/:id", userController.DeleteUser)

	// #schedule
	r.Get("/api/schedules", scheduleController.GetScheduleList)
	r.Get("/api/schedules/user/:user_id", scheduleController.GetSchedulesByUser)
	r.Get("/api/schedules/:id", scheduleController.GetScheduleDetailById)
	r.Get("/api/schedules/:id/dial", scheduleController.GetScheduleDial)
	r.Post("/api/schedules", scheduleController.CreateSchedule)
	r.Patch("/api/schedules/:id", scheduleController.UpdateScheduleColumns)
	r.Delete("/api/schedules/:id", scheduleController.DeleteSchedule)

	// #exception
	r.Get("/api/exceptions", exceptionController.GetExceptionList)
	r.Get("/api/exceptions/user/:user_id", exceptionController.GetExceptionsByUser)
	r.Get("/api/exceptions/:id", exceptionController.GetExceptionDetailById)
	r.Post("/api/exceptions", exceptionController.CreateException)
	r.Patch("/api/exceptions/:id", exceptionController.UpdateExceptionColumns)
	r.Delete("/api/exceptions/:id", exceptionController.DeleteException)

	// #session
	r.Get("/api/sessions", sessionController.GetSessionList)
	r.Get("/api/sessions/user/:user_id", sessionController.GetSessionsByUser)
	r.Get("/api/sessions/user/:user_id/export", sessionController.ExportSessions, middleware.Authenticate(r.auth))
	r.Get("/api/sessions/:id", sessionController.GetSessionDetailById)
	r.Post("/api/sessions", sessionController.CreateSession)
	r.Patch("/api/sessions/:id", sessionController.UpdateSessionColumns)
	r.Delete("/api/sessions/:id", sessionController.DeleteSession)

	return r.Run(r.port)
}
