package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler is the signature every application handler implements. Errors
// returned here are converted into the JSON error envelope, they never
// escape the request.
type Handler func(c *Context) error

// Middleware wraps a Handler with some before/after behaviour.
type Middleware func(Handler) Handler

// App is the web application shell around gin. Routes registered through
// the wrapper methods get the Context/Handler treatment; the embedded
// engine stays reachable for plain gin handlers.
type App struct {
	*gin.Engine
}

func NewApp() *App {
	return &App{gin.Default()}
}

func (a *App) handle(method, path string, handler Handler, middlewares ...Middleware) {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	a.Engine.Handle(method, path, func(ctx *gin.Context) {
		c := NewContext(ctx)
		if err := handler(c); err != nil {
			_ = c.RespondError(err)
		}
	})
}

func (a *App) Get(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodGet, path, handler, middlewares...)
}

func (a *App) Post(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodPost, path, handler, middlewares...)
}

func (a *App) Put(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodPut, path, handler, middlewares...)
}

func (a *App) Patch(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodPatch, path, handler, middlewares...)
}

func (a *App) Delete(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodDelete, path, handler, middlewares...)
}
