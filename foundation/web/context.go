package web

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context wraps gin's context with a request-scoped context.Context that
// middleware can decorate (auth claims live there) and with the binding and
// response helpers the controllers use.
type Context struct {
	*gin.Context
	Ctx context.Context

	paramErr error
	queryErr error
}

func NewContext(ctx *gin.Context) *Context {
	return &Context{Context: ctx, Ctx: ctx.Request.Context()}
}

// BindFunc decodes the JSON body into v and checks that every field named in
// requiredFields is present: pointer fields must be non-nil, strings
// non-empty. Field names are the Go struct field names.
func (c *Context) BindFunc(v interface{}, requiredFields ...string) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return NewRequestError(errors.Wrap(err, "parsing request body"), http.StatusBadRequest)
	}

	rv := reflect.ValueOf(v).Elem()
	var missing []string
	for _, name := range requiredFields {
		f := rv.FieldByName(name)
		if !f.IsValid() {
			continue
		}
		switch f.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
			if f.IsNil() {
				missing = append(missing, name)
			}
		case reflect.String:
			if f.String() == "" {
				missing = append(missing, name)
			}
		}
	}
	if len(missing) > 0 {
		return NewRequestError(
			fmt.Errorf("required field(s) missing: %s", strings.Join(missing, ", ")),
			http.StatusBadRequest,
		)
	}

	return nil
}

// GetParam reads a path parameter converted to the given kind. Conversion
// failures are collected and reported by ValidParam so call sites can keep
// the assignment one-liner shape.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	value := c.Param(name)

	switch kind {
	case reflect.Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			c.paramErr = NewRequestError(errors.Wrapf(err, "parsing param %q", name), http.StatusBadRequest)
			return 0
		}
		return n
	case reflect.String:
		return value
	default:
		c.paramErr = NewRequestError(fmt.Errorf("unsupported param kind %s", kind), http.StatusBadRequest)
		return nil
	}
}

func (c *Context) ValidParam() error {
	return c.paramErr
}

// GetQueryFunc reads an optional query parameter. Absent parameters come
// back as a typed nil so filters can use pointer fields directly.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	value, ok := c.GetQuery(name)

	switch kind {
	case reflect.Int:
		if !ok {
			return (*int)(nil)
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			c.queryErr = NewRequestError(errors.Wrapf(err, "parsing query %q", name), http.StatusBadRequest)
			return (*int)(nil)
		}
		return &n
	case reflect.String:
		if !ok {
			return (*string)(nil)
		}
		return &value
	case reflect.Bool:
		if !ok {
			return (*bool)(nil)
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			c.queryErr = NewRequestError(errors.Wrapf(err, "parsing query %q", name), http.StatusBadRequest)
			return (*bool)(nil)
		}
		return &b
	default:
		return nil
	}
}

func (c *Context) ValidQuery() error {
	return c.queryErr
}

// Respond writes data as JSON with the given status.
func (c *Context) Respond(data interface{}, status int) error {
	c.JSON(status, data)
	return nil
}

// RespondError writes the {success:false, message} envelope. Errors that are
// not request errors are reported as a plain 500 without leaking internals.
func (c *Context) RespondError(err error) error {
	if re, ok := IsRequestError(err); ok {
		c.JSON(re.Status, gin.H{
			"success": false,
			"message": re.Err.Error(),
		})
		return nil
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "server error",
	})
	return nil
}
