package exception

import (
	"net/http"
	"reflect"

	"github.com/Furoshaa/HowMuch/foundation/web"
	"github.com/Furoshaa/HowMuch/internal/repository/postgres/exception"
)

type Controller struct {
	exception Exception
}

func NewController(exception Exception) *Controller {
	return &Controller{exception}
}

func (ec Controller) GetExceptionList(c *web.Context) error {
	var filter exception.Filter

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

	list, count, err := ec.exception.GetList(c.Ctx, filter)
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

func (ec Controller) GetExceptionDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := ec.exception.GetDetailById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    response,
	}, http.StatusOK)
}

func (ec Controller) GetExceptionsByUser(c *web.Context) error {
	userID := c.GetParam(reflect.Int, "user_id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	list, err := ec.exception.GetByUserID(c.Ctx, userID)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    list,
	}, http.StatusOK)
}

func (ec Controller) CreateException(c *web.Context) error {
	var request exception.CreateRequest
	if err := c.BindFunc(&request, "UserID", "Date", "Reason"); err != nil {
		return c.RespondError(err)
	}

	response, err := ec.exception.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    response,
	}, http.StatusCreated)
}

func (ec Controller) UpdateExceptionColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request exception.UpdateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	if err := ec.exception.UpdateColumns(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    "ok!",
	}, http.StatusOK)
}

func (ec Controller) DeleteException(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := ec.exception.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"data":    "ok!",
	}, http.StatusOK)
}
