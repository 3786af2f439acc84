package web

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, method, target, body string) (*Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	gc, _ := gin.CreateTestContext(w)

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	gc.Request = req

	return NewContext(gc), w
}

func TestBindFuncRequiredFields(t *testing.T) {
	type payload struct {
		Name  *string `json:"name"`
		Email string  `json:"email"`
	}

	c, _ := testContext(t, http.MethodPost, "/", `{"name":"ann","email":"a@b.c"}`)
	var p payload
	require.NoError(t, c.BindFunc(&p, "Name", "Email"))
	assert.Equal(t, "ann", *p.Name)

	c, _ = testContext(t, http.MethodPost, "/", `{"email":""}`)
	p = payload{}
	err := c.BindFunc(&p, "Name", "Email")
	require.Error(t, err)

	re, ok := IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, re.Status)
	assert.Contains(t, re.Err.Error(), "Name")
	assert.Contains(t, re.Err.Error(), "Email")
}

func TestBindFuncBadJSON(t *testing.T) {
	var p struct{}
	c, _ := testContext(t, http.MethodPost, "/", `{not json`)

	err := c.BindFunc(&p)
	require.Error(t, err)

	re, ok := IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, re.Status)
}

func TestGetQueryFunc(t *testing.T) {
	c, _ := testContext(t, http.MethodGet, "/?limit=10&search=ann", "")

	limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int)
	require.True(t, ok)
	require.NotNil(t, limit)
	assert.Equal(t, 10, *limit)

	search, ok := c.GetQueryFunc(reflect.String, "search").(*string)
	require.True(t, ok)
	assert.Equal(t, "ann", *search)

	missing, ok := c.GetQueryFunc(reflect.Int, "page").(*int)
	require.True(t, ok)
	assert.Nil(t, missing)
	assert.NoError(t, c.ValidQuery())

	c, _ = testContext(t, http.MethodGet, "/?limit=ten", "")
	c.GetQueryFunc(reflect.Int, "limit")
	assert.Error(t, c.ValidQuery())
}

func TestRespondErrorEnvelope(t *testing.T) {
	c, w := testContext(t, http.MethodGet, "/", "")

	require.NoError(t, c.RespondError(NewRequestError(errors.New("no such user"), http.StatusNotFound)))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success": false, "message": "no such user"}`, w.Body.String())

	c, w = testContext(t, http.MethodGet, "/", "")
	require.NoError(t, c.RespondError(errors.New("driver crashed")))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success": false, "message": "server error"}`, w.Body.String())
}
