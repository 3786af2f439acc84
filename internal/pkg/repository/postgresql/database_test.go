package postgresql

import (
	"database/sql"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Furoshaa/HowMuch/foundation/web"
)

func TestValidateStruct(t *testing.T) {
	type request struct {
		ID    int
		Name  *string
		Email string
	}

	var d Database

	name := "ann"
	require.NoError(t, d.ValidateStruct(&request{ID: 1, Name: &name, Email: "a@b.c"}, "ID", "Name", "Email"))

	err := d.ValidateStruct(&request{}, "ID", "Name", "Email")
	require.Error(t, err)

	re, ok := web.IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, re.Status)
	assert.Contains(t, re.Err.Error(), "ID")
	assert.Contains(t, re.Err.Error(), "Name")
	assert.Contains(t, re.Err.Error(), "Email")

	// fields not named are not checked
	require.NoError(t, d.ValidateStruct(&request{ID: 1}, "ID"))
}

func TestErrStatus(t *testing.T) {
	assert.NoError(t, ErrStatus(nil, "op"))

	err := ErrStatus(sql.ErrNoRows, "selecting row")
	re, ok := web.IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, re.Status)

	err = ErrStatus(errors.New("connection reset"), "selecting row")
	re, ok = web.IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, re.Status)
}
