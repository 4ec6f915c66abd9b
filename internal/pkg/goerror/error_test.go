package goerror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCodeMapping(t *testing.T) {
	tests := map[Code]int{
		CodeInvalidFormat:  http.StatusBadRequest,
		CodeInvalidInput:   http.StatusUnprocessableEntity,
		CodeNotFound:       http.StatusNotFound,
		CodeConflict:       http.StatusConflict,
		CodeUnauthorized:   http.StatusUnauthorized,
		CodeForbidden:      http.StatusForbidden,
		CodeTimeout:        http.StatusRequestTimeout,
		CodeTooManyRequest: http.StatusTooManyRequests,
		CodeInternal:       http.StatusInternalServerError,
	}

	for code, want := range tests {
		err := &Error{code: code}
		assert.Equal(t, want, err.StatusCode(), code.String())
	}
}

func TestNewServer_WrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewServer(cause)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, TypeServer, gerr.Type())
	assert.Equal(t, "Internal server error", gerr.Msg())
	assert.ErrorIs(t, err, cause)
}

func TestNewBusiness(t *testing.T) {
	err := NewBusiness("Post not found", CodeNotFound)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, TypeBusiness, gerr.Type())
	assert.Equal(t, http.StatusNotFound, gerr.StatusCode())
	assert.Equal(t, "Post not found", gerr.Error())
}

func TestNewUnauthorizedAndForbidden(t *testing.T) {
	var gerr *Error

	require.ErrorAs(t, NewUnauthorized("no session"), &gerr)
	assert.Equal(t, http.StatusUnauthorized, gerr.StatusCode())

	require.ErrorAs(t, NewForbidden("admin only"), &gerr)
	assert.Equal(t, http.StatusForbidden, gerr.StatusCode())
}

func TestNewInvalidInput_KeyValues(t *testing.T) {
	err := NewInvalidInput(nil, "email", "must be valid")

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, map[string]string{"email": "must be valid"}, gerr.Fields())
	assert.Equal(t, http.StatusUnprocessableEntity, gerr.StatusCode())
}
