package ecode

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOfWrapped(t *testing.T) {
	err := fmt.Errorf("update job 7: %w", New(NotFound, "No job: 7"))

	assert.Equal(t, NotFound, CodeOf(err))
	assert.Equal(t, "No job: 7", MessageOf(err))
	assert.True(t, Is(err, NotFound))
	assert.False(t, Is(err, ParamErr))
}

func TestCodeOfPlainError(t *testing.T) {
	assert.Equal(t, ServerErr, CodeOf(errors.New("boom")))
	assert.Equal(t, OK, CodeOf(nil))
	assert.Equal(t, Text(ServerErr), MessageOf(errors.New("boom")))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ServerErr, "query jobs", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "query jobs: connection refused", err.Error())
	assert.NotEmpty(t, err.Stack)
}

func TestToHTTPStatus(t *testing.T) {
	cases := map[int]int{
		OK:                 http.StatusOK,
		NoLogin:            http.StatusUnauthorized,
		AccessDenied:       http.StatusUnauthorized,
		ParamErr:           http.StatusBadRequest,
		Conflict:           http.StatusBadRequest,
		NotFound:           http.StatusNotFound,
		ServiceUnavailable: http.StatusServiceUnavailable,
		ServerErr:          http.StatusInternalServerError,
		-9999:              http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, ToHTTPStatus(code), "code %d", code)
	}
}
