package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseWith(t *testing.T, status int, body string) *resty.Response {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	resp, err := resty.New().R().SetContext(context.Background()).Get(srv.URL)
	require.NoError(t, err)
	return resp
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := mapHTTPError(responseWith(t, tt.status, `{"message":"boom"}`))
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "boom")
		})
	}
}

func TestMapHTTPError_Success(t *testing.T) {
	assert.NoError(t, mapHTTPError(responseWith(t, http.StatusOK, `{}`)))
	assert.NoError(t, mapHTTPError(responseWith(t, http.StatusCreated, `{}`)))
}

func TestMapHTTPError_PlainBody(t *testing.T) {
	err := mapHTTPError(responseWith(t, http.StatusNotFound, "  nothing here \n"))
	assert.EqualError(t, err, "not found: nothing here")
}

func TestTransportError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := transportError("login", cause)

	assert.ErrorIs(t, err, ErrServerUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "login request")
}
