package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-recipe-book/internal/catalog"
	"github.com/MKhiriev/go-recipe-book/internal/config"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/service"
	"github.com/MKhiriev/go-recipe-book/internal/store"
)

// newTestServer runs the full router over the embedded seed catalog.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	catalog.HashCost = bcrypt.MinCost

	seed, err := catalog.Load()
	require.NoError(t, err)

	log := logger.Nop()
	services := service.NewServices(store.NewStorages(seed, log), config.ServerApp{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "test-issuer",
		TokenDuration: time.Hour,
	}, log)

	srv := httptest.NewServer(NewHandler(services, log).Init())
	t.Cleanup(srv.Close)
	return srv
}

// newTestHandler returns a Handler with a nop logger and no services, for
// middleware tests.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decodeBody[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}
