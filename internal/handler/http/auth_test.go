package http

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-recipe-book/internal/utils"
	"github.com/MKhiriev/go-recipe-book/models"
)

func login(t *testing.T, baseURL string) string {
	t.Helper()
	resp, raw := doJSON(t, http.MethodPost, baseURL+"/auth/login", "", models.LoginRequest{Username: "emilys", Password: "emilyspass"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	return decodeBody[models.LoginResponse](t, raw).AccessToken
}

func TestLogin(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name        string
		body        any
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "valid credentials",
			body:       models.LoginRequest{Username: "emilys", Password: "emilyspass"},
			wantStatus: http.StatusOK,
		},
		{
			name:        "wrong password",
			body:        models.LoginRequest{Username: "emilys", Password: "nope"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid credentials",
		},
		{
			name:        "unknown user",
			body:        models.LoginRequest{Username: "ghost", Password: "nope"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid credentials",
		},
		{
			name:       "missing password",
			body:       models.LoginRequest{Username: "emilys"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "not json",
			body:        "plain string",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid JSON was passed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, raw := doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", tt.body)
			require.Equal(t, tt.wantStatus, resp.StatusCode, string(raw))

			if tt.wantStatus == http.StatusOK {
				got := decodeBody[models.LoginResponse](t, raw)
				assert.Equal(t, "Emily", got.FirstName)
				assert.Equal(t, "emily.johnson@x.dummyjson.com", got.Email)
				assert.NotEmpty(t, got.AccessToken)
				assert.NotEmpty(t, got.RefreshToken)
				return
			}

			body := decodeBody[utils.ErrorBody](t, raw)
			assert.NotEmpty(t, body.Message)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, body.Message)
			}
		})
	}
}

func TestMe(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv.URL)

	resp, raw := doJSON(t, http.MethodGet, srv.URL+"/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Equal(t, "emilys", decodeBody[models.User](t, raw).Username)

	tests := []struct {
		name        string
		header      string
		wantMessage string
	}{
		{name: "no header", wantMessage: "Access Token is required"},
		{name: "not bearer", header: "Basic abc", wantMessage: "Invalid/Expired Token!"},
		{name: "garbage token", header: "Bearer garbage", wantMessage: "Invalid/Expired Token!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, srv.URL+"/auth/me", nil)
			require.NoError(t, err)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, tt.wantMessage, decodeBody[utils.ErrorBody](t, raw).Message)
		})
	}
}
