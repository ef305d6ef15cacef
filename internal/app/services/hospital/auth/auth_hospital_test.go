package hospital_auth

import (
	"context"
	"errors"
	"medicenter-service/internal/app/services/shared/ratelimiter"
	"medicenter-service/internal/pkg/constvars"
	"medicenter-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestClient(serverURL string) *authHospitalClient {
	return &authHospitalClient{
		BaseUrl: serverURL + constvars.ResourceAuth,
		Log:     zap.NewNop(),
		Limiter: ratelimiter.NewUpstreamLimiter(100, 100),
	}
}

func TestLogin_DecodesTokenPair(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access":"a-token","refresh":"r-token","user":{"id":3,"username":"jdoe"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Login(context.Background(), "jdoe", "secret")

	assert.NoError(t, err)
	assert.Equal(t, "a-token", result.Access)
	assert.Equal(t, "r-token", result.Refresh)
	assert.Equal(t, "jdoe", result.User.Username)
}

func TestLogin_UpstreamRejectionCarriesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Login(context.Background(), "jdoe", "wrong")

	assert.Error(t, err)
	var customErr *exceptions.CustomError
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, http.StatusUnauthorized, customErr.StatusCode)
	assert.Equal(t, "Invalid credentials", customErr.ClientMessage)
}

func TestGetDashboard_WrappedUserPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/dashboard", r.URL.Path)
		assert.Equal(t, "Bearer a-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"user":{"id":3,"username":"jdoe","profile":{"role":"DOCTOR"}}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	user, err := client.GetDashboard(context.Background(), "a-token")

	assert.NoError(t, err)
	assert.Equal(t, "jdoe", user.Username)
	assert.Equal(t, "DOCTOR", user.Role())
}

func TestGetDashboard_BareUserPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":3,"username":"jdoe","role":"NURSE"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	user, err := client.GetDashboard(context.Background(), "a-token")

	assert.NoError(t, err)
	assert.Equal(t, "jdoe", user.Username)
	assert.Equal(t, "NURSE", user.Role())
}

func TestLogout_SendsRefreshTokenWithBearer(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/logout", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.Logout(context.Background(), "a-token", "r-token")

	assert.NoError(t, err)
	assert.Equal(t, "Bearer a-token", gotAuth)
}
