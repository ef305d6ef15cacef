package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"medicenter-service/internal/app/config"
	"medicenter-service/internal/app/delivery/http/controllers"
	"medicenter-service/internal/app/delivery/http/middlewares"
	"medicenter-service/internal/pkg/constvars"
	"medicenter-service/internal/pkg/dto/requests"
	"medicenter-service/internal/pkg/dto/responses"
	"medicenter-service/internal/pkg/hospitaldto"
	"medicenter-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Restore(ctx context.Context, sessionID string) (*responses.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Session), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.Login, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Login), args.Error(1)
}

func (m *MockAuthUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.Register, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Register), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionID string) (*responses.Logout, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Logout), args.Error(1)
}

func newAuthTestRouter(mockAuthUsecase *MockAuthUsecase) (*chi.Mux, *config.InternalConfig) {
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = "router-test-secret"
	internalConfig.JWT.ExpTimeInHour = 1

	authController := controllers.NewAuthController(logger, mockAuthUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	attachAuthRoutes(router, middlewareInstance, authController)
	return router, internalConfig
}

func TestAuthRouter_LoginEndpoint(t *testing.T) {
	mockAuthUsecase := new(MockAuthUsecase)
	router, _ := newAuthTestRouter(mockAuthUsecase)

	mockAuthUsecase.On("Login", mock.Anything, mock.AnythingOfType("*requests.LoginUser")).Return(&responses.Login{
		Token:      "portal-jwt",
		User:       &hospitaldto.User{ID: 3, Username: "jdoe"},
		RedirectTo: constvars.RedirectDashboard,
	}, nil)

	requestBody := requests.LoginUser{Username: "jdoe", Password: "Sup3rSecret!"}
	jsonBody, _ := json.Marshal(requestBody)

	req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), constvars.LoginSuccess)
	assert.Contains(t, recorder.Body.String(), constvars.RedirectDashboard)
	mockAuthUsecase.AssertCalled(t, "Login", mock.Anything, mock.AnythingOfType("*requests.LoginUser"))
}

func TestAuthRouter_SessionEndpointWithoutToken(t *testing.T) {
	mockAuthUsecase := new(MockAuthUsecase)
	router, _ := newAuthTestRouter(mockAuthUsecase)

	mockAuthUsecase.On("Restore", mock.Anything, "").Return(&responses.Session{Authenticated: false}, nil)

	req := httptest.NewRequest("GET", "/session", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), constvars.SessionAnonymous)
	mockAuthUsecase.AssertCalled(t, "Restore", mock.Anything, "")
}

func TestAuthRouter_SessionEndpointWithToken(t *testing.T) {
	mockAuthUsecase := new(MockAuthUsecase)
	router, internalConfig := newAuthTestRouter(mockAuthUsecase)

	token, err := utils.GenerateJWT("sess-7", internalConfig.JWT.Secret, time.Hour)
	assert.NoError(t, err)

	mockAuthUsecase.On("Restore", mock.Anything, "sess-7").Return(&responses.Session{
		Authenticated: true,
		User:          &hospitaldto.User{ID: 7, Username: "jdoe"},
	}, nil)

	req := httptest.NewRequest("GET", "/session", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), constvars.SessionRestoredSuccess)
	mockAuthUsecase.AssertCalled(t, "Restore", mock.Anything, "sess-7")
}

func TestAuthRouter_LogoutWithoutSession(t *testing.T) {
	mockAuthUsecase := new(MockAuthUsecase)
	router, _ := newAuthTestRouter(mockAuthUsecase)

	mockAuthUsecase.On("Logout", mock.Anything, "").Return(&responses.Logout{
		RedirectTo: constvars.RedirectHome,
	}, nil)

	req := httptest.NewRequest("POST", "/logout", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), constvars.RedirectHome)
}

func TestAuthRouter_LoginRejectsMalformedBody(t *testing.T) {
	mockAuthUsecase := new(MockAuthUsecase)
	router, _ := newAuthTestRouter(mockAuthUsecase)

	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString("{not-json"))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	mockAuthUsecase.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}
