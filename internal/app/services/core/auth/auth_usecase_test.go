package auth

import (
	"context"
	"errors"
	"medicenter-service/internal/app/config"
	"medicenter-service/internal/app/models"
	"medicenter-service/internal/pkg/constvars"
	"medicenter-service/internal/pkg/dto/requests"
	"medicenter-service/internal/pkg/hospitaldto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) CreateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepository) UpdateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockAuthHospitalClient struct {
	mock.Mock
}

func (m *MockAuthHospitalClient) Login(ctx context.Context, username, password string) (*hospitaldto.LoginResult, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hospitaldto.LoginResult), args.Error(1)
}

func (m *MockAuthHospitalClient) Register(ctx context.Context, request *requests.RegisterUser) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockAuthHospitalClient) Logout(ctx context.Context, accessToken, refreshToken string) error {
	args := m.Called(ctx, accessToken, refreshToken)
	return args.Error(0)
}

func (m *MockAuthHospitalClient) GetDashboard(ctx context.Context, accessToken string) (*hospitaldto.User, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hospitaldto.User), args.Error(1)
}

func newTestAuthUsecase(sessions *MockSessionRepository, client *MockAuthHospitalClient) *authUsecase {
	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = "test-secret"
	internalConfig.JWT.ExpTimeInHour = 1

	return &authUsecase{
		SessionRepository:  sessions,
		AuthHospitalClient: client,
		Log:                zap.NewNop(),
		InternalConfig:     internalConfig,
	}
}

func TestRestore_EmptySessionIDMakesNoCalls(t *testing.T) {
	sessions := new(MockSessionRepository)
	client := new(MockAuthHospitalClient)
	uc := newTestAuthUsecase(sessions, client)

	session, err := uc.Restore(context.Background(), "")

	assert.NoError(t, err)
	assert.False(t, session.Authenticated)
	assert.Nil(t, session.User)
	sessions.AssertNotCalled(t, "GetSession", mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "GetDashboard", mock.Anything, mock.Anything)
}

func TestRestore_UpstreamRejectionClearsSession(t *testing.T) {
	sessions := new(MockSessionRepository)
	client := new(MockAuthHospitalClient)
	uc := newTestAuthUsecase(sessions, client)

	stored := &models.Session{
		SessionID:    "sess-1",
		AccessToken:  "stale-access",
		RefreshToken: "stale-refresh",
	}
	sessions.On("GetSession", mock.Anything, "sess-1").Return(stored, nil)
	client.On("GetDashboard", mock.Anything, "stale-access").Return(nil, errors.New("401"))
	sessions.On("DeleteSession", mock.Anything, "sess-1").Return(nil)

	session, err := uc.Restore(context.Background(), "sess-1")

	assert.NoError(t, err)
	assert.False(t, session.Authenticated)
	sessions.AssertCalled(t, "DeleteSession", mock.Anything, "sess-1")
}

func TestRestore_LiveSessionRefreshesUser(t *testing.T) {
	sessions := new(MockSessionRepository)
	client := new(MockAuthHospitalClient)
	uc := newTestAuthUsecase(sessions, client)

	stored := &models.Session{
		SessionID:    "sess-2",
		AccessToken:  "access",
		RefreshToken: "refresh",
	}
	user := &hospitaldto.User{ID: 12, Username: "drsmith"}
	sessions.On("GetSession", mock.Anything, "sess-2").Return(stored, nil)
	client.On("GetDashboard", mock.Anything, "access").Return(user, nil)
	sessions.On("UpdateSession", mock.Anything, mock.AnythingOfType("*models.Session")).Return(nil)

	session, err := uc.Restore(context.Background(), "sess-2")

	assert.NoError(t, err)
	assert.True(t, session.Authenticated)
	assert.Equal(t, "drsmith", session.User.Username)
	sessions.AssertCalled(t, "UpdateSession", mock.Anything, mock.AnythingOfType("*models.Session"))
}

func TestLogin_PersistsSessionAndRedirects(t *testing.T) {
	sessions := new(MockSessionRepository)
	client := new(MockAuthHospitalClient)
	uc := newTestAuthUsecase(sessions, client)

	user := &hospitaldto.User{ID: 3, Username: "jdoe"}
	client.On("Login", mock.Anything, "jdoe", "Sup3rSecret!").Return(&hospitaldto.LoginResult{
		Access:  "new-access",
		Refresh: "new-refresh",
		User:    user,
	}, nil)
	sessions.On("CreateSession", mock.Anything, mock.MatchedBy(func(s *models.Session) bool {
		return s.AccessToken == "new-access" && s.RefreshToken == "new-refresh"
	})).Return(nil)

	response, err := uc.Login(context.Background(), &requests.LoginUser{
		Username: "jdoe",
		Password: "Sup3rSecret!",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, constvars.RedirectDashboard, response.RedirectTo)
	assert.Equal(t, "jdoe", response.User.Username)
	sessions.AssertCalled(t, "CreateSession", mock.Anything, mock.Anything)
}

func TestLogin_IncompleteTokenPairRejected(t *testing.T) {
	sessions := new(MockSessionRepository)
	client := new(MockAuthHospitalClient)
	uc := newTestAuthUsecase(sessions, client)

	client.On("Login", mock.Anything, "jdoe", "Sup3rSecret!").Return(&hospitaldto.LoginResult{
		Access: "only-access",
	}, nil)

	_, err := uc.Login(context.Background(), &requests.LoginUser{
		Username: "jdoe",
		Password: "Sup3rSecret!",
	})

	assert.Error(t, err)
	sessions.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
}

func TestLogin_MissingFieldsRejectedLocally(t *testing.T) {
	sessions := new(MockSessionRepository)
	client := new(MockAuthHospitalClient)
	uc := newTestAuthUsecase(sessions, client)

	_, err := uc.Login(context.Background(), &requests.LoginUser{Username: "jdoe"})

	assert.Error(t, err)
	client.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegister_MissingEmailRejectedBeforeUpstream(t *testing.T) {
	sessions := new(MockSessionRepository)
	client := new(MockAuthHospitalClient)
	uc := newTestAuthUsecase(sessions, client)

	_, err := uc.Register(context.Background(), &requests.RegisterUser{
		Username:  "jdoe",
		Fullname:  "Jane Doe",
		Phone:     "08123456789",
		Gender:    "female",
		Role:      "PATIENT",
		Password1: "Sup3rSecret!",
		Password2: "Sup3rSecret!",
	})

	assert.Error(t, err)
	client.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegister_LogsNewAccountIn(t *testing.T) {
	sessions := new(MockSessionRepository)
	client := new(MockAuthHospitalClient)
	uc := newTestAuthUsecase(sessions, client)

	user := &hospitaldto.User{ID: 9, Username: "jdoe"}
	client.On("Register", mock.Anything, mock.AnythingOfType("*requests.RegisterUser")).Return(nil)
	client.On("Login", mock.Anything, "jdoe", "Sup3rSecret!").Return(&hospitaldto.LoginResult{
		Access:  "access",
		Refresh: "refresh",
		User:    user,
	}, nil)
	sessions.On("CreateSession", mock.Anything, mock.AnythingOfType("*models.Session")).Return(nil)

	response, err := uc.Register(context.Background(), &requests.RegisterUser{
		Username:  "jdoe",
		Email:     "jdoe@example.com",
		Fullname:  "Jane Doe",
		Phone:     "08123456789",
		Gender:    "female",
		Role:      "PATIENT",
		Password1: "Sup3rSecret!",
		Password2: "Sup3rSecret!",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, constvars.RedirectDashboard, response.RedirectTo)
}

func TestLogout_IsIdempotent(t *testing.T) {
	sessions := new(MockSessionRepository)
	client := new(MockAuthHospitalClient)
	uc := newTestAuthUsecase(sessions, client)

	sessions.On("GetSession", mock.Anything, "gone").Return(nil, errors.New("session not found"))

	response, err := uc.Logout(context.Background(), "gone")
	assert.NoError(t, err)
	assert.Equal(t, constvars.RedirectHome, response.RedirectTo)

	// A second logout for the same dead session resolves the same way.
	response, err = uc.Logout(context.Background(), "gone")
	assert.NoError(t, err)
	assert.Equal(t, constvars.RedirectHome, response.RedirectTo)

	client.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogout_ClearsSessionEvenWhenUpstreamFails(t *testing.T) {
	sessions := new(MockSessionRepository)
	client := new(MockAuthHospitalClient)
	uc := newTestAuthUsecase(sessions, client)

	stored := &models.Session{
		SessionID:    "sess-9",
		AccessToken:  "access",
		RefreshToken: "refresh",
	}
	sessions.On("GetSession", mock.Anything, "sess-9").Return(stored, nil)
	client.On("Logout", mock.Anything, "access", "refresh").Return(errors.New("upstream down"))
	sessions.On("DeleteSession", mock.Anything, "sess-9").Return(nil)

	response, err := uc.Logout(context.Background(), "sess-9")

	assert.NoError(t, err)
	assert.Equal(t, constvars.RedirectHome, response.RedirectTo)
	sessions.AssertCalled(t, "DeleteSession", mock.Anything, "sess-9")
}
