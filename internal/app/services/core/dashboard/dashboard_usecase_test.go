package dashboard

import (
	"context"
	"medicenter-service/internal/app/config"
	"medicenter-service/internal/app/models"
	"medicenter-service/internal/pkg/constvars"
	"medicenter-service/internal/pkg/dto/requests"
	"medicenter-service/internal/pkg/hospitaldto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Keys(ctx context.Context, pattern string) ([]string, error) {
	args := m.Called(ctx, pattern)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

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

type MockAppointmentHospitalClient struct {
	mock.Mock
}

func (m *MockAppointmentHospitalClient) FindAll(ctx context.Context, accessToken string, queryParams *requests.QueryParams) ([]hospitaldto.Appointment, error) {
	args := m.Called(ctx, accessToken, queryParams)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hospitaldto.Appointment), args.Error(1)
}

func (m *MockAppointmentHospitalClient) CreateAppointment(ctx context.Context, accessToken string, request *requests.CreateAppointment) (*hospitaldto.Appointment, error) {
	args := m.Called(ctx, accessToken, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hospitaldto.Appointment), args.Error(1)
}

type MockVitalsHospitalClient struct {
	mock.Mock
}

func (m *MockVitalsHospitalClient) FindVitalRequests(ctx context.Context, accessToken string, queryParams *requests.QueryParams) ([]hospitaldto.VitalRequest, error) {
	args := m.Called(ctx, accessToken, queryParams)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hospitaldto.VitalRequest), args.Error(1)
}

func (m *MockVitalsHospitalClient) CreateVitalRequest(ctx context.Context, accessToken string, request *requests.CreateVitalRequest) (*hospitaldto.VitalRequest, error) {
	args := m.Called(ctx, accessToken, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hospitaldto.VitalRequest), args.Error(1)
}

func (m *MockVitalsHospitalClient) CreateVitals(ctx context.Context, accessToken string, request *requests.CreateVitals) (*hospitaldto.Vitals, error) {
	args := m.Called(ctx, accessToken, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hospitaldto.Vitals), args.Error(1)
}

type MockLabHospitalClient struct {
	mock.Mock
}

func (m *MockLabHospitalClient) FindTestRequests(ctx context.Context, accessToken string, queryParams *requests.QueryParams) ([]hospitaldto.TestRequest, error) {
	args := m.Called(ctx, accessToken, queryParams)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hospitaldto.TestRequest), args.Error(1)
}

func (m *MockLabHospitalClient) CreateTestRequest(ctx context.Context, accessToken string, request *requests.CreateTestRequest) (*hospitaldto.TestRequest, error) {
	args := m.Called(ctx, accessToken, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hospitaldto.TestRequest), args.Error(1)
}

func (m *MockLabHospitalClient) CreateLabResult(ctx context.Context, accessToken string, request *requests.CreateLabResult) (*hospitaldto.LabResult, error) {
	args := m.Called(ctx, accessToken, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hospitaldto.LabResult), args.Error(1)
}

type MockStaffHospitalClient struct {
	mock.Mock
}

func (m *MockStaffHospitalClient) FindAll(ctx context.Context, accessToken string) ([]hospitaldto.StaffMember, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hospitaldto.StaffMember), args.Error(1)
}

type MockBlogHospitalClient struct {
	mock.Mock
}

func (m *MockBlogHospitalClient) FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]hospitaldto.BlogPost, error) {
	args := m.Called(ctx, queryParams)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hospitaldto.BlogPost), args.Error(1)
}

func (m *MockBlogHospitalClient) FindLatest(ctx context.Context, count int) ([]hospitaldto.BlogPost, error) {
	args := m.Called(ctx, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hospitaldto.BlogPost), args.Error(1)
}

func (m *MockBlogHospitalClient) FindBySlug(ctx context.Context, slug string) (*hospitaldto.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hospitaldto.BlogPost), args.Error(1)
}

func (m *MockBlogHospitalClient) GetStats(ctx context.Context, accessToken string) (*hospitaldto.BlogStats, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hospitaldto.BlogStats), args.Error(1)
}

func (m *MockBlogHospitalClient) CreateBlogPost(ctx context.Context, accessToken string, request *requests.CreateBlogPost) (*hospitaldto.BlogPost, error) {
	args := m.Called(ctx, accessToken, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hospitaldto.BlogPost), args.Error(1)
}

func (m *MockBlogHospitalClient) UpdateBlogPost(ctx context.Context, accessToken, slug string, request *requests.UpdateBlogPost) (*hospitaldto.BlogPost, error) {
	args := m.Called(ctx, accessToken, slug, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hospitaldto.BlogPost), args.Error(1)
}

func (m *MockBlogHospitalClient) DeleteBlogPost(ctx context.Context, accessToken, slug string) error {
	args := m.Called(ctx, accessToken, slug)
	return args.Error(0)
}

type dashboardMocks struct {
	redis        *MockRedisRepository
	sessions     *MockSessionRepository
	appointments *MockAppointmentHospitalClient
	vitals       *MockVitalsHospitalClient
	labs         *MockLabHospitalClient
	staff        *MockStaffHospitalClient
	blog         *MockBlogHospitalClient
}

func newTestDashboardUsecase() (*dashboardUsecase, *dashboardMocks) {
	mocks := &dashboardMocks{
		redis:        new(MockRedisRepository),
		sessions:     new(MockSessionRepository),
		appointments: new(MockAppointmentHospitalClient),
		vitals:       new(MockVitalsHospitalClient),
		labs:         new(MockLabHospitalClient),
		staff:        new(MockStaffHospitalClient),
		blog:         new(MockBlogHospitalClient),
	}

	internalConfig := &config.InternalConfig{}
	internalConfig.App.DashboardCacheTTLSeconds = 60
	internalConfig.Hospital.MediaHost = "http://media.local"

	uc := &dashboardUsecase{
		RedisRepository:           mocks.redis,
		SessionRepository:         mocks.sessions,
		AppointmentHospitalClient: mocks.appointments,
		VitalsHospitalClient:      mocks.vitals,
		LabHospitalClient:         mocks.labs,
		StaffHospitalClient:       mocks.staff,
		BlogHospitalClient:        mocks.blog,
		Log:                       zap.NewNop(),
		InternalConfig:            internalConfig,
	}
	uc.loaders = map[string]viewLoader{
		constvars.MedicenterRolePatient: uc.loadPatientView,
		constvars.MedicenterRoleDoctor:  uc.loadDoctorView,
		constvars.MedicenterRoleNurse:   uc.loadNurseView,
		constvars.MedicenterRoleLab:     uc.loadLabView,
		constvars.MedicenterRoleAdmin:   uc.loadAdminView,
	}
	return uc, mocks
}

func sessionWithRole(role string) *models.Session {
	return &models.Session{
		SessionID:    "sess-" + role,
		AccessToken:  "access",
		RefreshToken: "refresh",
		User: &hospitaldto.User{
			ID:       1,
			Username: "someone",
			Profile:  &hospitaldto.Profile{Role: role},
		},
	}
}

func expectCacheMiss(mocks *dashboardMocks, sessionID string) {
	mocks.redis.On("Get", mock.Anything, constvars.DashboardCachePrefix+sessionID).Return("", nil)
	mocks.redis.On("Set", mock.Anything, constvars.DashboardCachePrefix+sessionID, mock.Anything, mock.Anything).Return(nil)
}

func TestBuildDashboard_PatientView(t *testing.T) {
	uc, mocks := newTestDashboardUsecase()
	session := sessionWithRole(constvars.MedicenterRolePatient)

	expectCacheMiss(mocks, session.SessionID)
	mocks.appointments.On("FindAll", mock.Anything, "access", mock.Anything).
		Return([]hospitaldto.Appointment{{ID: 1}}, nil)

	dashboard, err := uc.BuildDashboard(context.Background(), session)

	assert.NoError(t, err)
	assert.Equal(t, constvars.DashboardViewPatient, dashboard.View)
	assert.NotNil(t, dashboard.Patient)
	assert.Len(t, dashboard.Patient.Appointments, 1)
	assert.Nil(t, dashboard.Admin)
}

func TestBuildDashboard_DoctorView(t *testing.T) {
	uc, mocks := newTestDashboardUsecase()
	session := sessionWithRole(constvars.MedicenterRoleDoctor)

	expectCacheMiss(mocks, session.SessionID)
	mocks.appointments.On("FindAll", mock.Anything, "access", mock.Anything).
		Return([]hospitaldto.Appointment{}, nil)

	dashboard, err := uc.BuildDashboard(context.Background(), session)

	assert.NoError(t, err)
	assert.Equal(t, constvars.DashboardViewDoctor, dashboard.View)
	assert.NotNil(t, dashboard.Doctor)
}

func TestBuildDashboard_NurseView(t *testing.T) {
	uc, mocks := newTestDashboardUsecase()
	session := sessionWithRole(constvars.MedicenterRoleNurse)

	expectCacheMiss(mocks, session.SessionID)
	mocks.vitals.On("FindVitalRequests", mock.Anything, "access", mock.Anything).
		Return([]hospitaldto.VitalRequest{{ID: 4}}, nil)

	dashboard, err := uc.BuildDashboard(context.Background(), session)

	assert.NoError(t, err)
	assert.Equal(t, constvars.DashboardViewNurse, dashboard.View)
	assert.Len(t, dashboard.Nurse.VitalRequests, 1)
}

func TestBuildDashboard_LabView(t *testing.T) {
	uc, mocks := newTestDashboardUsecase()
	session := sessionWithRole(constvars.MedicenterRoleLab)

	expectCacheMiss(mocks, session.SessionID)
	mocks.labs.On("FindTestRequests", mock.Anything, "access", mock.Anything).
		Return([]hospitaldto.TestRequest{{ID: 2}}, nil)

	dashboard, err := uc.BuildDashboard(context.Background(), session)

	assert.NoError(t, err)
	assert.Equal(t, constvars.DashboardViewLab, dashboard.View)
	assert.Len(t, dashboard.Lab.TestRequests, 1)
}

func TestBuildDashboard_AdminViewFansOut(t *testing.T) {
	uc, mocks := newTestDashboardUsecase()
	session := sessionWithRole(constvars.MedicenterRoleAdmin)

	expectCacheMiss(mocks, session.SessionID)
	mocks.staff.On("FindAll", mock.Anything, "access").
		Return([]hospitaldto.StaffMember{{ID: 11}}, nil)
	mocks.appointments.On("FindAll", mock.Anything, "access", mock.Anything).
		Return([]hospitaldto.Appointment{{ID: 1}}, nil)
	mocks.blog.On("GetStats", mock.Anything, "access").
		Return(&hospitaldto.BlogStats{TotalPosts: 5}, nil)
	mocks.blog.On("FindAll", mock.Anything, mock.Anything).
		Return([]hospitaldto.BlogPost{{Slug: "first-post"}}, nil)

	dashboard, err := uc.BuildDashboard(context.Background(), session)

	assert.NoError(t, err)
	assert.Equal(t, constvars.DashboardViewAdmin, dashboard.View)
	assert.Len(t, dashboard.Admin.Staff, 1)
	assert.Len(t, dashboard.Admin.Appointments, 1)
	assert.Equal(t, 5, dashboard.Admin.BlogStats.TotalPosts)
	assert.Len(t, dashboard.Admin.BlogPosts, 1)
}

func TestBuildDashboard_UnknownRoleIsNotAnError(t *testing.T) {
	uc, mocks := newTestDashboardUsecase()
	session := sessionWithRole("JANITOR")

	expectCacheMiss(mocks, session.SessionID)

	dashboard, err := uc.BuildDashboard(context.Background(), session)

	assert.NoError(t, err)
	assert.Equal(t, constvars.DashboardViewUnknown, dashboard.View)
	assert.Equal(t, "JANITOR", dashboard.UnknownRole)
	assert.Nil(t, dashboard.Patient)
	mocks.appointments.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything, mock.Anything)
}

func TestBuildDashboard_ServesCachedView(t *testing.T) {
	uc, mocks := newTestDashboardUsecase()
	session := sessionWithRole(constvars.MedicenterRolePatient)

	cached := `{"view":"patient","user":{"id":1},"patient":{"appointments":[]}}`
	mocks.redis.On("Get", mock.Anything, constvars.DashboardCachePrefix+session.SessionID).Return(cached, nil)

	dashboard, err := uc.BuildDashboard(context.Background(), session)

	assert.NoError(t, err)
	assert.Equal(t, constvars.DashboardViewPatient, dashboard.View)
	mocks.appointments.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything, mock.Anything)
}

func TestRefreshCaches_SweepsLiveSessions(t *testing.T) {
	uc, mocks := newTestDashboardUsecase()
	session := sessionWithRole(constvars.MedicenterRolePatient)
	session.SessionID = "sess-live"

	mocks.redis.On("Keys", mock.Anything, constvars.SessionKeyPrefix+"*").
		Return([]string{constvars.SessionKeyPrefix + "sess-live"}, nil)
	mocks.sessions.On("GetSession", mock.Anything, "sess-live").Return(session, nil)
	mocks.appointments.On("FindAll", mock.Anything, "access", mock.Anything).
		Return([]hospitaldto.Appointment{}, nil)
	mocks.redis.On("Set", mock.Anything, constvars.DashboardCachePrefix+"sess-live", mock.Anything, mock.Anything).
		Return(nil)

	err := uc.RefreshCaches(context.Background())

	assert.NoError(t, err)
	mocks.redis.AssertCalled(t, "Set", mock.Anything, constvars.DashboardCachePrefix+"sess-live", mock.Anything, mock.Anything)
}
