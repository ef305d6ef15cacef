package dashboard

import (
	"context"
	"medicenter-service/internal/app/config"
	"medicenter-service/internal/app/contracts"
	"medicenter-service/internal/app/models"
	"medicenter-service/internal/pkg/constvars"
	"medicenter-service/internal/pkg/dto/responses"
	"medicenter-service/internal/pkg/hospitaldto"
	"medicenter-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	dashboardUsecaseInstance contracts.DashboardUsecase
	onceDashboardUsecase     sync.Once
)

type viewLoader func(ctx context.Context, session *models.Session, dashboard *responses.Dashboard) error

type dashboardUsecase struct {
	RedisRepository           contracts.RedisRepository
	SessionRepository         contracts.SessionRepository
	AppointmentHospitalClient contracts.AppointmentHospitalClient
	VitalsHospitalClient      contracts.VitalsHospitalClient
	LabHospitalClient         contracts.LabHospitalClient
	StaffHospitalClient       contracts.StaffHospitalClient
	BlogHospitalClient        contracts.BlogHospitalClient
	Log                       *zap.Logger
	InternalConfig            *config.InternalConfig

	// loaders is total over the known roles; dispatch falls back to the
	// unknown-role view for anything else.
	loaders map[string]viewLoader
}

func NewDashboardUsecase(
	redisRepository contracts.RedisRepository,
	sessionRepository contracts.SessionRepository,
	appointmentHospitalClient contracts.AppointmentHospitalClient,
	vitalsHospitalClient contracts.VitalsHospitalClient,
	labHospitalClient contracts.LabHospitalClient,
	staffHospitalClient contracts.StaffHospitalClient,
	blogHospitalClient contracts.BlogHospitalClient,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
) contracts.DashboardUsecase {
	onceDashboardUsecase.Do(func() {
		instance := &dashboardUsecase{
			RedisRepository:           redisRepository,
			SessionRepository:         sessionRepository,
			AppointmentHospitalClient: appointmentHospitalClient,
			VitalsHospitalClient:      vitalsHospitalClient,
			LabHospitalClient:         labHospitalClient,
			StaffHospitalClient:       staffHospitalClient,
			BlogHospitalClient:        blogHospitalClient,
			Log:                       logger,
			InternalConfig:            internalConfig,
		}
		instance.loaders = map[string]viewLoader{
			constvars.MedicenterRolePatient: instance.loadPatientView,
			constvars.MedicenterRoleDoctor:  instance.loadDoctorView,
			constvars.MedicenterRoleNurse:   instance.loadNurseView,
			constvars.MedicenterRoleLab:     instance.loadLabView,
			constvars.MedicenterRoleAdmin:   instance.loadAdminView,
		}
		dashboardUsecaseInstance = instance
	})
	return dashboardUsecaseInstance
}

// BuildDashboard dispatches on the session user's role. An unrecognized role
// is not an error: it produces the unknown-role view so the caller can render
// the fallback page.
func (uc *dashboardUsecase) BuildDashboard(ctx context.Context, session *models.Session) (*responses.Dashboard, error) {
	cacheKey := constvars.DashboardCachePrefix + session.SessionID
	if cached, err := uc.RedisRepository.Get(ctx, cacheKey); err == nil && cached != "" {
		var dashboard responses.Dashboard
		if err := json.Unmarshal([]byte(cached), &dashboard); err == nil {
			return &dashboard, nil
		}
	}

	dashboard, err := uc.buildFresh(ctx, session)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.InternalConfig.App.DashboardCacheTTLSeconds) * time.Second
	if err := uc.RedisRepository.Set(ctx, cacheKey, dashboard, ttl); err != nil {
		uc.Log.Error("error caching dashboard view", zap.Error(err))
	}

	return dashboard, nil
}

func (uc *dashboardUsecase) buildFresh(ctx context.Context, session *models.Session) (*responses.Dashboard, error) {
	role := session.User.Role()
	uc.normalizeUserMedia(session.User)

	dashboard := &responses.Dashboard{User: session.User}

	loader, known := uc.loaders[role]
	if !known {
		uc.Log.Info("dispatching unknown role to fallback view",
			zap.String(constvars.LoggingRoleKey, role),
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		)
		dashboard.View = constvars.DashboardViewUnknown
		dashboard.UnknownRole = role
		return dashboard, nil
	}

	if err := loader(ctx, session, dashboard); err != nil {
		return nil, err
	}

	uc.Log.Info("dashboard view built",
		zap.String(constvars.LoggingRoleKey, role),
		zap.String(constvars.LoggingViewKey, dashboard.View),
	)
	return dashboard, nil
}

func (uc *dashboardUsecase) loadPatientView(ctx context.Context, session *models.Session, dashboard *responses.Dashboard) error {
	appointments, err := uc.AppointmentHospitalClient.FindAll(ctx, session.AccessToken, nil)
	if err != nil {
		return err
	}
	dashboard.View = constvars.DashboardViewPatient
	dashboard.Patient = &responses.PatientView{Appointments: appointments}
	return nil
}

func (uc *dashboardUsecase) loadDoctorView(ctx context.Context, session *models.Session, dashboard *responses.Dashboard) error {
	appointments, err := uc.AppointmentHospitalClient.FindAll(ctx, session.AccessToken, nil)
	if err != nil {
		return err
	}
	dashboard.View = constvars.DashboardViewDoctor
	dashboard.Doctor = &responses.DoctorView{Appointments: appointments}
	return nil
}

func (uc *dashboardUsecase) loadNurseView(ctx context.Context, session *models.Session, dashboard *responses.Dashboard) error {
	vitalRequests, err := uc.VitalsHospitalClient.FindVitalRequests(ctx, session.AccessToken, nil)
	if err != nil {
		return err
	}
	dashboard.View = constvars.DashboardViewNurse
	dashboard.Nurse = &responses.NurseView{VitalRequests: vitalRequests}
	return nil
}

func (uc *dashboardUsecase) loadLabView(ctx context.Context, session *models.Session, dashboard *responses.Dashboard) error {
	testRequests, err := uc.LabHospitalClient.FindTestRequests(ctx, session.AccessToken, nil)
	if err != nil {
		return err
	}
	dashboard.View = constvars.DashboardViewLab
	dashboard.Lab = &responses.LabView{TestRequests: testRequests}
	return nil
}

// loadAdminView fans out the four admin sections concurrently; the first
// failure wins.
func (uc *dashboardUsecase) loadAdminView(ctx context.Context, session *models.Session, dashboard *responses.Dashboard) error {
	view := &responses.AdminView{}

	var wg sync.WaitGroup
	errs := make([]error, 4)

	wg.Add(4)
	go func() {
		defer wg.Done()
		view.Staff, errs[0] = uc.StaffHospitalClient.FindAll(ctx, session.AccessToken)
	}()
	go func() {
		defer wg.Done()
		view.Appointments, errs[1] = uc.AppointmentHospitalClient.FindAll(ctx, session.AccessToken, nil)
	}()
	go func() {
		defer wg.Done()
		view.BlogStats, errs[2] = uc.BlogHospitalClient.GetStats(ctx, session.AccessToken)
	}()
	go func() {
		defer wg.Done()
		view.BlogPosts, errs[3] = uc.BlogHospitalClient.FindAll(ctx, nil)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	uc.normalizeStaffMedia(view.Staff)
	uc.normalizeBlogMedia(view.BlogPosts)

	dashboard.View = constvars.DashboardViewAdmin
	dashboard.Admin = view
	return nil
}

// RefreshCaches rebuilds the cached view for every live session. Failures are
// logged per session; the sweep continues.
func (uc *dashboardUsecase) RefreshCaches(ctx context.Context) error {
	keys, err := uc.RedisRepository.Keys(ctx, constvars.SessionKeyPrefix+"*")
	if err != nil {
		return err
	}

	ttl := time.Duration(uc.InternalConfig.App.DashboardCacheTTLSeconds) * time.Second
	for _, key := range keys {
		sessionID := strings.TrimPrefix(key, constvars.SessionKeyPrefix)
		session, err := uc.SessionRepository.GetSession(ctx, sessionID)
		if err != nil || session.User == nil {
			continue
		}

		dashboard, err := uc.buildFresh(ctx, session)
		if err != nil {
			uc.Log.Warn("dashboard cache refresh failed for session",
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(err),
			)
			continue
		}

		cacheKey := constvars.DashboardCachePrefix + sessionID
		if err := uc.RedisRepository.Set(ctx, cacheKey, dashboard, ttl); err != nil {
			uc.Log.Error("error caching refreshed dashboard", zap.Error(err))
		}
	}

	return nil
}

func (uc *dashboardUsecase) normalizeUserMedia(user *hospitaldto.User) {
	if user == nil || user.Profile == nil {
		return
	}
	user.Profile.ProfilePix = utils.NormalizeMediaURL(uc.InternalConfig.Hospital.MediaHost, user.Profile.ProfilePix)
}

func (uc *dashboardUsecase) normalizeStaffMedia(staff []hospitaldto.StaffMember) {
	for i := range staff {
		if staff[i].Profile == nil {
			continue
		}
		staff[i].Profile.ProfilePix = utils.NormalizeMediaURL(uc.InternalConfig.Hospital.MediaHost, staff[i].Profile.ProfilePix)
	}
}

func (uc *dashboardUsecase) normalizeBlogMedia(posts []hospitaldto.BlogPost) {
	mediaHost := uc.InternalConfig.Hospital.MediaHost
	for i := range posts {
		posts[i].Image1 = utils.NormalizeMediaURL(mediaHost, posts[i].Image1)
		posts[i].Image2 = utils.NormalizeMediaURL(mediaHost, posts[i].Image2)
		posts[i].Image3 = utils.NormalizeMediaURL(mediaHost, posts[i].Image3)
	}
}
