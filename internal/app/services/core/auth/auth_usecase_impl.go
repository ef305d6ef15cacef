package auth

import (
	"context"
	"medicenter-service/internal/app/config"
	"medicenter-service/internal/app/contracts"
	"medicenter-service/internal/app/models"
	"medicenter-service/internal/pkg/constvars"
	"medicenter-service/internal/pkg/dto/requests"
	"medicenter-service/internal/pkg/dto/responses"
	"medicenter-service/internal/pkg/exceptions"
	"medicenter-service/internal/pkg/hospitaldto"
	"medicenter-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

type authUsecase struct {
	SessionRepository  contracts.SessionRepository
	AuthHospitalClient contracts.AuthHospitalClient
	Log                *zap.Logger
	InternalConfig     *config.InternalConfig
}

func NewAuthUsecase(
	sessionRepository contracts.SessionRepository,
	authHospitalClient contracts.AuthHospitalClient,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		instance := &authUsecase{
			SessionRepository:  sessionRepository,
			AuthHospitalClient: authHospitalClient,
			Log:                logger,
			InternalConfig:     internalConfig,
		}
		authUsecaseInstance = instance
	})
	return authUsecaseInstance
}

// Restore is the silent session restore. Any failure along the way tears the
// session down and resolves to the anonymous state; restore never surfaces an
// error to the caller.
func (uc *authUsecase) Restore(ctx context.Context, sessionID string) (*responses.Session, error) {
	if sessionID == "" {
		return &responses.Session{Authenticated: false}, nil
	}

	session, err := uc.SessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		uc.Log.Info("session restore found no live session",
			zap.String(constvars.LoggingSessionIDKey, sessionID),
		)
		return &responses.Session{Authenticated: false}, nil
	}

	user, err := uc.AuthHospitalClient.GetDashboard(ctx, session.AccessToken)
	if err != nil {
		uc.Log.Info("session restore rejected upstream, clearing tokens",
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		if delErr := uc.SessionRepository.DeleteSession(ctx, sessionID); delErr != nil {
			uc.Log.Error("error deleting stale session", zap.Error(delErr))
		}
		return &responses.Session{Authenticated: false}, nil
	}

	session.User = user
	if err := uc.SessionRepository.UpdateSession(ctx, session); err != nil {
		uc.Log.Error("error refreshing session user", zap.Error(err))
	}

	return &responses.Session{Authenticated: true, User: user}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.Login, error) {
	utils.SanitizeLoginRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		if utils.IsMissingFieldError(err) {
			return nil, exceptions.ErrMissingRequiredFields()
		}
		return nil, exceptions.ErrInputValidation(err, utils.FormatFirstValidationError(err))
	}

	result, err := uc.AuthHospitalClient.Login(ctx, request.Username, request.Password)
	if err != nil {
		return nil, err
	}
	if result.Access == "" || result.Refresh == "" {
		return nil, exceptions.ErrUpstreamTokensIncomplete()
	}

	token, user, err := uc.createSession(ctx, result)
	if err != nil {
		return nil, err
	}

	return &responses.Login{
		Token:      token,
		User:       user,
		RedirectTo: constvars.RedirectDashboard,
	}, nil
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.Register, error) {
	utils.SanitizeRegisterRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		if utils.IsMissingFieldError(err) {
			return nil, exceptions.ErrMissingRequiredFields()
		}
		return nil, exceptions.ErrInputValidation(err, utils.FormatFirstValidationError(err))
	}

	if err := uc.AuthHospitalClient.Register(ctx, request); err != nil {
		return nil, err
	}

	// Registration does not return tokens upstream, so log the new account in
	// right away with the password it registered with.
	result, err := uc.AuthHospitalClient.Login(ctx, request.Username, request.Password1)
	if err != nil {
		return nil, err
	}
	if result.Access == "" || result.Refresh == "" {
		return nil, exceptions.ErrUpstreamTokensIncomplete()
	}

	token, user, err := uc.createSession(ctx, result)
	if err != nil {
		return nil, err
	}

	return &responses.Register{
		Token:      token,
		User:       user,
		RedirectTo: constvars.RedirectDashboard,
	}, nil
}

// Logout is idempotent: a missing or already-deleted session still resolves to
// the home redirect. The upstream logout is best effort.
func (uc *authUsecase) Logout(ctx context.Context, sessionID string) (*responses.Logout, error) {
	response := &responses.Logout{RedirectTo: constvars.RedirectHome}
	if sessionID == "" {
		return response, nil
	}

	session, err := uc.SessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		return response, nil
	}

	if err := uc.AuthHospitalClient.Logout(ctx, session.AccessToken, session.RefreshToken); err != nil {
		uc.Log.Warn("upstream logout failed, clearing session anyway",
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
	}

	if err := uc.SessionRepository.DeleteSession(ctx, sessionID); err != nil {
		uc.Log.Error("error deleting session on logout", zap.Error(err))
	}

	return response, nil
}

func (uc *authUsecase) createSession(ctx context.Context, result *hospitaldto.LoginResult) (string, *hospitaldto.User, error) {
	session := &models.Session{
		SessionID:    utils.GenerateSessionID(),
		AccessToken:  result.Access,
		RefreshToken: result.Refresh,
		User:         result.User,
		CreatedAt:    time.Now(),
	}

	if err := uc.SessionRepository.CreateSession(ctx, session); err != nil {
		return "", nil, err
	}

	expTime := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateJWT(session.SessionID, uc.InternalConfig.JWT.Secret, expTime)
	if err != nil {
		return "", nil, err
	}

	return token, result.User, nil
}
