package contracts

import (
	"context"
	"medicenter-service/internal/pkg/dto/requests"
	"medicenter-service/internal/pkg/dto/responses"
	"medicenter-service/internal/pkg/hospitaldto"
)

type AuthUsecase interface {
	// Restore attempts the silent session restore. sessionID may be empty,
	// in which case no upstream call is made and the anonymous session is
	// returned.
	Restore(ctx context.Context, sessionID string) (*responses.Session, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.Login, error)
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.Register, error)
	Logout(ctx context.Context, sessionID string) (*responses.Logout, error)
}

// AuthHospitalClient wraps the upstream authentication endpoints.
type AuthHospitalClient interface {
	Login(ctx context.Context, username, password string) (*hospitaldto.LoginResult, error)
	Register(ctx context.Context, request *requests.RegisterUser) error
	Logout(ctx context.Context, accessToken, refreshToken string) error
	GetDashboard(ctx context.Context, accessToken string) (*hospitaldto.User, error)
}
