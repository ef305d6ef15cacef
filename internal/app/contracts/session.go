package contracts

import (
	"context"
	"medicenter-service/internal/app/models"
)

// SessionRepository is the token store: session records in Redis keyed by the
// session ID carried inside the portal JWT.
type SessionRepository interface {
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	UpdateSession(ctx context.Context, session *models.Session) error
	DeleteSession(ctx context.Context, sessionID string) error
}
