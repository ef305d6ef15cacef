package utils

import (
	"context"
	"medicenter-service/internal/app/models"
	"medicenter-service/internal/pkg/constvars"
	"medicenter-service/internal/pkg/exceptions"
)

func GetSessionFromContext(ctx context.Context) (*models.Session, error) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	if !ok || session == nil {
		return nil, exceptions.ErrMissingSession(nil)
	}
	return session, nil
}

// GetSessionIDFromContext returns the empty string when the request carried
// no usable token; callers on the optional-auth paths treat that as the
// anonymous state.
func GetSessionIDFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	return sessionID
}
