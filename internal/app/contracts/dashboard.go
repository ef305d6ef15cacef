package contracts

import (
	"context"
	"medicenter-service/internal/app/models"
	"medicenter-service/internal/pkg/dto/responses"
)

type DashboardUsecase interface {
	// BuildDashboard dispatches on the session user's role and loads the
	// matching view. Unrecognized roles produce the unknown-role view, never
	// an error.
	BuildDashboard(ctx context.Context, session *models.Session) (*responses.Dashboard, error)

	// RefreshCaches re-loads the poll-backed views for every live session.
	RefreshCaches(ctx context.Context) error
}
