package routers

import (
	"medicenter-service/internal/app/delivery/http/controllers"
	"medicenter-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachOpsRoutes(router chi.Router, middlewares *middlewares.Middlewares, opsController *controllers.OpsController) {
	router.Use(middlewares.APIKeyAuth)
	router.Post("/dashboard-cache/refresh", opsController.RefreshDashboardCaches)
}
