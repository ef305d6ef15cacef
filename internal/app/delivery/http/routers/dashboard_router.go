package routers

import (
	"medicenter-service/internal/app/delivery/http/controllers"
	"medicenter-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *controllers.DashboardController) {
	router.With(middlewares.Authenticate).Get("/", dashboardController.GetDashboard)
}
