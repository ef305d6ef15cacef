package routers

import (
	"medicenter-service/internal/app/delivery/http/controllers"
	"medicenter-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachStaffRoutes(router chi.Router, middlewares *middlewares.Middlewares, staffController *controllers.StaffController) {
	router.With(middlewares.Authenticate).Get("/", staffController.FindAll)
}
