package routers

import (
	"medicenter-service/internal/app/delivery/http/controllers"
	"medicenter-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", appointmentController.FindAll)
	router.Post("/", appointmentController.Create)
}
