package routers

import (
	"medicenter-service/internal/app/delivery/http/controllers"
	"medicenter-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachVitalsRoutes(router chi.Router, middlewares *middlewares.Middlewares, vitalsController *controllers.VitalsController) {
	router.Use(middlewares.Authenticate)
	router.Get("/requests", vitalsController.FindVitalRequests)
	router.Post("/requests", vitalsController.CreateVitalRequest)
	router.Post("/", vitalsController.CreateVitals)
}
