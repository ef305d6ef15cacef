package routers

import (
	"medicenter-service/internal/app/delivery/http/controllers"
	"medicenter-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachLabRoutes(router chi.Router, middlewares *middlewares.Middlewares, labController *controllers.LabController) {
	router.Use(middlewares.Authenticate)
	router.Get("/test-requests", labController.FindTestRequests)
	router.Post("/test-requests", labController.CreateTestRequest)
	router.Post("/results", labController.CreateLabResult)
}
