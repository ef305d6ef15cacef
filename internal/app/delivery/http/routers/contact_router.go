package routers

import (
	"medicenter-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachContactRoutes(router chi.Router, contactController *controllers.ContactController) {
	router.Post("/", contactController.SubmitMessage)
	router.Post("/newsletter", contactController.SubscribeNewsletter)
}
