package routers

import (
	"medicenter-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachMediaRoutes(router chi.Router, mediaController *controllers.MediaController) {
	router.Get("/*", mediaController.Get)
}
