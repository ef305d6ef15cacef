package routers

import (
	"medicenter-service/internal/app/delivery/http/controllers"
	"medicenter-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBlogRoutes(router chi.Router, middlewares *middlewares.Middlewares, blogController *controllers.BlogController) {
	router.Get("/", blogController.FindAll)
	router.Get("/latest", blogController.FindLatest)
	router.With(middlewares.Authenticate).Get("/stats", blogController.GetStats)
	router.With(middlewares.Authenticate).Post("/", blogController.Create)
	router.Get("/{slug}", blogController.FindBySlug)
	router.With(middlewares.Authenticate).Put("/{slug}", blogController.Update)
	router.With(middlewares.Authenticate).Delete("/{slug}", blogController.Delete)
}
