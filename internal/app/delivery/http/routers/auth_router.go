package routers

import (
	"medicenter-service/internal/app/delivery/http/controllers"
	"medicenter-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/login", authController.Login)
	router.Post("/register", authController.Register)
	router.With(middlewares.OptionalAuthenticate).Get("/session", authController.Session)
	router.With(middlewares.OptionalAuthenticate).Post("/logout", authController.Logout)
}
