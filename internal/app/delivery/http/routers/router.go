package routers

import (
	"fmt"
	"medicenter-service/internal/app/config"
	"medicenter-service/internal/app/delivery/http/controllers"
	"medicenter-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	dashboardController *controllers.DashboardController,
	appointmentController *controllers.AppointmentController,
	blogController *controllers.BlogController,
	labController *controllers.LabController,
	vitalsController *controllers.VitalsController,
	reportController *controllers.ReportController,
	staffController *controllers.StaffController,
	contactController *controllers.ContactController,
	mediaController *controllers.MediaController,
	opsController *controllers.OpsController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.RequestLogger)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/dashboard", func(r chi.Router) {
				attachDashboardRoutes(r, middlewares, dashboardController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})

			r.Route("/blog", func(r chi.Router) {
				attachBlogRoutes(r, middlewares, blogController)
			})

			r.Route("/labs", func(r chi.Router) {
				attachLabRoutes(r, middlewares, labController)
			})

			r.Route("/vitals", func(r chi.Router) {
				attachVitalsRoutes(r, middlewares, vitalsController)
			})

			r.Route("/reports", func(r chi.Router) {
				attachReportRoutes(r, middlewares, reportController)
			})

			r.Route("/staff", func(r chi.Router) {
				attachStaffRoutes(r, middlewares, staffController)
			})

			r.Route("/contact", func(r chi.Router) {
				attachContactRoutes(r, contactController)
			})

			r.Route("/media", func(r chi.Router) {
				attachMediaRoutes(r, mediaController)
			})

			r.Route("/ops", func(r chi.Router) {
				attachOpsRoutes(r, middlewares, opsController)
			})
		})
	})
}
