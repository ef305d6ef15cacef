package main

import (
	"context"
	"medicenter-service/internal/app/config"
	"medicenter-service/internal/app/delivery/http/controllers"
	"medicenter-service/internal/app/delivery/http/middlewares"
	"medicenter-service/internal/app/delivery/http/routers"
	"medicenter-service/internal/app/drivers/database"
	"medicenter-service/internal/app/drivers/logger"
	driverMailer "medicenter-service/internal/app/drivers/mailer"
	"medicenter-service/internal/app/drivers/messaging"
	driverStorage "medicenter-service/internal/app/drivers/storage"
	"medicenter-service/internal/app/services/core/appointments"
	"medicenter-service/internal/app/services/core/auth"
	"medicenter-service/internal/app/services/core/blog"
	"medicenter-service/internal/app/services/core/contact"
	"medicenter-service/internal/app/services/core/dashboard"
	"medicenter-service/internal/app/services/core/labs"
	"medicenter-service/internal/app/services/core/media"
	"medicenter-service/internal/app/services/core/reports"
	"medicenter-service/internal/app/services/core/staff"
	"medicenter-service/internal/app/services/core/vitals"
	hospitalAppointments "medicenter-service/internal/app/services/hospital/appointments"
	hospitalAuth "medicenter-service/internal/app/services/hospital/auth"
	hospitalBlog "medicenter-service/internal/app/services/hospital/blog"
	hospitalLabs "medicenter-service/internal/app/services/hospital/labs"
	hospitalReports "medicenter-service/internal/app/services/hospital/reports"
	hospitalStaff "medicenter-service/internal/app/services/hospital/staff"
	hospitalVitals "medicenter-service/internal/app/services/hospital/vitals"
	"medicenter-service/internal/app/services/shared/mailer"
	sharedMongo "medicenter-service/internal/app/services/shared/mongo"
	"medicenter-service/internal/app/services/shared/ratelimiter"
	sharedRedis "medicenter-service/internal/app/services/shared/redis"
	sharedStorage "medicenter-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	redisClient := database.NewRedisClient(driverConfig)
	mongoClient := database.NewMongoDB(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := driverStorage.NewMinio(driverConfig)
	smtpClient := driverMailer.NewSMTPClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		MongoDB:        mongoClient,
		RabbitMQ:       rabbitConn,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrapingTheApp(bootstrap, minioClient, smtpClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Error closing application resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, minioClient *minio.Client, smtpClient *driverMailer.SMTPClient) {
	internalConfig := bootstrap.InternalConfig
	zapLogger := bootstrap.Logger

	// Shared infrastructure
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	sessionTTL := time.Duration(internalConfig.JWT.ExpTimeInHour) * time.Hour
	sessionRepository := sharedRedis.NewSessionRepository(redisRepository, sessionTTL)
	mediaStorage := sharedStorage.NewMinioStorage(minioClient, internalConfig.App.MediaBucketName)
	contactRepository := sharedMongo.NewContactRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	upstreamLimiter := ratelimiter.NewUpstreamLimiter(
		internalConfig.App.UpstreamRequestsPerSecond,
		internalConfig.App.UpstreamBurst,
	)

	mailerService, err := mailer.NewMailerService(smtpClient, bootstrap.RabbitMQ, internalConfig.App.MailerQueue)
	if err != nil {
		logrus.Fatalf("Failed to set up mailer service: %v", err)
	}
	stopMailerWorker, err := mailer.StartWorker(mailerService, zapLogger)
	if err != nil {
		logrus.Fatalf("Failed to start mailer worker: %v", err)
	}

	// Hospital clients
	hospitalBaseUrl := internalConfig.Hospital.BaseUrl
	authHospitalClient := hospitalAuth.NewAuthHospitalClient(hospitalBaseUrl, zapLogger, upstreamLimiter)
	appointmentHospitalClient := hospitalAppointments.NewAppointmentHospitalClient(hospitalBaseUrl, zapLogger, upstreamLimiter)
	blogHospitalClient := hospitalBlog.NewBlogHospitalClient(hospitalBaseUrl, zapLogger, upstreamLimiter)
	labHospitalClient := hospitalLabs.NewLabHospitalClient(hospitalBaseUrl, zapLogger, upstreamLimiter)
	vitalsHospitalClient := hospitalVitals.NewVitalsHospitalClient(hospitalBaseUrl, zapLogger, upstreamLimiter)
	staffHospitalClient := hospitalStaff.NewStaffHospitalClient(hospitalBaseUrl, zapLogger, upstreamLimiter)
	reportHospitalClient := hospitalReports.NewReportHospitalClient(hospitalBaseUrl, zapLogger, upstreamLimiter)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(zapLogger, sessionRepository, internalConfig)

	// Auth
	authUsecase := auth.NewAuthUsecase(sessionRepository, authHospitalClient, zapLogger, internalConfig)
	authController := controllers.NewAuthController(zapLogger, authUsecase)

	// Dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(
		redisRepository,
		sessionRepository,
		appointmentHospitalClient,
		vitalsHospitalClient,
		labHospitalClient,
		staffHospitalClient,
		blogHospitalClient,
		zapLogger,
		internalConfig,
	)
	dashboardController := controllers.NewDashboardController(zapLogger, dashboardUsecase)
	pollInterval := time.Duration(internalConfig.App.DashboardPollSeconds) * time.Second
	stopDashboardPoller := dashboard.StartPoller(dashboardUsecase, pollInterval, zapLogger)

	bootstrap.WorkerStop = func() {
		stopDashboardPoller()
		stopMailerWorker()
	}

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentHospitalClient, mailerService, zapLogger)
	appointmentController := controllers.NewAppointmentController(zapLogger, appointmentUsecase)

	// Blog
	blogUsecase := blog.NewBlogUsecase(blogHospitalClient, zapLogger, internalConfig)
	blogController := controllers.NewBlogController(zapLogger, blogUsecase)

	// Labs
	labUsecase := labs.NewLabUsecase(labHospitalClient, zapLogger)
	labController := controllers.NewLabController(zapLogger, labUsecase)

	// Vitals
	vitalsUsecase := vitals.NewVitalsUsecase(vitalsHospitalClient, zapLogger)
	vitalsController := controllers.NewVitalsController(zapLogger, vitalsUsecase)

	// Reports
	reportUsecase := reports.NewReportUsecase(reportHospitalClient, zapLogger)
	reportController := controllers.NewReportController(zapLogger, reportUsecase)

	// Staff
	staffUsecase := staff.NewStaffUsecase(staffHospitalClient, zapLogger, internalConfig)
	staffController := controllers.NewStaffController(zapLogger, staffUsecase)

	// Contact
	contactUsecase := contact.NewContactUsecase(contactRepository, redisRepository, zapLogger)
	contactController := controllers.NewContactController(zapLogger, contactUsecase)

	// Media
	mediaUsecase := media.NewMediaUsecase(mediaStorage, zapLogger, internalConfig)
	mediaController := controllers.NewMediaController(zapLogger, mediaUsecase)

	// Ops
	opsController := controllers.NewOpsController(zapLogger, dashboardUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares,
		authController,
		dashboardController,
		appointmentController,
		blogController,
		labController,
		vitalsController,
		reportController,
		staffController,
		contactController,
		mediaController,
		opsController,
	)
}
