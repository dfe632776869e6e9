// File: clinicore/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicore/config"
	"clinicore/database"
	"clinicore/database/repository"
	"clinicore/handlers"
	"clinicore/middleware"
	"clinicore/routes"
	"clinicore/services/recommendation"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	clinicRepo := repository.NewMongoClinicRepo()
	physicianRepo := repository.NewMongoPhysicianRepo()
	patientRepo := repository.NewMongoPatientRepo()
	availabilityRepo := repository.NewMongoAvailabilityRepo()
	appointmentRepo := repository.NewMongoAppointmentRepo()
	billingRepo := repository.NewMongoBillingRuleRepo()

	// services.
	recommendationService := &recommendation.DefaultRecommendationService{
		ClinicRepo:       clinicRepo,
		PhysicianRepo:    physicianRepo,
		PatientRepo:      patientRepo,
		AvailabilityRepo: availabilityRepo,
		AppointmentRepo:  appointmentRepo,
		BillingRepo:      billingRepo,
		Cache:            utils.GetCacheClient(),
	}

	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, logger)
	directoryHandler := handlers.NewDirectoryHandler(clinicRepo, physicianRepo, patientRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		RecommendSlots: recommendationHandler.RecommendSlots,

		GetAllClinicsHandler:    directoryHandler.GetAllClinicsHandler,
		GetAllPhysiciansHandler: directoryHandler.GetAllPhysiciansHandler,
		GetAllPatientsHandler:   directoryHandler.GetAllPatientsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
