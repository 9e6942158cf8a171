// File: dialvet/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dialvet/config"
	"dialvet/cron"
	"dialvet/database"
	businessRepo "dialvet/database/repository/business"
	"dialvet/handlers"
	"dialvet/middleware"
	"dialvet/routes"
	businessSvc "dialvet/services/business"
	"dialvet/services/call"
	"dialvet/services/classifier"
	"dialvet/services/storage"
	"dialvet/services/tasks"
	"dialvet/services/telephony"
	"dialvet/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary storage unavailable, greeting audio and recording archive disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bizRepo := businessRepo.NewMongoBusinessRepo()

	// external collaborators.
	telephonyClient, err := telephony.NewTwilioClient()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize telephony client: %v", err)
	}

	surveyClassifier, err := classifier.New(config.AppConfig.ClassifierStrategy, config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize classifier: %v", err)
	}
	logger.Sugar().Infof("main: using %q classifier strategy", config.AppConfig.ClassifierStrategy)

	// services.
	var promptStore *storage.PromptStore
	var archiver tasks.Enqueuer
	if cloudinaryStorageService != nil {
		promptStore = storage.NewPromptStore(cloudinaryStorageService, utils.GetCacheClient())
		if config.AppConfig.RecordCalls {
			archiver = tasks.NewAsynqEnqueuer(asynq.RedisClientOpt{
				Addr:     config.AppConfig.RedisAddr,
				Password: config.AppConfig.RedisPassword,
				DB:       config.AppConfig.RedisQueueDB,
			})
			cron.InitRecordingWorker(bizRepo, telephonyClient, cloudinaryStorageService)
		}
	}

	callService := &call.DefaultCallService{
		Repo:       bizRepo,
		Classifier: surveyClassifier,
		Telephony:  telephonyClient,
		Prompts:    promptStore,
		Archiver:   archiver,
	}
	businessService := &businessSvc.DefaultBusinessService{
		Repo: bizRepo,
	}

	voiceHandler := handlers.NewVoiceHandler(callService)
	callHandler := handlers.NewCallTriggerHandler(callService)
	businessHandler := handlers.NewBusinessHandler(businessService)
	assetHandler := handlers.NewAssetHandler(promptStore)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		VoiceTurnHandler: voiceHandler.VoiceTurnHandler,

		StartBulkCallsHandler: callHandler.StartBulkCallsHandler,
		CallBusinessHandler:   callHandler.CallBusinessHandler,

		ListBusinessesHandler:   businessHandler.ListBusinessesHandler,
		GetBusinessHandler:      businessHandler.GetBusinessHandler,
		ImportBusinessesHandler: businessHandler.ImportBusinessesHandler,
		ExportBusinessesHandler: businessHandler.ExportBusinessesHandler,
		UpdateBusinessHandler:   businessHandler.UpdateBusinessHandler,
		ClearBusinessesHandler:  businessHandler.ClearBusinessesHandler,

		UploadGreetingHandler: assetHandler.UploadGreetingHandler,
		GetGreetingHandler:    assetHandler.GetGreetingHandler,

		AdminLoginHandler: handlers.AdminLoginHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic dependency health snapshots for /health.
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
