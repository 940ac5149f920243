package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lisagent-service/internal/app/config"
	"lisagent-service/internal/app/delivery/http/controllers"
	"lisagent-service/internal/app/delivery/http/middlewares"
	"lisagent-service/internal/app/delivery/http/routers"
	"lisagent-service/internal/app/drivers/database"
	"lisagent-service/internal/app/drivers/logger"
	"lisagent-service/internal/app/drivers/messaging"
	"lisagent-service/internal/app/drivers/storage"
	"lisagent-service/internal/app/services/core/datagrams"
	"lisagent-service/internal/app/services/core/dispatcher"
	"lisagent-service/internal/app/services/core/records"
	"lisagent-service/internal/app/services/core/republish"
	"lisagent-service/internal/app/services/core/sessions"
	"lisagent-service/internal/app/services/core/uplink"
	"lisagent-service/internal/app/services/shared/archive"
	"lisagent-service/internal/app/services/shared/locker"
	"lisagent-service/internal/app/services/shared/notifier"
	sharedRedis "lisagent-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	bootstrapingTheApp(workerCtx, config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")
	stopWorkers()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(workerCtx context.Context, bootstrap config.Bootstrap) {
	// Shared infrastructure
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.ZapLogger)
	transcriptArchive := archive.NewMinioTranscriptArchive(
		bootstrap.Minio,
		bootstrap.DriverConfig.Minio.BucketName,
		bootstrap.ZapLogger,
	)

	// Notifier
	notifierService, err := notifier.NewNotifierService(bootstrap.RabbitMQ, bootstrap.ZapLogger, bootstrap.InternalConfig)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to initialize notifier: %v", err)
	}
	notifierWorker := notifier.NewWorker(bootstrap.RabbitMQ, bootstrap.ZapLogger, bootstrap.InternalConfig)
	go func() {
		if err := notifierWorker.Run(workerCtx); err != nil {
			bootstrap.Logger.Errorf("Notifier worker stopped: %v", err)
		}
	}()

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, bootstrap.InternalConfig)

	// Uplink
	uplinkClient := uplink.NewUplinkClient(bootstrap.ZapLogger, bootstrap.InternalConfig, notifierService)

	// Datagram
	datagramMongoRepository := datagrams.NewDatagramMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	datagramUsecase := datagrams.NewDatagramUsecase(datagramMongoRepository)
	datagramController := controllers.NewDatagramController(bootstrap.ZapLogger, datagramUsecase, bootstrap.InternalConfig)

	// Session pipeline
	recordParser := records.NewParser(bootstrap.ZapLogger)
	dispatcherFactory := dispatcher.NewFactory(
		bootstrap.ZapLogger,
		bootstrap.InternalConfig,
		dispatcher.NewAcceptAllAcceptor(),
		uplinkClient,
		datagramMongoRepository,
		notifierService,
		transcriptArchive,
	)
	sessionRunner := sessions.NewSessionRunner(dispatcherFactory, bootstrap.ZapLogger)
	sessionUsecase := sessions.NewSessionUsecase(sessionRunner, recordParser)
	sessionController := controllers.NewSessionController(bootstrap.ZapLogger, sessionUsecase, bootstrap.InternalConfig)

	// Test result loopback
	testResultUsecase := uplink.NewTestResultUsecase(uplinkClient, notifierService, bootstrap.InternalConfig, bootstrap.ZapLogger)
	testResultController := controllers.NewTestResultController(bootstrap.ZapLogger, testResultUsecase, bootstrap.InternalConfig)

	// Republish
	republishUsecase := republish.NewRepublishUsecase(datagramMongoRepository, uplinkClient, bootstrap.InternalConfig, bootstrap.ZapLogger)
	republishWorker := republish.NewWorker(republishUsecase, lockerService, bootstrap.InternalConfig, bootstrap.ZapLogger)
	go func() {
		if err := republishWorker.Run(workerCtx); err != nil {
			bootstrap.Logger.Errorf("Republish worker stopped: %v", err)
		}
	}()
	republishController := controllers.NewRepublishController(bootstrap.ZapLogger, republishUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		testResultController,
		sessionController,
		datagramController,
		republishController,
	)
}
