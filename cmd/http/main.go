package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"pandacare-gateway/internal/app/config"
	"pandacare-gateway/internal/app/delivery/http/middlewares"
	"pandacare-gateway/internal/app/delivery/http/routers"
	"pandacare-gateway/internal/app/drivers/database"
	"pandacare-gateway/internal/app/drivers/logger"
	"pandacare-gateway/internal/app/services/auth"
	"pandacare-gateway/internal/app/services/chat"
	"pandacare-gateway/internal/app/services/doctors"
	"pandacare-gateway/internal/app/services/konsultasi"
	"pandacare-gateway/internal/app/services/ratings"
	"pandacare-gateway/internal/app/services/session"
	sharedredis "pandacare-gateway/internal/app/services/shared/redis"
	"pandacare-gateway/internal/app/services/verify"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	redisClient := database.NewRedisClient(driverConfig)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("starting pandacare gateway",
			zap.String("port", internalConfig.App.Port),
			zap.String("env", internalConfig.App.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error while serving the application: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down pandacare gateway")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(internalConfig.App.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("forced shutdown", zap.Error(err))
	}
	if err := redisClient.Close(); err != nil {
		zapLogger.Error("error closing redis client", zap.Error(err))
	}
	zapLogger.Info("pandacare gateway stopped")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	storage := sharedredis.NewRedisRepository(bootstrap.Redis)

	// the auth client runs without an invalidator: its only 401s are failed
	// logins and logouts of sessions already being torn down
	authClient := auth.NewAuthClient(bootstrap.InternalConfig, nil, bootstrap.Logger)
	sessionManager := session.NewSessionManager(storage, authClient, bootstrap.InternalConfig, bootstrap.Logger)
	verifier := verify.NewServiceVerifier(storage, bootstrap.InternalConfig, bootstrap.Logger)

	konsultasiClient := konsultasi.NewKonsultasiClient(bootstrap.InternalConfig, sessionManager, bootstrap.Logger)
	konsultasiUsecase := konsultasi.NewKonsultasiUsecase(konsultasiClient, bootstrap.Logger)
	doctorClient := doctors.NewDoctorClient(bootstrap.InternalConfig, sessionManager, bootstrap.Logger)
	ratingClient := ratings.NewRatingClient(bootstrap.InternalConfig, sessionManager, bootstrap.Logger)
	ratingUsecase := ratings.NewRatingUsecase(ratingClient, bootstrap.Logger)
	chatClient := chat.NewChatClient(bootstrap.InternalConfig, sessionManager, bootstrap.Logger)
	chatPoller := chat.NewPoller(chatClient, time.Duration(bootstrap.InternalConfig.Session.ChatPollInterval)*time.Second, bootstrap.Logger)

	controllers := &routers.Controllers{
		Auth:       auth.NewAuthController(sessionManager, bootstrap.InternalConfig, bootstrap.Logger),
		Konsultasi: konsultasi.NewKonsultasiController(konsultasiUsecase, bootstrap.InternalConfig, bootstrap.Logger),
		Doctor:     doctors.NewDoctorController(doctorClient, bootstrap.InternalConfig, bootstrap.Logger),
		Rating:     ratings.NewRatingController(ratingUsecase, bootstrap.InternalConfig, bootstrap.Logger),
		Chat:       chat.NewChatController(chatClient, chatPoller, bootstrap.InternalConfig, bootstrap.Logger),
	}

	m := middlewares.NewMiddlewares(bootstrap.Logger, sessionManager, verifier, storage, bootstrap.InternalConfig)
	routers.SetupRoutes(bootstrap.Router, m, bootstrap.InternalConfig, controllers)
}
