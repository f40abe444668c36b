package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/geo_risk_system/internal/config"
	v1 "github.com/shenikar/geo_risk_system/internal/handler/http/v1"
	"github.com/shenikar/geo_risk_system/internal/overlay"
	"github.com/shenikar/geo_risk_system/internal/risk"
	"github.com/shenikar/geo_risk_system/internal/service"
	"github.com/shenikar/geo_risk_system/internal/worker"
	"github.com/shenikar/geo_risk_system/pkg/logger"
	"github.com/shenikar/geo_risk_system/pkg/metrics"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/geo_risk_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Geo Risk System API
// @version 1.0
// @description Earthquake risk micro-zonation service for Kecamatan Cisarua, West Java.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Статичные слои карты и классификатор
	dataset := overlay.Default()
	if _, err := overlay.FeatureCollection(dataset); err != nil {
		log.Fatalf("Invalid overlay dataset: %v", err)
	}
	classifier := risk.NewClassifier(risk.DefaultConfig())

	recorder := metrics.New()

	// Инициализация сервисов
	viewService := service.NewViewService(classifier, dataset, recorder, log, cfg)

	// Фоновое освобождение заброшенных экранов
	reaper := worker.NewViewReaper(viewService, log, cfg)
	reaperDone := reaper.Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(viewService, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), recorder.Middleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", recorder.Handler())

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.WithFields(logrus.Fields{
		"port":         cfg.HTTPPort,
		"auth_enabled": cfg.AuthEnabled(),
	}).Info("HTTP server started")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	cancel()
	<-reaperDone

	// Освобождаем карты всех оставшихся экранов
	if count, err := viewService.UnmountIdle(shutdownCtx, 0); err != nil {
		log.WithError(err).Warn("Failed to unmount views on shutdown")
	} else {
		log.WithField("count", count).Info("Views unmounted")
	}

	log.Info("Server gracefully stopped")
}
