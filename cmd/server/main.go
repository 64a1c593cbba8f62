package main

import (
	"github.com/connersimmonsmayne/weddingplanner-sub000/config"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/handler"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/httpserver"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/repository"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/service"
	"github.com/connersimmonsmayne/weddingplanner-sub000/pkg/db"
	"github.com/connersimmonsmayne/weddingplanner-sub000/pkg/logger"
	"github.com/connersimmonsmayne/weddingplanner-sub000/pkg/mq"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	publisher, err := mq.NewPublisher(cfg.MQ.URL)
	if err != nil {
		log.Fatal("MQ publisher initialization failed", zap.Error(err))
	}
	defer publisher.Close()

	// repositories
	userRepo := repository.NewUserRepository(dbConn, log)
	weddingRepo := repository.NewWeddingRepository(dbConn, log)
	guestRepo := repository.NewGuestRepository(dbConn, log)
	vendorRepo := repository.NewVendorRepository(dbConn, log)
	taskRepo := repository.NewTaskRepository(dbConn, log)
	eventRepo := repository.NewEventRepository(dbConn, log)
	budgetRepo := repository.NewBudgetRepository(dbConn, log)

	// services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret)
	milestoneService := service.NewMilestoneService(weddingRepo, vendorRepo, guestRepo, taskRepo, eventRepo, log)
	importService := service.NewGuestImportService(guestRepo, publisher, log)
	mapService := service.NewMapService(guestRepo)

	// handlers
	handlers := httpserver.Handlers{
		Auth:      handler.NewAuthHandler(authService, log),
		Wedding:   handler.NewWeddingHandler(weddingRepo, log),
		Guest:     handler.NewGuestHandler(guestRepo, publisher, log),
		Vendor:    handler.NewVendorHandler(vendorRepo, log),
		Task:      handler.NewTaskHandler(taskRepo, log),
		Event:     handler.NewEventHandler(eventRepo, log),
		Budget:    handler.NewBudgetHandler(budgetRepo, log),
		Milestone: handler.NewMilestoneHandler(milestoneService),
		Import:    handler.NewImportHandler(importService, log),
		Map:       handler.NewMapHandler(mapService, log),
	}

	router := httpserver.NewRouter(handlers, weddingRepo, cfg.JWT.Secret, log, dbConn, publisher)

	log.Info("Server listening", zap.String("port", cfg.Server.Port))
	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatal("server start failed", zap.Error(err))
	}
}
