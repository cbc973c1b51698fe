package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"rosterly/config"
	"rosterly/cron"
	"rosterly/database"
	accountRepo "rosterly/database/repository/account"
	announcementRepo "rosterly/database/repository/announcement"
	coverageRepo "rosterly/database/repository/coverage"
	scheduleRepo "rosterly/database/repository/schedule"
	settingsRepo "rosterly/database/repository/settings"
	workerRepo "rosterly/database/repository/worker"
	"rosterly/handlers"
	"rosterly/middleware"
	"rosterly/routes"
	accountService "rosterly/services/account"
	"rosterly/services/board"
	"rosterly/services/roster"
	workerService "rosterly/services/worker"
	"rosterly/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	workers := workerRepo.NewMongoWorkerRepo()
	schedules := scheduleRepo.NewMongoScheduleRepo()
	settings := settingsRepo.NewMongoSettingsRepo()
	accounts := accountRepo.NewMongoAccountRepo()
	announcements := announcementRepo.NewMongoAnnouncementRepo()
	coverage := coverageRepo.NewMongoCoverageRepo()

	// services.
	rosterSvc := roster.NewDefaultRosterService(workers, schedules, settings, utils.GetCacheClient(), logger)
	workerSvc := workerService.NewDefaultWorkerService(workers, logger)
	accountSvc := accountService.NewDefaultAccountService(accounts, utils.GetAuthCacheClient(), logger)
	boardSvc := board.NewDefaultBoardService(announcements, coverage, logger)

	// Background schedule generation.
	enqueuer := cron.NewEnqueuer()
	defer enqueuer.Close()
	asynqSrv := cron.InitScheduleWorker(rosterSvc)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		AccountRepo:     accounts,
		AccountHandler:  &handlers.AccountHandler{AccountService: accountSvc},
		WorkerHandler:   &handlers.WorkerHandler{WorkerService: workerSvc},
		ScheduleHandler: &handlers.ScheduleHandler{RosterService: rosterSvc, Enqueuer: enqueuer},
		SettingsHandler: &handlers.SettingsHandler{SettingsRepo: settings},
		BoardHandler:    &handlers.BoardHandler{BoardService: boardSvc},
	}

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

	asynqSrv.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
