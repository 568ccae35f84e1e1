package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"day-planner/config"
	_ "day-planner/docs" // Swagger docs
	"day-planner/internal/httpserver"
	memosSync "day-planner/internal/sync"
	"day-planner/internal/task/repository"
	"day-planner/internal/task/repository/inmem"
	memosRepo "day-planner/internal/task/repository/memos"
	"day-planner/internal/task/store"
	"day-planner/internal/task/usecase"
	"day-planner/pkg/datemath"
	"day-planner/pkg/gcalendar"
	"day-planner/pkg/log"
)

const (
	memosTimeout  = 15 * time.Second
	readyTimeout  = 2 * time.Second
	loadPageLimit = 1000
)

// @title       Day Planner API
// @description Task scheduling, workload analysis and day planning backed by Memos, with an optional Google Calendar mirror.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Day Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Planner.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid timezone %q: %v", cfg.Planner.Timezone, err)
		return
	}

	// 4. Remote store: Memos when configured, process memory otherwise
	var remote repository.RemoteStore
	var webhookHandler *memosSync.WebhookHandler
	if cfg.Memos.Enabled() {
		memosClient := memosRepo.NewClient(cfg.Memos.URL, cfg.Memos.AccessToken, memosTimeout)
		remote, err = memosRepo.New(memosClient, logger)
		if err != nil {
			logger.Errorf(ctx, "Failed to initialize Memos repository: %v", err)
			return
		}
		logger.Infof(ctx, "Memos persistence enabled at %s", cfg.Memos.URL)
	} else {
		remote = inmem.New()
		logger.Warn(ctx, "MEMOS_ACCESS_TOKEN not set, tasks are kept in process memory only")
	}

	// 5. Canonical task store
	taskStore := store.New(remote, logger, store.Options{
		Timeout:       cfg.Persistence.Timeout,
		RetryAttempts: cfg.Persistence.RetryAttempts,
		RetryDelay:    cfg.Persistence.RetryDelay,
	})

	loadCtx, cancelLoad := context.WithTimeout(ctx, cfg.Persistence.Timeout)
	tasks, err := remote.List(loadCtx, repository.ListOptions{Limit: loadPageLimit})
	cancelLoad()
	if err != nil {
		logger.Errorf(ctx, "Failed to load tasks from remote store: %v", err)
		return
	}
	taskStore.Load(tasks)
	logger.Infof(ctx, "Loaded %d tasks", len(tasks))

	if cfg.Memos.Enabled() {
		webhookHandler = memosSync.NewWebhookHandler(remote, taskStore, logger, memosSync.Options{})
	}

	// 6. Google Calendar client (optional)
	var calendar usecase.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warnf(ctx, "Run `go run scripts/gcal-auth/main.go %s %s` to generate a token", cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. Task UseCase
	taskUC := usecase.New(logger, taskStore, dateMathParser, calendar, usecase.Options{
		DayStart:        cfg.Planner.DayStart,
		DefaultEnd:      cfg.Planner.DefaultEnd,
		DefaultStrategy: cfg.Planner.DefaultStrategy,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
	})

	// 8. HTTP Server
	srvCfg := httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
		TaskUseCase:     taskUC,
		Ready: func() error {
			readyCtx, cancel := context.WithTimeout(context.Background(), readyTimeout)
			defer cancel()
			_, err := remote.List(readyCtx, repository.ListOptions{Limit: 1})
			return err
		},
	}
	if webhookHandler != nil {
		srvCfg.WebhookHandler = webhookHandler
	}
	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
	}

	// Drain background persistence and webhook syncs before exit.
	if webhookHandler != nil {
		webhookHandler.Wait()
	}
	taskStore.Wait()

	logger.Info(ctx, "Server stopped gracefully")
}
