package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-multierror"

	"github.com/Kerhoff/RosterboT/internal/api"
	"github.com/Kerhoff/RosterboT/internal/config"
	"github.com/Kerhoff/RosterboT/internal/handlers"
	"github.com/Kerhoff/RosterboT/internal/metrics"
	"github.com/Kerhoff/RosterboT/internal/repository"
	"github.com/Kerhoff/RosterboT/internal/repository/postgres"
	"github.com/Kerhoff/RosterboT/internal/repository/sqlite"
	"github.com/Kerhoff/RosterboT/internal/router"
	"github.com/Kerhoff/RosterboT/internal/service"
	"github.com/Kerhoff/RosterboT/internal/telegram"
	"github.com/Kerhoff/RosterboT/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	l := logger.New(cfg.LogLevel, cfg.LogFormat)
	l.Info("Starting RosterboT...")

	// Database
	db, err := config.NewDatabase(cfg.DatabaseDriver, cfg.DatabaseURL, l)
	if err != nil {
		l.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.Migrate(); err != nil {
		l.Fatalf("Failed to run migrations: %v", err)
	}

	// Repositories
	var (
		chatRepo   repository.ChatGroupRepository
		eventRepo  repository.EventRepository
		personRepo repository.PersonRepository
	)
	switch cfg.DatabaseDriver {
	case config.DriverSQLite:
		chatRepo = sqlite.NewChatGroupRepository(db.DB)
		eventRepo = sqlite.NewEventRepository(db.DB)
		personRepo = sqlite.NewPersonRepository(db.DB)
	default:
		chatRepo = postgres.NewChatGroupRepository(db.DB)
		eventRepo = postgres.NewEventRepository(db.DB)
		personRepo = postgres.NewPersonRepository(db.DB)
	}

	m := metrics.New()

	// Service layer
	svc := service.New(l, m, cfg.Messages, cfg.Location, chatRepo, eventRepo, personRepo)

	// Command table, fixed from here on
	commands := router.New(l, handlers.All(svc, l)...)
	l.Infof("Commands: %v", commands.Aliases())

	// Telegram bot
	bot, err := telegram.NewBot(cfg.TelegramToken, commands, svc, m, l)
	if err != nil {
		l.Fatalf("Failed to create Telegram bot: %v", err)
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		l.Info("Received shutdown signal...")
		cancel()
	}()

	// HTTP API, with the webhook route only when Telegram pushes updates
	var updates api.UpdateHandler
	if cfg.WebhookURL != "" {
		updates = bot
	}
	apiServer := api.NewServer(svc, db, updates, l)
	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: apiServer.Handler(),
	}

	go func() {
		l.Infof("HTTP server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Errorf("HTTP server error: %v", err)
		}
	}()

	metricsServer := &http.Server{
		Addr:    ":" + cfg.PrometheusPort,
		Handler: api.MetricsHandler(m),
	}

	go func() {
		l.Infof("Metrics server listening on :%s", cfg.PrometheusPort)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Errorf("Metrics server error: %v", err)
		}
	}()

	if cfg.WebhookURL != "" {
		if err := bot.SetWebhook(cfg.WebhookURL); err != nil {
			l.Fatalf("Failed to set webhook: %v", err)
		}
	} else {
		// Start Telegram bot polling
		go func() {
			if err := bot.Start(ctx); err != nil {
				l.Errorf("Bot error: %v", err)
			}
		}()
	}

	l.Info("RosterboT started successfully")

	<-ctx.Done()

	l.Info("Shutting down HTTP servers...")
	var result *multierror.Error
	if err := httpServer.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := metricsServer.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		l.Errorf("Shutdown: %v", err)
	}

	l.Info("RosterboT stopped")
}
