package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"wikoo-core/internal/adapter/api"
	"wikoo-core/internal/adapter/client"
	"wikoo-core/internal/adapter/mail"
	"wikoo-core/internal/adapter/store"
	"wikoo-core/internal/config"
	"wikoo-core/internal/domain/repository"
	"wikoo-core/internal/logger"
	"wikoo-core/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}
	if err := logger.Init(cfg.Logger, cfg.Server.Env); err != nil {
		logger.Fatal("failed to init logger", "error", err)
	}
	log := logger.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Completion backend. Without one every request is served a fallback.
	var completer repository.CompletionClient
	gemini, err := client.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.BaseURL, nil)
	if err != nil {
		log.Error("gemini client unavailable, serving fallbacks only", "error", err)
		completer = client.UnavailableClient{Err: err}
	} else {
		completer = gemini
	}

	// Redis for per-client token budgets
	var limiter repository.UsageLimiter
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis not reachable, usage limiter will fail open", "addr", cfg.Redis.Addr, "error", err)
		}
		limiter = store.NewRedisLimiter(rdb, cfg.Redis.TokenLimit)
	}

	var mailer repository.Mailer
	if cfg.SMTP.Enabled() {
		mailer = mail.NewSMTPMailer(mail.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	}

	invoker := usecase.NewInvoker(completer, limiter, cfg.Gemini.Timeout, log)
	orchestrator := usecase.NewOrchestrator(invoker, cfg.Gemini.ChatModel, cfg.Gemini.ReportModel, log)
	reminders := usecase.NewReminderService(mailer, cfg.Reminder.DefaultTo, log)
	clinics := usecase.NewClinicDirectory(nil)

	app := fiber.New(fiber.Config{
		AppName:      "Wikoo Backend",
		ErrorHandler: api.NewErrorHandler(log),
	})

	handler := api.NewHandler(orchestrator, clinics, reminders, log)
	api.SetupRouter(app, handler, api.AppInfo{Version: cfg.Server.Version, Env: cfg.Server.Env})

	go func() {
		<-ctx.Done()
		log.Info("shutting down gracefully, press Ctrl+C again to force")
		stop()
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Error("server forced to shutdown", "error", err)
		}
	}()

	log.Info("wikoo backend starting",
		"addr", cfg.Server.Addr(),
		"chat_model", cfg.Gemini.ChatModel,
		"report_model", cfg.Gemini.ReportModel,
		"usage_limiter", limiter != nil,
		"email_reminders", mailer != nil,
	)
	if err := app.Listen(cfg.Server.Addr()); err != nil {
		logger.Fatal("server error", "error", err)
	}
	log.Info("server exiting")
}
