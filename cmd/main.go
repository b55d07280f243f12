package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RafalauriSantos/totask-server/config"
	"github.com/RafalauriSantos/totask-server/db"
	authhandler "github.com/RafalauriSantos/totask-server/internal/auth/handler"
	authrepo "github.com/RafalauriSantos/totask-server/internal/auth/repository/postgres"
	authservice "github.com/RafalauriSantos/totask-server/internal/auth/service"
	"github.com/RafalauriSantos/totask-server/internal/mail"
	taskhandler "github.com/RafalauriSantos/totask-server/internal/task/handler"
	taskrepo "github.com/RafalauriSantos/totask-server/internal/task/repository/postgres"
	taskservice "github.com/RafalauriSantos/totask-server/internal/task/service"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()
	log := setupLogger(cfg.Env)

	log.Info("starting totask server", slog.String("env", cfg.Env))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Error("failed to connect to database", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := db.InitSchema(ctx, dbPool); err != nil {
		log.Error("failed to initialize schema", slog.String("err", err.Error()))
		os.Exit(1)
	}

	var mailer mail.Sender
	if cfg.MailConfigured() {
		mailer = &mail.SMTPMailer{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
		}
	} else {
		log.Warn("SMTP not configured, reset links will be logged")
		mailer = &mail.LogMailer{Log: log}
	}

	validate := validator.New()

	userRepo := authrepo.NewPostgresRepository(dbPool)
	tokenService := authservice.NewTokenService(cfg.JWTSecret, cfg.TokenExpiryMin)
	userService := authservice.NewUserService(userRepo, tokenService, mailer, cfg, log)
	authHandler := authhandler.NewAuthHandler(userService, validate)

	taskRepository := taskrepo.NewPostgresRepository(dbPool)
	taskService := taskservice.NewTaskService(taskRepository)
	taskHandler := taskhandler.NewTaskHandler(taskService)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
	}))

	authhandler.RegisterRoutes(app, authHandler)
	taskhandler.RegisterRoutes(app, taskHandler, authhandler.AuthRequired(tokenService))

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error("server failed", slog.String("err", err.Error()))
			cancel()
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigs:
		log.Info("shutdown signal received")
	case <-ctx.Done():
	}

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Error("server shutdown error", slog.String("err", err.Error()))
	} else {
		log.Info("server stopped gracefully")
	}
}

func setupLogger(env string) *slog.Logger {
	if env == "development" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
