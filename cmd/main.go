// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/flowtel/admin-backend/internal/config"
	"github.com/flowtel/admin-backend/internal/database"
	"github.com/flowtel/admin-backend/internal/handler"
	"github.com/flowtel/admin-backend/internal/logger"
	"github.com/flowtel/admin-backend/internal/mailer"
	"github.com/flowtel/admin-backend/internal/repository"
	"github.com/flowtel/admin-backend/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = zlog.Sync() }()

	// ── Database ─────────────────────────────────────────────────────────
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()
	zlog.Info("connected to postgres")

	if err := database.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	zlog.Info("migrations applied")

	// ── Wire up layers ───────────────────────────────────────────────────
	meetingRepo := repository.NewMeetingRepository(pool)
	slotRepo := repository.NewSlotRepository(pool)
	resultRepo := repository.NewResultRepository(pool)
	demoRepo := repository.NewDemoRepository(pool)
	newsletterRepo := repository.NewNewsletterRepository(pool)

	mail, err := mailer.New(cfg, zlog)
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}

	authSvc := service.NewAuthService(cfg.AdminUsername, cfg.AdminPasswordHash, cfg.JWTSecret)
	meetingSvc := service.NewMeetingService(meetingRepo, slotRepo, zlog)
	slotSvc := service.NewSlotService(slotRepo, zlog)
	resultSvc := service.NewResultService(resultRepo, meetingRepo)
	demoSvc := service.NewDemoService(demoRepo)
	newsletterSvc := service.NewNewsletterService(newsletterRepo)
	notifySvc := service.NewNotificationService(
		repository.NewFeedSources(meetingRepo, demoRepo, newsletterRepo))

	router := handler.NewRouter(handler.Handlers{
		Auth:          handler.NewAuthHandler(authSvc),
		Meetings:      handler.NewMeetingHandler(meetingSvc, mail, zlog),
		Slots:         handler.NewSlotHandler(slotSvc),
		Results:       handler.NewResultHandler(resultSvc),
		Demos:         handler.NewDemoHandler(demoSvc),
		Newsletter:    handler.NewNewsletterHandler(newsletterSvc),
		Notifications: handler.NewNotificationHandler(notifySvc),

		AuthService:    authSvc,
		Logger:         zlog,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	// ── Start server with graceful shutdown ──────────────────────────────
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case sig := <-quit:
		zlog.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	zlog.Info("server stopped")
	return nil
}
