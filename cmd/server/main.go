package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"mbc-landing-api/internal/common/config"
	"mbc-landing-api/internal/common/logger"
	"mbc-landing-api/internal/dispatch"
	"mbc-landing-api/internal/email"
	"mbc-landing-api/internal/server"
	"mbc-landing-api/internal/submission"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "console")
		fallback.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting submission API",
		zap.String("service", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
		zap.String("emailProvider", cfg.Email.Provider),
	)

	ctx := context.Background()

	resolver, err := submission.NewResolver(ctx, cfg, log)
	if err != nil {
		zapLog.Fatal("resolver initialization failed", zap.Error(err))
	}

	renderer, err := email.NewRenderer(cfg.Email.FollowUpMessage)
	if err != nil {
		zapLog.Fatal("renderer initialization failed", zap.Error(err))
	}

	dispatcher := dispatch.New(renderer, log, time.Duration(cfg.Email.SendTimeout)*time.Millisecond)
	initiator := submission.NewInitiator(cfg.DocuSeal, log)
	coordinator := submission.NewCoordinator(resolver, dispatcher, initiator, log)

	handlers := server.NewHandlers(coordinator, log, cfg.App.Name)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      server.NewRouter(handlers),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}

	go func() {
		zapLog.Info("listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zapLog.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("shutdown complete")
}
