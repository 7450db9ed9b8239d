package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelflow/auth"
	"travelflow/ayush"
	"travelflow/bajaj"
	"travelflow/config"
	"travelflow/db"
	"travelflow/httpapi"
	"travelflow/provider"
)

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("bootstrap config: %v", err)
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("bootstrap database pool: %v", err)
	}
	defer pool.Close()

	caller := db.NewProcCaller(pool)

	ayushClient := provider.NewClient(cfg.Ayush, logger)
	tokens := provider.NewTokenCache(ayush.NewTokenAPI(ayushClient, cfg.Ayush.Username, cfg.Ayush.Password))
	ayushSvc := ayush.NewService(ayushClient, tokens, ayush.NewRepository(caller), logger)

	bajajClient := provider.NewClient(cfg.Bajaj, logger)
	bajajSvc := bajaj.NewService(bajajClient, bajaj.NewRepository(caller), cfg.Bajaj, logger)

	authSvc := auth.NewService(auth.NewRepository(caller), cfg.JWTSecret)

	server := httpapi.NewServer(ayushSvc, bajajSvc, authSvc, cfg.APIToken, logger)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.Handler(),
	}

	go func() {
		logger.Info("listening", "addr", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
