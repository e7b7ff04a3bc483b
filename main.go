package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handler "github.com/layon940/cine-skeletor-bot/api"
)

func main() {
	a, err := handler.App()
	if err != nil {
		os.Stderr.WriteString("startup failed: " + err.Error() + "\n")
		os.Exit(1)
	}

	if a.Poster != nil {
		if err := a.Poster.Start(); err != nil {
			a.Logger.Error().Err(err).Msg("News poster failed to start")
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", handler.HealthHandler)
	mux.HandleFunc("/api/webhook", handler.Handler)

	server := &http.Server{
		Addr:         a.Cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		a.Logger.Info().Str("addr", server.Addr).Msg("Webhook server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.Logger.Info().Msg("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = server.Shutdown(ctx)
	a.Close(ctx)
	a.Logger.Info().Msg("Server stopped")
}
