package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/industrylens/industrylens/internal/engine"
	"github.com/industrylens/industrylens/internal/keyword"
	"github.com/industrylens/industrylens/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the classification HTTP API",
		Long: `Expose classification over HTTP.

Endpoints:
  GET  /health
  GET  /api/v1/industries
  POST /api/v1/classify
  POST /api/v1/classify/batch (multipart CSV upload, ?mode=keyword|llm)`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().Bool("release", false, "run gin in release mode")

	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("server.release", cmd.Flags().Lookup("release"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	table, err := loadKeywordTable()
	if err != nil {
		return fmt.Errorf("failed to load keyword table: %w", err)
	}

	adapter := newLLMAdapter()
	if initErr := adapter.Initialize(ctx); initErr != nil {
		slog.Warn("LLM adapter unavailable; llm mode will return error sentinels",
			"error", initErr)
	}

	eng := engine.New(keyword.NewClassifier(table), adapter, slog.Default())
	handler := server.NewHandler(eng, table.Industries(), adapter.State)

	router := server.SetupRouter(handler,
		viper.GetBool("server.release"),
		viper.GetStringSlice("server.allowed_origins"))

	addr := viper.GetString("server.addr")
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			return fmt.Errorf("server shutdown failed: %w", shutdownErr)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	}
}
