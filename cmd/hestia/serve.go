package hestia

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hestia-ai/hestia/pkg/config"
	"github.com/hestia-ai/hestia/pkg/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serve starts the HTTP API. It exposes POST /api/v1/chat for direct
questions, POST /api/v1/auto-respond for community posts, POST
/api/v1/search for raw retrieval, and /health for probes.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port to listen on")
	serveCmd.Flags().String("host", "localhost", "host to bind to")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if port, err := cmd.Flags().GetInt("port"); err == nil && cmd.Flags().Changed("port") {
		cfg.Server.Port = port
	}
	if host, err := cmd.Flags().GetString("host"); err == nil && cmd.Flags().Changed("host") {
		cfg.Server.Host = host
	}

	if err := validateServerConfig(cfg); err != nil {
		return err
	}

	log, parquetHandler := buildLogger(cfg)
	if parquetHandler != nil {
		defer parquetHandler.Flush()
	}

	client, err := buildAssistant(cfg, log)
	if err != nil {
		return err
	}

	srv := server.New(cfg, client)
	srv.Setup()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	return client.Close(shutdownCtx)
}

func validateServerConfig(cfg *config.Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", cfg.Server.Port)
	}
	if cfg.Database.URI == "" {
		return fmt.Errorf("database URI is required")
	}
	return nil
}
