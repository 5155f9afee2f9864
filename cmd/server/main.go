package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"brightedge-report-api/internal/config"
	"brightedge-report-api/internal/parser"
	"brightedge-report-api/internal/server"
	"brightedge-report-api/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:          "report-api",
	Short:        "Serve the crawl/issues overview CSV to JSON endpoint",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")
		return run(cfgFile)
	},
}

func init() {
	rootCmd.Flags().String("config", "", "config file (default: ./report-api.yaml if present)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfgFile string) error {
	// .env is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	l := logger.NewWithLevel(os.Stderr, logger.ParseLevel(cfg.Log.Level))
	p := parser.New(parser.WithTopIssues(cfg.Report.TopIssues))

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      server.New(p, l, cfg.Server.MaxUploadBytes),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		l.Infof("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errc:
		l.Errorf("server error: %v", err)
		return err
	case <-stop:
	}

	l.Infof("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		l.Errorf("shutdown: %v", err)
		return err
	}
	l.Infof("bye")
	return nil
}
