package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"go-currency-converter/config"
	"go-currency-converter/convert"
	"go-currency-converter/erapi"
	"go-currency-converter/metrics"
	"go-currency-converter/web"
)

var (
	rootCmd = &cobra.Command{
		Use:     "converter",
		Short:   "Live currency converter web app",
		Version: "v1.0.0",
	}
	configFile string
)

func main() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file")
	rootCmd.AddCommand(serve())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the converter web server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	// The diagnostic log is append-only; every fetch attempt and
	// every error lands here as well as on stderr.
	logFile, err := os.OpenFile(cfg.Log.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening diagnostic log: %w", err)
	}
	defer logFile.Close()

	w := log.NewSyncWriter(io.MultiWriter(os.Stderr, logFile))
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	appMetrics := metrics.New(prometheus.NewRegistry())

	rates := erapi.NewService(cfg.Provider.URL, cfg.Provider.Timeout, log.With(logger, "component", "erapi"))
	rates = erapi.NewLoggingService(log.With(logger, "component", "erapi"), rates)
	rates = erapi.NewInstrumentingService(appMetrics, rates)

	converterService := convert.NewService(rates)
	converterService = convert.NewLoggingService(log.With(logger, "component", "convert"), converterService)

	server := web.NewServer(converterService, log.With(logger, "component", "web"), appMetrics, cfg.Server.Mode)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logger.Log("msg", "http server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case <-done:
	}
	logger.Log("msg", "shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Log("msg", "server stopped")
	return nil
}
