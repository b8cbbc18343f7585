package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/guiyumin/urlcat/internal/categorize"
	"github.com/guiyumin/urlcat/internal/config"
	"github.com/guiyumin/urlcat/internal/logger"
	"github.com/guiyumin/urlcat/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the classifier over HTTP",
	Long: `Serve the classifier over HTTP.

Endpoints:
  GET  /health
  GET  /api/providers
  GET  /api/classify?url=<url>
  POST /api/classify   {"urls": ["...", "..."]}`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.LoadOrDefault()
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel})
	if err != nil {
		return err
	}
	defer log.Sync()

	categorize.SetLogger(log.With(logger.String("component", "categorize")))
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg.Server, log.With(logger.String("component", "server"))).Run(ctx)
}
