package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"autoscribe/cmd/autoscribe/cmd/bootstrap"
	"autoscribe/internal/app"
	"autoscribe/internal/app/util/files"
)

const shutdownTimeout = 30 * time.Second

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API

- POST /api/transcribe/file and /api/transcribe/youtube run jobs
- GET /api/download/:jobId/:filename returns transcripts
- Swagger UI is served at /swagger/index.html, metrics at /metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap.Setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		for _, dir := range []string{cfg.UploadDir, cfg.TranscriptsDir} {
			if err := files.EnsureDir(dir); err != nil {
				return err
			}
		}

		srv, err := app.InitializeServer(cfg, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Info("signal received", zap.String("addr", cfg.Addr()))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
