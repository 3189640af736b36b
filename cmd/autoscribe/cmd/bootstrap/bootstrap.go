// Package bootstrap loads configuration and logging shared by every command.
package bootstrap

import (
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"autoscribe/internal/app/job"
	"autoscribe/internal/app/logging"
	"autoscribe/internal/app/model"
	"autoscribe/internal/config"
)

// Verbose lowers the log level to debug
var Verbose bool

// Setup loads .env and the environment and builds the logger
func Setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	level := cfg.LogLevel
	if Verbose {
		level = "debug"
	}
	logger, err := logging.NewLogger(cfg.IsDevelopment(), level)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	return cfg, logger, nil
}

// PrintJob writes one line per result. With local storage the path of the
// written file is shown; otherwise the download locator.
func PrintJob(w io.Writer, cfg *config.Config, j *model.Job) {
	fmt.Fprintf(w, "job %s\n", j.ID)
	for _, r := range j.Results {
		where := r.DownloadURL
		if cfg.StorageBackend == "local" {
			if jobID, filename, ok := job.ParseLocator(r.DownloadURL); ok {
				where = filepath.Join(cfg.TranscriptsDir, jobID, filename)
			}
		}
		fmt.Fprintf(w, "  %s [%s] -> %s\n", r.OriginalFile, r.Service, where)
	}
}
