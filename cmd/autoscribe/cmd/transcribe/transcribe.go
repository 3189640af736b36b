package transcribe

import (
	"github.com/spf13/cobra"

	"autoscribe/cmd/autoscribe/cmd/bootstrap"
	"autoscribe/internal/app"
	"autoscribe/internal/app/api/provider"
	"autoscribe/internal/app/converter"
	"autoscribe/internal/app/model"
	"autoscribe/internal/app/render"
)

var (
	service   string
	language  string
	format    string
	inputDir  string
	extension string
	count     int
	progress  bool
)

func init() {
	Cmd.Flags().StringVarP(&service, "service", "s", "auto", "auto, elevateai, assemblyai or whisper")
	Cmd.Flags().StringVarP(&language, "language", "l", "en", "language code")
	Cmd.Flags().StringVarP(&format, "format", "f", "txt", "output format: txt, srt, vtt, json or csv")
	Cmd.Flags().StringVarP(&inputDir, "dir", "d", "", "transcribe the files in this directory instead of the arguments")
	Cmd.Flags().StringVarP(&extension, "ext", "e", "", "with --dir, only files with this extension")
	Cmd.Flags().IntVarP(&count, "count", "c", 0, "with --dir, transcribe at most this many files, oldest first")
	Cmd.Flags().BoolVarP(&progress, "progress", "p", false, "always show the progress bar")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe [files...]",
	Short: "Transcribe local audio or video files",
	Long: `Transcribe local audio or video files

- Files are processed in order as one job; the first failure stops the job
- With --service auto each file goes to the provider its size calls for
- Transcripts are written to TRANSCRIPTS_DIR/<job id>/`,
	Args: func(cmd *cobra.Command, args []string) error {
		if inputDir == "" {
			return cobra.MinimumNArgs(1)(cmd, args)
		}
		return cobra.NoArgs(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		choice, err := provider.ParseChoice(service)
		if err != nil {
			return err
		}

		cfg, logger, err := bootstrap.Setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		pac, err := app.InitializeProgressAwareConverter(cfg, logger, converter.ProgressConfig{
			Enabled: converter.ShouldShowProgress(progress),
			Writer:  cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		defer pac.Close()

		opts := converter.Options{Service: choice, Language: language, Format: render.ParseFormat(format)}

		var j *model.Job
		if inputDir != "" {
			j, err = pac.ConvertDirWithProgress(cmd.Context(), inputDir, extension, count, opts)
		} else {
			j, err = pac.ConvertFilesWithProgress(cmd.Context(), args, opts)
		}
		if err != nil {
			return err
		}

		bootstrap.PrintJob(cmd.OutOrStdout(), cfg, j)
		return nil
	},
}
