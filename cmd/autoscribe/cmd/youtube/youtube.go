package youtube

import (
	"github.com/spf13/cobra"

	"autoscribe/cmd/autoscribe/cmd/bootstrap"
	"autoscribe/internal/app"
	"autoscribe/internal/app/converter"
	"autoscribe/internal/app/render"
)

var (
	language string
	format   string
)

func init() {
	Cmd.Flags().StringVarP(&language, "language", "l", "en", "caption language code")
	Cmd.Flags().StringVarP(&format, "format", "f", "txt", "output format: txt, srt, vtt, json or csv")
}

// Cmd represents the youtube command
var Cmd = &cobra.Command{
	Use:   "youtube <url>",
	Short: "Save the caption track of a YouTube video as a transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap.Setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		c, err := app.InitializeConverter(cfg, logger)
		if err != nil {
			return err
		}

		j, err := c.ConvertYouTube(cmd.Context(), args[0], converter.Options{
			Language: language,
			Format:   render.ParseFormat(format),
		})
		if err != nil {
			return err
		}

		bootstrap.PrintJob(cmd.OutOrStdout(), cfg, j)
		return nil
	},
}
