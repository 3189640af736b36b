package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"autoscribe/cmd/autoscribe/cmd/bootstrap"
	"autoscribe/cmd/autoscribe/cmd/export"
	"autoscribe/cmd/autoscribe/cmd/serve"
	"autoscribe/cmd/autoscribe/cmd/transcribe"
	"autoscribe/cmd/autoscribe/cmd/version"
	"autoscribe/cmd/autoscribe/cmd/youtube"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "autoscribe",
	Short: "Transcribe audio and video through hosted speech-to-text providers",
	Long: `Transcribe audio and video through hosted speech-to-text providers.
- Files are routed to Whisper, ElevateAI or AssemblyAI by size, or to the provider you pick
- YouTube videos are transcribed from their caption track
- Transcripts are rendered as txt, srt, vtt, json or csv`,
	SilenceUsage:     true,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(youtube.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&bootstrap.Verbose, "verbose", "V", false, "verbose output")
}
