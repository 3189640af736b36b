// @title autoscribe API
// @version 1.0
// @description Transcribes uploaded media through ElevateAI, AssemblyAI or Whisper and fetches YouTube captions.
// @host localhost:3001
// @BasePath /api
package main

import (
	"autoscribe/cmd/autoscribe/cmd"
)

func main() {
	cmd.Execute()
}
