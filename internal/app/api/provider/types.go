package provider

import (
	"strings"

	apperrors "autoscribe/internal/app/errors"
)

// Choice identifies a transcription provider
type Choice string

const (
	ChoiceAuto       Choice = "auto"
	ChoiceElevateAI  Choice = "elevateai"
	ChoiceAssemblyAI Choice = "assemblyai"
	ChoiceWhisper    Choice = "whisper"

	// ChoiceYouTube is selected by input type, never by the caller
	ChoiceYouTube Choice = "youtube"
)

// ParseChoice maps a caller-supplied service name to a Choice. Empty means auto.
func ParseChoice(s string) (Choice, error) {
	switch c := Choice(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return ChoiceAuto, nil
	case ChoiceAuto, ChoiceElevateAI, ChoiceAssemblyAI, ChoiceWhisper:
		return c, nil
	default:
		return "", apperrors.Newf(apperrors.KindInvalidInput, "unsupported service: %s", s)
	}
}

func (c Choice) String() string { return string(c) }

// Info describes a provider for the capabilities endpoint
type Info struct {
	MaxSizeMB int `json:"maxSizeMB,omitempty"`
}

// Capabilities returns the upload limit each provider is routed by
func Capabilities() map[Choice]Info {
	return map[Choice]Info{
		ChoiceElevateAI:  {MaxSizeMB: elevateAIMaxMB},
		ChoiceAssemblyAI: {MaxSizeMB: assemblyAIMaxMB},
		ChoiceWhisper:    {MaxSizeMB: whisperMaxMB},
		ChoiceYouTube:    {},
	}
}
