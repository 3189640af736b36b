package provider

const (
	megabyte = 1024 * 1024

	whisperMaxMB    = 25
	elevateAIMaxMB  = 450
	assemblyAIMaxMB = 2048
)

// SelectService chooses a provider from the input size alone. Bounds are
// inclusive. Inputs above the AssemblyAI limit still go to AssemblyAI; the
// provider is left to reject them.
func SelectService(sizeBytes int64) Choice {
	switch {
	case sizeBytes <= whisperMaxMB*megabyte:
		return ChoiceWhisper
	case sizeBytes <= elevateAIMaxMB*megabyte:
		return ChoiceElevateAI
	default:
		return ChoiceAssemblyAI
	}
}
