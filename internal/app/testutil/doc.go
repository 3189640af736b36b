// Package testutil provides shared testing utilities:
//
//   - MockTranscriber: testify mock of provider.Transcriber
//   - MockStore: testify mock of storage.Store
//   - Fixtures: sample transcripts and temporary audio inputs
//
// # Usage
//
//	tr := testutil.NewMockTranscriber(provider.ChoiceWhisper)
//	tr.On("Transcribe", mock.Anything, mock.Anything, "en").
//	    Return(testutil.SampleTranscript(), nil)
package testutil
