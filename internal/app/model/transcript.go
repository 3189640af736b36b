package model

// Segment is a timestamped span of transcript text. Start and End are seconds.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcript is the canonical transcript every provider adapter produces and
// every renderer consumes.
type Transcript struct {
	Text     string    `json:"text"`
	Segments []Segment `json:"segments"`
}

// NewTranscript builds a Transcript, never leaving Segments nil so the JSON
// form always carries an array.
func NewTranscript(text string, segments []Segment) *Transcript {
	if segments == nil {
		segments = []Segment{}
	}
	return &Transcript{Text: text, Segments: segments}
}

// HasSegments reports whether the transcript carries any timed segments.
func (t *Transcript) HasSegments() bool {
	return t != nil && len(t.Segments) > 0
}

// Duration returns the end of the last segment, or 0 without segments.
func (t *Transcript) Duration() float64 {
	if !t.HasSegments() {
		return 0
	}
	return t.Segments[len(t.Segments)-1].End
}
