// Package render turns a canonical transcript into the downloadable text
// formats.
package render

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"autoscribe/internal/app/model"
)

// Format is an output format identifier
type Format string

const (
	FormatTXT  Format = "txt"
	FormatSRT  Format = "srt"
	FormatVTT  Format = "vtt"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// Formats lists the supported output formats
var Formats = []Format{FormatTXT, FormatSRT, FormatVTT, FormatJSON, FormatCSV}

// ParseFormat normalizes a caller-supplied format. Empty means txt; unknown
// values are kept as-is and render as plain text.
func ParseFormat(s string) Format {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatTXT
	}
	return f
}

// Render returns t in the given format. Unknown formats fall back to the
// plain transcript text.
func Render(t *model.Transcript, format Format) string {
	if t == nil {
		t = model.NewTranscript("", nil)
	}

	switch format {
	case FormatTXT:
		return t.Text
	case FormatSRT:
		return subtitles(t.Segments, ',')
	case FormatVTT:
		if len(t.Segments) == 0 {
			return ""
		}
		return "WEBVTT\n\n" + subtitles(t.Segments, '.')
	case FormatJSON:
		return toJSON(t)
	case FormatCSV:
		return toCSV(t.Segments)
	default:
		return t.Text
	}
}

// Timestamp formats seconds as HH:MM:SS<sep>mmm
func Timestamp(seconds float64, sep byte) string {
	whole := math.Floor(seconds)
	ms := int(math.Floor((seconds - whole) * 1000))
	total := int(whole)
	hh := total / 3600
	mm := (total % 3600) / 60
	ss := total % 60
	return fmt.Sprintf("%02d:%02d:%02d%c%03d", hh, mm, ss, sep, ms)
}

func subtitles(segments []model.Segment, sep byte) string {
	if len(segments) == 0 {
		return ""
	}

	blocks := make([]string, len(segments))
	for i, s := range segments {
		blocks[i] = fmt.Sprintf("%d\n%s --> %s\n%s\n",
			i+1, Timestamp(s.Start, sep), Timestamp(s.End, sep), strings.TrimSpace(s.Text))
	}
	return strings.Join(blocks, "\n")
}

func toJSON(t *model.Transcript) string {
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		return t.Text
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// toCSV always quotes the text column, which encoding/csv only does on demand
func toCSV(segments []model.Segment) string {
	if len(segments) == 0 {
		return ""
	}

	rows := make([]string, 0, len(segments)+1)
	rows = append(rows, "start,end,text")
	for _, s := range segments {
		text := `"` + strings.ReplaceAll(s.Text, `"`, `""`) + `"`
		rows = append(rows, fmt.Sprintf("%.3f,%.3f,%s", s.Start, s.End, text))
	}
	return strings.Join(rows, "\n")
}
