// Package export writes transcripts to spreadsheets.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tealeg/xlsx"

	apperrors "autoscribe/internal/app/errors"
	"autoscribe/internal/app/model"
	"autoscribe/internal/app/render"
)

const sheetName = "Transcript"

// ToExcel writes one row per segment. A transcript without segments becomes
// a single row holding the whole text.
func ToExcel(t *model.Transcript, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindInternal, "add sheet")
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "#"
	headerRow.AddCell().Value = "Start"
	headerRow.AddCell().Value = "End"
	headerRow.AddCell().Value = "Start (s)"
	headerRow.AddCell().Value = "End (s)"
	headerRow.AddCell().Value = "Text"

	segments := t.Segments
	if len(segments) == 0 {
		segments = []model.Segment{{Text: t.Text}}
	}

	for i, seg := range segments {
		row := sheet.AddRow()
		row.AddCell().SetInt(i + 1)
		row.AddCell().Value = render.Timestamp(seg.Start, '.')
		row.AddCell().Value = render.Timestamp(seg.End, '.')
		row.AddCell().SetFloatWithFormat(seg.Start, "0.000")
		row.AddCell().SetFloatWithFormat(seg.End, "0.000")
		row.AddCell().Value = seg.Text
	}

	if err := file.Save(outputFilePath); err != nil {
		return apperrors.Wrapf(err, apperrors.KindInternal, "save %s", outputFilePath)
	}
	return nil
}

// ReadTranscript decodes a transcript in the json output format
func ReadTranscript(r io.Reader) (*model.Transcript, error) {
	var t model.Transcript
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInvalidInput, "decode transcript")
	}
	return model.NewTranscript(t.Text, t.Segments), nil
}

// FileToExcel converts a json transcript file into a spreadsheet
func FileToExcel(inputPath, outputPath string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.KindInvalidInput, "open %s", inputPath)
	}
	defer f.Close()

	t, err := ReadTranscript(f)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}
	return ToExcel(t, outputPath)
}
