package tagexport

import (
	"archive/zip"
	"bytes"
	"fmt"

	"repair_hub/internal/domain/entities"
	"repair_hub/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

// PDF sheet geometry, in millimetres on A4 portrait.
const (
	tagsPerPage  = 6
	tagColumns   = 2
	sheetMargin  = 20.0
	qrSize       = 60.0
	columnPitch  = 80.0
	rowPitch     = 90.0
	headerOffset = 5.0
	captionGap   = 10.0
	headerText   = "UNASSIGNED REPAIR TAG"
	headerGrey   = 150
	headerPt     = 8.0
	captionPt    = 14.0
	pngPixels    = 512
)

// Exporter renders the blank-tag print queue as a ZIP of PNGs or a PDF sheet.
type Exporter struct {
	encoder interfaces.IQREncoder
}

var _ interfaces.ITagExporter = (*Exporter)(nil)

func NewExporter(encoder interfaces.IQREncoder) *Exporter {
	return &Exporter{encoder: encoder}
}

// ExportZIP writes one <value>.png per tag.
func (e *Exporter) ExportZIP(tags []entities.JobTag) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, tag := range tags {
		png, err := e.encoder.EncodePNG(tag.Value, pngPixels)
		if err != nil {
			return nil, err
		}
		w, err := zw.Create(tag.Value + ".png")
		if err != nil {
			return nil, fmt.Errorf("zip entry %s: %w", tag.Value, err)
		}
		if _, err := w.Write(png); err != nil {
			return nil, fmt.Errorf("zip entry %s: %w", tag.Value, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close zip: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportPDF lays tags out six per page in two columns, each with a header
// above the code and the identifier below it.
func (e *Exporter) ExportPDF(tags []entities.JobTag) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, tag := range tags {
		slot := i % tagsPerPage
		if slot == 0 {
			pdf.AddPage()
		}
		x := sheetMargin + float64(slot%tagColumns)*columnPitch
		y := sheetMargin + float64(slot/tagColumns)*rowPitch

		png, err := e.encoder.EncodePNG(tag.Value, pngPixels)
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("tag-%d", i)
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
		pdf.ImageOptions(name, x, y, qrSize, qrSize, false, opts, 0, "")

		pdf.SetFont("Helvetica", "", headerPt)
		pdf.SetTextColor(headerGrey, headerGrey, headerGrey)
		centreText(pdf, headerText, x, y-headerOffset)

		pdf.SetFont("Helvetica", "", captionPt)
		pdf.SetTextColor(0, 0, 0)
		centreText(pdf, tag.Value, x, y+qrSize+captionGap)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func centreText(pdf *fpdf.Fpdf, s string, left, baseline float64) {
	pdf.Text(left+qrSize/2-pdf.GetStringWidth(s)/2, baseline, s)
}
