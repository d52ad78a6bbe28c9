package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// pdfMarginMM is the offset applied on each side when placing the
// capture on the page, in millimetres.
const pdfMarginMM = 10.0

// ExportPNG captures the card and writes it to w as a PNG.  A nil card
// handle means the ticket visual was never materialized by the caller;
// that is a sequencing defect upstream, so the export aborts silently
// as a no-op.
func (r *Renderer) ExportPNG(w io.Writer, card *Card) error {
	if card == nil {
		return nil
	}
	img := r.RenderCard(*card)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode ticket png: %w", err)
	}
	return nil
}

// ExportPDF captures the card and writes a single-page A4 portrait PDF
// with the capture embedded at page width minus the side margins,
// height scaled proportionally, offset from the top-left corner.  The
// nil-handle no-op contract matches ExportPNG.
func (r *Renderer) ExportPDF(w io.Writer, card *Card) error {
	if card == nil {
		return nil
	}
	img := r.RenderCard(*card)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode ticket png: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()
	x, y, wMM, hMM := pdfPlacement(pageWidth, img.Bounds())

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("ticket", opts, &buf)
	pdf.ImageOptions("ticket", x, y, wMM, hMM, false, opts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("assemble ticket pdf: %w", err)
	}
	return nil
}

// pdfPlacement computes the page geometry for a capture: full page
// width minus a margin on each side, height scaled to preserve the
// capture's aspect ratio, positioned at the margin offset.
func pdfPlacement(pageWidth float64, bounds image.Rectangle) (x, y, w, h float64) {
	w = pageWidth - 2*pdfMarginMM
	h = float64(bounds.Dy()) * w / float64(bounds.Dx())
	return pdfMarginMM, pdfMarginMM, w, h
}
