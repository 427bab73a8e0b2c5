// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/pdiddy/quizpress/internal/imagesize"
	"github.com/pdiddy/quizpress/internal/pairs"
	"github.com/pdiddy/quizpress/pkg/types"
)

// FlowedRenderer lays the document out as a vertical flow: headings, the
// question image, a separator, and the answer image stack top to bottom and
// the page breaks automatically when content overflows.
type FlowedRenderer struct {
	Layout types.PageLayout
}

// Render writes the flowed document for p to outPath.
func (r *FlowedRenderer) Render(p pairs.Pair, outPath string) error {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(r.Layout.Margin, r.Layout.Margin, r.Layout.Margin)
	pdf.SetAutoPageBreak(true, r.Layout.Margin)
	pdf.AddPage()
	pageW, _ := pdf.GetPageSize()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(51, 51, 51)
	pdf.CellFormat(0, 30, "Question", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(0, 18, "Question ID: "+p.ID, "", 1, "C", false, 0, "")
	pdf.Ln(12)

	r.placeImage(pdf, p.QuestionPath, pageW)

	pdf.Ln(40)
	y := pdf.GetY()
	pdf.SetDrawColor(85, 85, 85)
	pdf.Line(pageW/2-100, y, pageW/2+100, y)
	pdf.Ln(20)

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(85, 85, 85)
	pdf.CellFormat(0, 24, "Answer", "", 1, "C", false, 0, "")
	pdf.Ln(12)

	r.placeImage(pdf, p.AnswerPath, pageW)

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("building %s: %w", outPath, err)
	}
	return nil
}

// placeImage centers the image at the current flow position, sized to the
// half-page box. A load failure degrades to a placeholder line naming the
// path; the document keeps building.
func (r *FlowedRenderer) placeImage(pdf *fpdf.Fpdf, path string, pageW float64) {
	maxW, maxH := r.Layout.HalfPageBox()
	w, h := imagesize.Fit(path, imagesize.Box{MaxWidth: maxW, MaxHeight: maxH})

	opts := fpdf.ImageOptions{}
	info := pdf.RegisterImageOptions(path, opts)
	if info == nil || pdf.Err() {
		pdf.ClearError()
		pdf.SetFont("Helvetica", "I", 12)
		pdf.SetTextColor(102, 102, 102)
		pdf.CellFormat(0, 16, fmt.Sprintf("[image could not be loaded: %s]", path), "", 1, "C", false, 0, "")
		return
	}

	x := (pageW - w) / 2
	pdf.ImageOptions(path, x, 0, w, h, true, opts, 0, "")
}
