// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/pdiddy/quizpress/internal/imagesize"
	"github.com/pdiddy/quizpress/internal/pairs"
	"github.com/pdiddy/quizpress/pkg/types"
)

// FixedLayoutRenderer draws every element at explicit coordinates on a single
// page, top to bottom. Each element's vertical position derives from the
// previous element's position and height. Less pretty than the flowed layout
// but immune to the edge cases (extreme aspect ratios, oversized content)
// that can break it.
type FixedLayoutRenderer struct {
	Layout types.PageLayout
}

// Vertical offsets in points, measured from the top of the page.
const (
	titleY      = 80
	idLineY     = 110
	questionTop = 150
	sectionGap  = 80
	headingGap  = 40
	minImageBox = 40
)

// Render writes the fixed-coordinate document for p to outPath.
func (r *FixedLayoutRenderer) Render(p pairs.Pair, outPath string) error {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(51, 51, 51)
	centerText(pdf, "Question", pageW, titleY)

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(102, 102, 102)
	centerText(pdf, "Question ID: "+p.ID, pageW, idLineY)

	questionBox := imagesize.Box{
		MaxWidth:  pageW - 4*types.Centimeter,
		MaxHeight: (pageH - 200) / 2.2,
	}
	answerTop := pageH / 2
	if h, ok := r.drawImage(pdf, p.QuestionPath, questionBox, pageW, questionTop); ok {
		answerTop = questionTop + h + sectionGap
	}

	pdf.SetDrawColor(85, 85, 85)
	pdf.Line(pageW/2-100, answerTop-30, pageW/2+100, answerTop-30)

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(85, 85, 85)
	centerText(pdf, "Answer", pageW, answerTop)

	answerBox := imagesize.Box{
		MaxWidth:  pageW - 4*types.Centimeter,
		MaxHeight: pageH - answerTop - 100,
	}
	if answerBox.MaxHeight < minImageBox {
		answerBox.MaxHeight = minImageBox
	}
	r.drawImage(pdf, p.AnswerPath, answerBox, pageW, answerTop+headingGap)

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("building %s: %w", outPath, err)
	}
	return nil
}

// drawImage places the image centered with its top edge at top. It returns
// the drawn height and whether the image loaded; on failure it draws an
// inline error line at the image's slot instead.
func (r *FixedLayoutRenderer) drawImage(pdf *fpdf.Fpdf, path string, box imagesize.Box, pageW, top float64) (float64, bool) {
	w, h := imagesize.Fit(path, box)

	opts := fpdf.ImageOptions{}
	info := pdf.RegisterImageOptions(path, opts)
	if info == nil || pdf.Err() {
		pdf.ClearError()
		pdf.SetFont("Helvetica", "", 12)
		pdf.SetTextColor(102, 102, 102)
		centerText(pdf, fmt.Sprintf("[image error: %s]", path), pageW, top+20)
		return minImageBox, false
	}

	x := (pageW - w) / 2
	pdf.ImageOptions(path, x, top, w, h, false, opts, 0, "")
	return h, true
}

// centerText draws s horizontally centered with its baseline at y.
func centerText(pdf *fpdf.Fpdf, s string, pageW, y float64) {
	pdf.Text((pageW-pdf.GetStringWidth(s))/2, y, s)
}
