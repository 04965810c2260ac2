package impose

import (
	gofpdf "github.com/phpdave11/gofpdf"

	"github.com/lvillar/pocketmod"
)

// drawGuides overlays the folding aid on the composed sheet: dashed
// lines on every fold, a solid line on the center cut. Drawn faint so
// the guides stay visible without competing with page content.
func drawGuides(pdf *gofpdf.Fpdf) {
	const (
		w = pocketmod.SheetWidth
		h = pocketmod.SheetHeight
	)

	pdf.SetAlpha(0.5, "Normal")
	pdf.SetDrawColor(120, 120, 120)
	pdf.SetLineWidth(0.4)
	pdf.SetDashPattern([]float64{4, 3}, 0)

	// Vertical folds on the three quarter lines.
	for col := 1; col < pocketmod.GridCols; col++ {
		x := float64(col) * pocketmod.PanelWidth
		pdf.Line(x, 0, x, h)
	}

	// Horizontal fold on the midline, outside the cut.
	pdf.Line(0, h/2, w/4, h/2)
	pdf.Line(3*w/4, h/2, w, h/2)

	// The cut spans the middle two panels of the midline.
	pdf.SetDashPattern([]float64{}, 0)
	pdf.SetLineWidth(0.8)
	pdf.Line(w/4, h/2, 3*w/4, h/2)

	pdf.SetAlpha(1.0, "Normal")
}
