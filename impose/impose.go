// Package impose converts a source PDF into a single-sheet PocketMod
// booklet layout.
//
// It uses the pdfcpu api to validate the source document and the gofpdi
// contrib package to import its pages as templates into the output
// sheet, placed according to the pocketmod layout tables.
package impose

import (
	"fmt"
	"io"
	"os"

	gofpdf "github.com/phpdave11/gofpdf"
	"github.com/phpdave11/gofpdf/contrib/gofpdi"

	"github.com/lvillar/pocketmod"
)

// File converts the PDF at inputPath into a PocketMod sheet and saves
// it to outputPath. The output file is only created once the whole
// sheet has been composed, so a failed conversion never leaves a
// partial file behind.
func File(inputPath, outputPath string, opts ...Option) error {
	pdf, err := build(inputPath, newConfig(opts))
	if err != nil {
		return err
	}
	return writePDFToFile(pdf, outputPath)
}

// Write converts the PDF at inputPath and writes the sheet to w.
func Write(w io.Writer, inputPath string, opts ...Option) error {
	pdf, err := build(inputPath, newConfig(opts))
	if err != nil {
		return err
	}
	return writePDF(pdf, w)
}

// template is an imported source page: its gofpdi template ID and the
// MediaBox dimensions used for fitting.
type template struct {
	id   int
	w, h float64
}

// build composes the full sheet in memory.
func build(inputPath string, cfg config) (*gofpdf.Fpdf, error) {
	panels, err := pocketmod.ResolveLayout(cfg.layout)
	if err != nil {
		return nil, err
	}
	if err := inspectSource(inputPath, cfg.mode); err != nil {
		return nil, err
	}

	pdf := newSheet()
	imp := gofpdi.NewImporter()

	// Each distinct source page is imported once; in repeat mode all
	// eight panels share a single template.
	imported := make(map[int]template)

	for _, p := range panels {
		src := pocketmod.PageSource(cfg.mode, p.Page)
		t, ok := imported[src]
		if !ok {
			t = importPage(pdf, imp, inputPath, src+1)
			imported[src] = t
		}
		if err := placePanel(pdf, imp, t, p); err != nil {
			return nil, err
		}
	}

	if cfg.guides {
		drawGuides(pdf)
	}

	if pdf.Err() {
		return nil, fmt.Errorf("impose: composing sheet: %w", pdf.Error())
	}
	return pdf, nil
}

// newSheet creates the empty A4 landscape output sheet.
func newSheet() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: pocketmod.SheetWidth, Ht: pocketmod.SheetHeight})
	return pdf
}

// placePanel draws one imported page into its panel, scaled to fit and
// rotated about the panel center.
func placePanel(pdf *gofpdf.Fpdf, imp *gofpdi.Importer, t template, p pocketmod.Panel) error {
	fitW, fitH := t.w, t.h
	quarterTurn := p.Rotation == 90 || p.Rotation == 270
	if quarterTurn {
		// The panel receives the rotated bounding box.
		fitW, fitH = t.h, t.w
	}
	dest, err := pocketmod.FitRect(fitW, fitH, p.Rect)
	if err != nil {
		return err
	}

	if p.Rotation == 0 {
		imp.UseImportedTemplate(pdf, t.id, dest.X, dest.Y, dest.W, dest.H)
		return nil
	}

	// Draw the template unrotated in the rectangle that the rotation
	// about the panel center carries onto dest.
	cx := p.Rect.X + p.Rect.W/2
	cy := p.Rect.Y + p.Rect.H/2
	w, h := dest.W, dest.H
	if quarterTurn {
		w, h = dest.H, dest.W
	}

	pdf.TransformBegin()
	pdf.TransformRotate(-float64(p.Rotation), cx, cy)
	imp.UseImportedTemplate(pdf, t.id, cx-w/2, cy-h/2, w, h)
	pdf.TransformEnd()
	return nil
}

// importPage imports a single page from the source file into the target
// PDF and looks up its MediaBox dimensions.
func importPage(pdf *gofpdf.Fpdf, imp *gofpdi.Importer, sourceFile string, pageNum int) template {
	t := template{id: imp.ImportPage(pdf, sourceFile, pageNum, "/MediaBox")}
	sizes := imp.GetPageSizes()
	if dims, ok := sizes[pageNum]; ok {
		if mb, ok := dims["/MediaBox"]; ok {
			t.w = mb["w"]
			t.h = mb["h"]
		}
	}
	if t.w == 0 || t.h == 0 {
		t.w = 595.28 // A4 default
		t.h = 841.89
	}
	return t
}

// writePDF writes the composed sheet to a writer.
func writePDF(pdf *gofpdf.Fpdf, w io.Writer) error {
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("impose: writing sheet: %w", err)
	}
	return nil
}

// writePDFToFile writes the composed sheet to a file.
func writePDFToFile(pdf *gofpdf.Fpdf, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("impose: creating %s: %w", filename, err)
	}
	defer f.Close()
	return writePDF(pdf, f)
}
