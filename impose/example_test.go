package impose_test

import (
	"fmt"
	"os"
	"path/filepath"

	gofpdf "github.com/phpdave11/gofpdf"

	"github.com/lvillar/pocketmod"
	"github.com/lvillar/pocketmod/impose"
)

// createExamplePDF creates a simple PDF with labeled pages for use in
// examples.
func createExamplePDF(filename string, numPages int) error {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetFont("Helvetica", "", 48)
	for i := 1; i <= numPages; i++ {
		pdf.AddPage()
		pdf.Text(60, 120, fmt.Sprintf("Page %d", i))
	}
	return pdf.OutputFileAndClose(filename)
}

// ExampleFile demonstrates converting an 8-page document into a
// PocketMod sheet.
func ExampleFile() {
	dir, err := os.MkdirTemp("", "pocketmod")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, "zine.pdf")
	if err := createExamplePDF(input, 8); err != nil {
		fmt.Println(err)
		return
	}

	output := filepath.Join(dir, "zine_pocketmod-top.pdf")
	err = impose.File(input, output,
		impose.WithLayout(pocketmod.LayoutTop),
		impose.WithGuides(),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("created pocketmod sheet")
	// Output:
	// created pocketmod sheet
}
