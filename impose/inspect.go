package impose

import (
	"fmt"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/lvillar/pocketmod"
)

// inspectSource validates the source document before any drawing
// happens: it must be readable, carry exactly the page count the mode
// requires, and have no degenerate page geometry.
func inspectSource(inputPath string, mode pocketmod.Mode) error {
	dims, err := pdfapi.PageDimsFile(inputPath)
	if err != nil {
		return fmt.Errorf("impose: reading %s: %w", inputPath, err)
	}
	if want := mode.SourcePages(); len(dims) != want {
		return fmt.Errorf("impose: %s has %d pages, want %d: %w",
			inputPath, len(dims), want, pocketmod.ErrPageCount)
	}
	for i, d := range dims {
		if d.Width <= 0 || d.Height <= 0 {
			return fmt.Errorf("impose: %s page %d: %w", inputPath, i+1, pocketmod.ErrBadPageSize)
		}
	}
	return nil
}
