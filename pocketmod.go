// Package pocketmod computes the panel layout for the PocketMod booklet
// format: a single sheet divided into a 4x2 grid of eight panels which,
// after a fixed sequence of folds and one center cut, reads as an
// eight-page booklet.
//
// The package is the pure geometric core. It knows nothing about PDF
// files; it maps booklet page indices to panel rectangles and rotations
// on an A4 landscape sheet, and fits arbitrary source page sizes into
// those panels. The impose package applies this layout to actual
// documents.
package pocketmod

import (
	"fmt"
	"math"
)

// Layout selects one of the two supported fold conventions. They differ
// in which way the opened booklet faces after folding, so each needs its
// own panel rotation assignment.
type Layout string

const (
	// LayoutTop places the upper panel row upright and the lower row
	// upside down.
	LayoutTop Layout = "top"
	// LayoutBottom is the mirror convention: upper row upside down,
	// lower row upright.
	LayoutBottom Layout = "bottom"
)

// ParseLayout converts a user-supplied layout name into a Layout.
func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case LayoutTop:
		return LayoutTop, nil
	case LayoutBottom:
		return LayoutBottom, nil
	}
	return "", newOpError("ParseLayout", fmt.Errorf("%q: %w", s, ErrUnknownLayout))
}

// Mode selects how booklet pages map to source document pages.
type Mode int

const (
	// EightPage draws source page n into booklet page n. The source
	// document must have exactly eight pages.
	EightPage Mode = iota
	// RepeatSingle draws source page 0 into every booklet page. The
	// source document must have exactly one page.
	RepeatSingle
)

// SourcePages returns the page count a source document must have in
// this mode.
func (m Mode) SourcePages() int {
	if m == RepeatSingle {
		return 1
	}
	return 8
}

// Sheet dimensions in points, A4 landscape. The grid is fixed: four
// columns by two rows of equal panels.
const (
	SheetWidth  = 841.89
	SheetHeight = 595.28

	GridCols = 4
	GridRows = 2

	PanelWidth  = SheetWidth / GridCols
	PanelHeight = SheetHeight / GridRows
)

// Rect is an axis-aligned rectangle in sheet coordinates, origin at the
// top-left corner, units in points.
type Rect struct {
	X, Y, W, H float64
}

// Panel describes where one booklet page lands on the sheet: the grid
// cell, its rectangle, and the rotation (degrees, one of 0/90/180/270)
// the page content needs so that it reads upright after folding.
type Panel struct {
	Page     int // booklet page index, 0..7
	Col, Row int
	Rect     Rect
	Rotation int
}

// slot is one entry of a fold-convention table: which grid cell holds a
// booklet page and how it must be rotated. The tables below are ordered
// by booklet page index and were verified against a folded paper
// prototype; changing any entry reorders or inverts pages in the
// physical booklet.
type slot struct {
	col, row int
	rotation int
}

var layoutTables = map[Layout][8]slot{
	LayoutTop: {
		{3, 0, 0}, // front cover
		{3, 1, 180},
		{2, 1, 180},
		{1, 1, 180},
		{0, 1, 180},
		{0, 0, 0},
		{1, 0, 0},
		{2, 0, 0}, // back cover
	},
	LayoutBottom: {
		{3, 0, 180}, // front cover
		{3, 1, 0},
		{2, 1, 0},
		{1, 1, 0},
		{0, 1, 0},
		{0, 0, 180},
		{1, 0, 180},
		{2, 0, 180}, // back cover
	},
}

// PanelRect returns the rectangle of the grid cell at (col, row).
func PanelRect(col, row int) Rect {
	return Rect{
		X: float64(col) * PanelWidth,
		Y: float64(row) * PanelHeight,
		W: PanelWidth,
		H: PanelHeight,
	}
}

// ResolveLayout returns the eight panel placements for the given fold
// convention, ordered by booklet page index. Each grid cell appears
// exactly once.
func ResolveLayout(layout Layout) ([]Panel, error) {
	table, ok := layoutTables[layout]
	if !ok {
		return nil, newOpError("ResolveLayout", fmt.Errorf("%q: %w", layout, ErrUnknownLayout))
	}
	panels := make([]Panel, len(table))
	for i, s := range table {
		panels[i] = Panel{
			Page:     i,
			Col:      s.col,
			Row:      s.row,
			Rect:     PanelRect(s.col, s.row),
			Rotation: s.rotation,
		}
	}
	return panels, nil
}

// PageSource returns the source document page index to draw for a
// booklet page. The caller guarantees page is in 0..7.
func PageSource(mode Mode, page int) int {
	if mode == RepeatSingle {
		return 0
	}
	return page
}

// FitRect scales a source page of size srcW x srcH uniformly to fit
// inside panel and centers it on whichever axis has slack. The aspect
// ratio of the source is never distorted and the result never exceeds
// the panel on either axis.
func FitRect(srcW, srcH float64, panel Rect) (Rect, error) {
	if srcW <= 0 || srcH <= 0 {
		return Rect{}, newOpError("FitRect", fmt.Errorf("%gx%g: %w", srcW, srcH, ErrBadPageSize))
	}
	scale := math.Min(panel.W/srcW, panel.H/srcH)
	w := srcW * scale
	h := srcH * scale
	return Rect{
		X: panel.X + (panel.W-w)/2,
		Y: panel.Y + (panel.H-h)/2,
		W: w,
		H: h,
	}, nil
}
