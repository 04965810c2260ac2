// Command pocketmod converts an 8-page A4 PDF into a single-sheet PDF
// laid out for the PocketMod folding scheme.
//
// Usage:
//
//	pocketmod [-l top|bottom] [-r] [-guides] input.pdf
//
// The result is written next to the input as
// <input>_pocketmod-<layout>.pdf. With -r the input must have a single
// page, which is repeated in all eight panels.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lvillar/pocketmod"
	"github.com/lvillar/pocketmod/impose"
)

func main() {
	var (
		layoutName string
		repeat     bool
		guides     bool
	)
	flag.StringVar(&layoutName, "l", string(pocketmod.LayoutTop), "fold layout: top or bottom")
	flag.StringVar(&layoutName, "layout", string(pocketmod.LayoutTop), "fold layout: top or bottom (alias of -l)")
	flag.BoolVar(&repeat, "r", false, "repeat a single source page in all eight panels")
	flag.BoolVar(&repeat, "repeat", false, "repeat a single source page in all eight panels (alias of -r)")
	flag.BoolVar(&guides, "guides", false, "draw fold and cut guides on the sheet")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	input := flag.Arg(0)

	layout, err := pocketmod.ParseLayout(layoutName)
	if err != nil {
		fail(err)
	}

	opts := []impose.Option{impose.WithLayout(layout)}
	if repeat {
		opts = append(opts, impose.WithRepeat())
	}
	if guides {
		opts = append(opts, impose.WithGuides())
	}

	output := outputPath(input, layout)
	if err := impose.File(input, output, opts...); err != nil {
		fail(err)
	}
	fmt.Println(output)
}

// outputPath derives the output file name: the input name with a
// _pocketmod-<layout> suffix, in the same directory.
func outputPath(input string, layout pocketmod.Layout) string {
	ext := filepath.Ext(input)
	if ext == "" {
		ext = ".pdf"
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return fmt.Sprintf("%s_pocketmod-%s%s", base, layout, ext)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: pocketmod [-l top|bottom] [-r] [-guides] input.pdf")
	flag.PrintDefaults()
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "pocketmod: %v\n", err)
	os.Exit(1)
}
