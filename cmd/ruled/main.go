// Command ruled generates printable handwriting-practice worksheets as
// PDF files: ruled guide lines with tracing text repeated across every
// other row, drawn in a Google Fonts family downloaded on first use.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/ruled"
	"pkt.systems/ruled/fonts"
	"pkt.systems/ruled/pdf"
	"pkt.systems/version"
)

const (
	defaultOutput = "output/worksheet.pdf"
	defaultFamily = "Solway"
	defaultWeight = 400
)

func init() {
	version.SetDefaultModule("pkt.systems/ruled")
}

func main() {
	var (
		text          string
		outPath       string
		fontFamily    string
		fontWeight    int
		fontFile      string
		cacheDir      string
		pageSize      string
		pageWidth     float64
		pageHeight    float64
		pageWidthMM   float64
		pageHeightMM  float64
		margin        float64
		marginMM      float64
		rowHeight     float64
		rowGap        float64
		pairSpacing   float64
		fontSize      float64
		styleName     string
		fitToZone     bool
		noFitToZone   bool
		fitMin        float64
		fitMax        float64
		spacing       float64
		baselineLift  float64
		footer        string
		noFooter      bool
		book          bool
		sequenceName  string
		listSequences bool
	)

	defaults := pdf.DefaultConfig()
	flags := pflag.NewFlagSet("ruled", pflag.ExitOnError)
	flags.StringVarP(&text, "text", "t", "", "Tracing text (default: built-in practice rotation)")
	flags.StringVarP(&outPath, "output", "o", defaultOutput, "Output PDF path ('-' for stdout)")
	flags.StringVar(&fontFamily, "font-family", defaultFamily, "Google Fonts family or a PDF core font")
	flags.IntVar(&fontWeight, "font-weight", defaultWeight, "Google Fonts weight")
	flags.StringVar(&fontFile, "font-file", "", "TTF path, skips the font download")
	flags.StringVar(&cacheDir, "cache-dir", fonts.DefaultCacheDir(), "Font cache directory")
	flags.StringVar(&pageSize, "page-size", defaults.PageSize, "Named page size (A4, Letter, ...)")
	flags.Float64Var(&pageWidth, "page-width", 0, "Custom page width in points")
	flags.Float64Var(&pageHeight, "page-height", 0, "Custom page height in points")
	flags.Float64Var(&pageWidthMM, "page-width-mm", 0, "Custom page width in millimeters (overrides --page-width)")
	flags.Float64Var(&pageHeightMM, "page-height-mm", 0, "Custom page height in millimeters (overrides --page-height)")
	flags.Float64Var(&margin, "margin", defaults.Margin, "Page margin in points")
	flags.Float64Var(&marginMM, "margin-mm", 0, "Page margin in millimeters (overrides --margin)")
	flags.Float64Var(&rowHeight, "row-height", 0, "Row height in points (0 matches the font size)")
	flags.Float64Var(&rowGap, "row-gap", defaults.RowGap, "Gap between rows in points")
	flags.Float64Var(&pairSpacing, "pair-spacing", defaults.PairSpacing, "Spacing inside a double-pair line pair in points")
	flags.Float64Var(&fontSize, "font-size", defaults.FontSize, "Base font size in points")
	flags.StringVar(&styleName, "style", defaults.Style, "Ruling style: single|double")
	flags.BoolVar(&fitToZone, "fit-to-zone", true, "Scale the font so the glyph ascent fills the writing zone")
	flags.BoolVar(&noFitToZone, "no-fit-to-zone", false, "Keep the base font size (same as --fit-to-zone=false)")
	flags.Float64Var(&fitMin, "fit-min", defaults.FitMin, "Lower clamp for the fitted font size in points")
	flags.Float64Var(&fitMax, "fit-max", defaults.FitMax, "Upper clamp for the fitted font size in points")
	flags.Float64Var(&spacing, "spacing", defaults.Spacing, "Spaces after each tracing unit")
	flags.Float64Var(&baselineLift, "baseline-lift", defaults.BaselineLift, "Baseline lift off the guide line in points")
	flags.StringVar(&footer, "footer", "", "Footer caption (default: generated)")
	flags.BoolVar(&noFooter, "no-footer", false, "Skip the footer caption")
	flags.BoolVarP(&book, "book", "b", false, "Generate the multi-section practice book")
	flags.StringVar(&sequenceName, "sequence", "default", "Built-in practice sequence when no --text is given")
	flags.BoolVar(&listSequences, "list-sequences", false, "List built-in practice sequences")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: ruled [flags]\n")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if listSequences {
		printSequences()
		return
	}

	if pageWidthMM > 0 {
		pageWidth = ruled.MmToPt(pageWidthMM)
	}
	if pageHeightMM > 0 {
		pageHeight = ruled.MmToPt(pageHeightMM)
	}
	if marginMM > 0 {
		margin = ruled.MmToPt(marginMM)
	}
	if (pageWidth > 0) != (pageHeight > 0) {
		fmt.Fprintln(os.Stderr, "custom page sizes need both --page-width and --page-height")
		os.Exit(2)
	}

	cfg := pdf.Config{
		PageSize:     pageSize,
		PageWidth:    pageWidth,
		PageHeight:   pageHeight,
		Margin:       margin,
		RowHeight:    rowHeight,
		RowGap:       rowGap,
		PairSpacing:  pairSpacing,
		Style:        styleName,
		FontFamily:   fontFamily,
		FontSize:     fontSize,
		NoFitToZone:  noFitToZone || !fitToZone,
		FitMin:       fitMin,
		FitMax:       fitMax,
		Spacing:      spacing,
		BaselineLift: baselineLift,
		Footer:       footer,
		NoFooter:     noFooter,
	}

	sequence, err := resolveSequence(text, sequenceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		printSequences()
		os.Exit(2)
	}

	if err := resolveFont(&cfg, fontFile, fontWeight, cacheDir); err != nil {
		fmt.Fprintf(os.Stderr, "resolve font: %v\n", err)
		os.Exit(1)
	}

	render := func(w io.Writer) error {
		if book {
			return pdf.RenderBook(pdf.BookRequest{Writer: w, Config: cfg})
		}
		return pdf.Render(pdf.RenderRequest{Writer: w, Config: cfg, Sequence: sequence})
	}

	saved, err := writeOutput(outPath, render)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		os.Exit(1)
	}
	if saved != "" {
		fmt.Printf("Saved: %s\n", saved)
	}
}

func printSequences() {
	for _, name := range ruled.AvailableSequences() {
		fmt.Fprintln(os.Stdout, name)
	}
}

func resolveSequence(text, name string) (ruled.Sequence, error) {
	if strings.TrimSpace(text) != "" {
		return ruled.NewSequence("text", []string{text}), nil
	}
	seq, ok := ruled.SequenceByName(name)
	if !ok {
		return ruled.Sequence{}, fmt.Errorf("unknown sequence %q", name)
	}
	return seq, nil
}

// resolveFont fills cfg.FontFile: an explicit TTF path wins, core fonts
// need no file, anything else goes through the Google Fonts cache.
func resolveFont(cfg *pdf.Config, fontFile string, weight int, cacheDir string) error {
	if fontFile != "" {
		path := normalizePath(fontFile)
		if err := ensureFont(path); err != nil {
			return err
		}
		cfg.FontFile = path
		return nil
	}
	if pdf.IsCoreFont(cfg.FontFamily) {
		return nil
	}
	resolver := fonts.NewResolver(normalizePath(cacheDir))
	path, err := resolver.Resolve(context.Background(), fonts.Spec{Family: cfg.FontFamily, Weight: weight})
	if err != nil {
		return err
	}
	cfg.FontFile = path
	return nil
}

// writeOutput renders into the target path through a temp file so a
// mid-render failure never leaves a partial PDF behind. It returns the
// saved path, or "" when the PDF went to stdout.
func writeOutput(path string, render func(io.Writer) error) (string, error) {
	if path == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return "", fmt.Errorf("refusing to write PDF to terminal; use -o/--output")
		}
		return "", render(os.Stdout)
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	tmp, err := os.CreateTemp(dir, ".ruled-*.pdf")
	if err != nil {
		return "", err
	}
	if err := render(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Rename(tmp.Name(), clean); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	return clean, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func ensureFont(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory")
	}
	if !strings.HasSuffix(strings.ToLower(info.Name()), ".ttf") {
		return fmt.Errorf("expected .ttf font file")
	}
	return nil
}
