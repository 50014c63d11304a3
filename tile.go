package ruled

import "strings"

// MeasureFunc returns the rendered width of s in points at the font and
// size the caller has selected on its canvas.
type MeasureFunc func(s string) float64

// TileRun is a tracing unit repeated Count times across a line, each
// repetition advancing by Width from the previous one.
type TileRun struct {
	Unit  string
	Width float64
	Count int
}

// Separator returns the spacing inserted after each tracing unit: spacing
// whole spaces, never fewer than one.
func Separator(spacing float64) string {
	n := int(spacing)
	if n < 1 {
		n = 1
	}
	return strings.Repeat(" ", n)
}

// TileText builds the run that fills available points of line width with
// content. The content is trimmed; an empty result yields no run, as does
// a non-positive measured unit width or available width. Otherwise the
// unit repeats floor(available/width) times, at least once, so the last
// repetition may overrun the right edge by less than one unit width.
func TileText(content string, spacing, available float64, measure MeasureFunc) (TileRun, bool) {
	token := strings.TrimSpace(content)
	if token == "" {
		return TileRun{}, false
	}
	unit := token + Separator(spacing)
	width := measure(unit)
	if width <= 0 || available <= 0 {
		return TileRun{}, false
	}
	count := int(available / width)
	if count < 1 {
		count = 1
	}
	return TileRun{Unit: unit, Width: width, Count: count}, true
}
