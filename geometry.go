package ruled

import (
	"fmt"
	"strings"
)

// RuleStyle selects the guide-line pattern drawn for each row.
type RuleStyle int

const (
	// StyleSinglePair draws three lines per row: solid top, dashed
	// midline, solid bottom.
	StyleSinglePair RuleStyle = iota
	// StyleDoublePair draws four solid lines per row: a close pair at the
	// top edge, a close pair at the bottom edge, open middle.
	StyleDoublePair
)

// String returns the flag spelling of the style.
func (s RuleStyle) String() string {
	switch s {
	case StyleDoublePair:
		return "double"
	default:
		return "single"
	}
}

// ParseStyle maps a flag value to a RuleStyle.
func ParseStyle(name string) (RuleStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "single", "single-pair":
		return StyleSinglePair, nil
	case "double", "double-pair":
		return StyleDoublePair, nil
	default:
		return StyleSinglePair, fmt.Errorf("unknown rule style %q (expected single|double)", name)
	}
}

// GuideLine is one horizontal rule at height Y.
type GuideLine struct {
	Y      float64
	Dashed bool
}

// RowSpan holds the guide lines of one ruled row, ordered top to bottom.
type RowSpan struct {
	Style RuleStyle
	Lines []GuideLine
}

// Top returns the y of the row's highest line.
func (s RowSpan) Top() float64 { return s.Lines[0].Y }

// Bottom returns the y of the row's lowest line.
func (s RowSpan) Bottom() float64 { return s.Lines[len(s.Lines)-1].Y }

// Baseline returns the line tracing text sits on: the bottom line for
// single-pair rows, the bottom-inner line for double-pair rows.
func (s RowSpan) Baseline() float64 {
	if s.Style == StyleDoublePair {
		return s.Lines[2].Y
	}
	return s.Lines[len(s.Lines)-1].Y
}

// ZoneHeight returns the height of the writing zone: baseline up to the
// top line for single-pair rows, baseline up to the top-inner line for
// double-pair rows. Glyph ascent is fitted against this height.
func (s RowSpan) ZoneHeight() float64 {
	if s.Style == StyleDoublePair {
		return s.Lines[1].Y - s.Baseline()
	}
	return s.Top() - s.Baseline()
}

// RowCount returns how many rows of rowHeight separated by rowGap fit
// between the page margins. At least one row is always produced, even on
// degenerate pages where it will overflow below the margin.
func RowCount(pageHeight, margin, rowHeight, rowGap float64) int {
	usable := pageHeight - 2*margin
	n := int((usable + rowGap) / (rowHeight + rowGap))
	if n < 1 {
		return 1
	}
	return n
}

// LayoutRows computes the guide lines for count rows. Row i's top edge is
// topY - i*(rowHeight+rowGap); y grows upward.
//
// For StyleDoublePair, a rowHeight of at most 2*pairSpacing makes the
// inner lines meet or cross the opposite pair. That is configuration
// misuse; the layout reports the coordinates as computed rather than
// silently reordering them.
func LayoutRows(topY, rowHeight, rowGap, pairSpacing float64, count int, style RuleStyle) []RowSpan {
	rows := make([]RowSpan, 0, count)
	for i := 0; i < count; i++ {
		top := topY - float64(i)*(rowHeight+rowGap)
		bottom := top - rowHeight
		var lines []GuideLine
		switch style {
		case StyleDoublePair:
			lines = []GuideLine{
				{Y: top},
				{Y: top - pairSpacing},
				{Y: bottom + pairSpacing},
				{Y: bottom},
			}
		default:
			lines = []GuideLine{
				{Y: top},
				{Y: top - rowHeight/2, Dashed: true},
				{Y: bottom},
			}
		}
		rows = append(rows, RowSpan{Style: style, Lines: lines})
	}
	return rows
}
