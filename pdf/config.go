package pdf

import "pkt.systems/ruled"

// Config holds worksheet rendering settings. All lengths are points.
type Config struct {
	PageSize     string  // named page size, used when PageWidth/PageHeight are zero
	PageWidth    float64 // custom page width
	PageHeight   float64 // custom page height
	Margin       float64
	RowHeight    float64 // 0 means max(60, FontSize)
	RowGap       float64
	PairSpacing  float64
	Style        string // "single" or "double"
	FontFamily   string
	FontFile     string // TTF path; empty with empty FontBytes requires a core font family
	FontBytes    []byte // TTF bytes, alternative to FontFile
	FontSize     float64
	NoFitToZone  bool // keep FontSize instead of fitting ascent to the writing zone
	FitMin       float64
	FitMax       float64
	Spacing      float64 // separator spaces after each tracing unit
	BaselineLift float64 // lift of the text baseline off the guide line
	TextInset    float64 // horizontal inset of tracing runs from the margins
	LineWidth    float64
	LineRGB      [3]int
	TextRGB      [3]int
	Footer       string // footer caption; empty uses a generated caption
	NoFooter     bool
}

// DefaultConfig returns a baseline configuration: A4, double-pair ruling,
// tracing text fitted into the writing zone.
func DefaultConfig() Config {
	return Config{
		PageSize:     "A4",
		Margin:       54,
		RowGap:       16,
		PairSpacing:  4,
		Style:        "double",
		FontFamily:   "Helvetica",
		FontSize:     64,
		FitMin:       ruled.DefaultFitMin,
		FitMax:       ruled.DefaultFitMax,
		Spacing:      1,
		BaselineLift: 0.5,
		TextInset:    8,
		LineWidth:    1.2,
		LineRGB:      [3]int{217, 217, 217},
		TextRGB:      [3]int{128, 128, 128},
	}
}

func applyConfig(dst *Config, src Config) {
	if src.PageSize != "" {
		dst.PageSize = src.PageSize
	}
	if src.PageWidth > 0 {
		dst.PageWidth = src.PageWidth
	}
	if src.PageHeight > 0 {
		dst.PageHeight = src.PageHeight
	}
	if src.Margin > 0 {
		dst.Margin = src.Margin
	}
	if src.RowHeight > 0 {
		dst.RowHeight = src.RowHeight
	}
	if src.RowGap > 0 {
		dst.RowGap = src.RowGap
	}
	if src.PairSpacing > 0 {
		dst.PairSpacing = src.PairSpacing
	}
	if src.Style != "" {
		dst.Style = src.Style
	}
	if src.FontFamily != "" {
		dst.FontFamily = src.FontFamily
	}
	if src.FontFile != "" {
		dst.FontFile = src.FontFile
	}
	if len(src.FontBytes) > 0 {
		dst.FontBytes = src.FontBytes
	}
	if src.FontSize > 0 {
		dst.FontSize = src.FontSize
	}
	if src.NoFitToZone {
		dst.NoFitToZone = true
	}
	if src.FitMin > 0 {
		dst.FitMin = src.FitMin
	}
	if src.FitMax > 0 {
		dst.FitMax = src.FitMax
	}
	if src.Spacing > 0 {
		dst.Spacing = src.Spacing
	}
	if src.BaselineLift > 0 {
		dst.BaselineLift = src.BaselineLift
	}
	if src.TextInset > 0 {
		dst.TextInset = src.TextInset
	}
	if src.LineWidth > 0 {
		dst.LineWidth = src.LineWidth
	}
	if src.LineRGB != [3]int{} {
		dst.LineRGB = src.LineRGB
	}
	if src.TextRGB != [3]int{} {
		dst.TextRGB = src.TextRGB
	}
	if src.Footer != "" {
		dst.Footer = src.Footer
	}
	if src.NoFooter {
		dst.NoFooter = true
	}
}
