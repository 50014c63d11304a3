package pdf

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"pkt.systems/ruled"
	"pkt.systems/ruled/fonts"
)

// RenderRequest contains inputs for rendering a single worksheet page.
type RenderRequest struct {
	Writer io.Writer
	Config Config
	// Sequence supplies the tracing items cycled across the writing rows.
	Sequence ruled.Sequence
}

// Render writes one page of ruled rows. Even-indexed rows carry tracing
// text from the sequence; odd rows stay blank for the learner to copy
// onto.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)

	s, err := newSheet(&cfg)
	if err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}

	s.doc.AddPage()
	topY := s.height - cfg.Margin
	count := ruled.RowCount(s.height, cfg.Margin, cfg.RowHeight, cfg.RowGap)
	rows := ruled.LayoutRows(topY, cfg.RowHeight, cfg.RowGap, cfg.PairSpacing, count, s.style)

	s.setTracingFont(rows[0])
	s.drawRules(rows)

	textRow := 0
	for i, row := range rows {
		if i%2 != 0 {
			continue
		}
		s.traceRow(row, req.Sequence.Item(textRow))
		textRow++
	}

	s.drawFooter()
	if err := s.doc.Output(req.Writer); err != nil {
		return fmt.Errorf("pdf render: output: %w", err)
	}
	return nil
}

// IsCoreFont reports whether name is one of the PDF base-14 families that
// need no font file.
func IsCoreFont(name string) bool {
	switch name {
	case "Courier", "Helvetica", "Times", "Symbol", "ZapfDingbats":
		return true
	default:
		return false
	}
}

// sheet bundles the fpdf document with the resolved page parameters. Row
// geometry runs on an upward y axis; pageY flips into fpdf's top-down
// axis at draw time.
type sheet struct {
	doc     *fpdf.Fpdf
	cfg     *Config
	style   ruled.RuleStyle
	width   float64
	height  float64
	metrics *fonts.Metrics // nil for core fonts
}

func newSheet(cfg *Config) (*sheet, error) {
	style, err := ruled.ParseStyle(cfg.Style)
	if err != nil {
		return nil, err
	}
	if cfg.Margin <= 0 {
		return nil, fmt.Errorf("margin must be positive")
	}
	if cfg.FontSize <= 0 {
		return nil, fmt.Errorf("font size must be positive")
	}
	if cfg.RowHeight <= 0 {
		cfg.RowHeight = 60
		if cfg.FontSize > cfg.RowHeight {
			cfg.RowHeight = cfg.FontSize
		}
	}

	metrics, err := loadMetrics(cfg)
	if err != nil {
		return nil, err
	}
	doc := newDoc(cfg)
	if err := registerFont(doc, cfg); err != nil {
		return nil, err
	}
	w, h := doc.GetPageSize()
	if w <= 2*cfg.Margin || h <= 2*cfg.Margin {
		return nil, fmt.Errorf("page %.0fx%.0f smaller than twice the %.0f margin", w, h, cfg.Margin)
	}
	return &sheet{doc: doc, cfg: cfg, style: style, width: w, height: h, metrics: metrics}, nil
}

// loadMetrics reads ascent metrics straight from the TTF. Core fonts have
// no font file; their descriptor ascent comes from fpdf instead.
func loadMetrics(cfg *Config) (*fonts.Metrics, error) {
	var (
		m   fonts.Metrics
		err error
	)
	switch {
	case len(cfg.FontBytes) > 0:
		m, err = fonts.ParseMetrics(cfg.FontBytes)
	case cfg.FontFile != "":
		m, err = fonts.ReadMetrics(cfg.FontFile)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("font metrics: %w", err)
	}
	return &m, nil
}

func newDoc(cfg *Config) *fpdf.Fpdf {
	if cfg.PageWidth > 0 && cfg.PageHeight > 0 {
		return fpdf.NewCustom(&fpdf.InitType{
			OrientationStr: "P",
			UnitStr:        "pt",
			Size:           fpdf.SizeType{Wd: cfg.PageWidth, Ht: cfg.PageHeight},
		})
	}
	return fpdf.New("P", "pt", cfg.PageSize, "")
}

func registerFont(doc *fpdf.Fpdf, cfg *Config) error {
	if cfg.FontFile != "" && len(cfg.FontBytes) > 0 {
		return fmt.Errorf("cannot mix a font path with embedded font bytes")
	}
	switch {
	case len(cfg.FontBytes) > 0:
		doc.AddUTF8FontFromBytes(cfg.FontFamily, "", cfg.FontBytes)
	case cfg.FontFile != "":
		doc.SetFontLocation(filepath.Dir(cfg.FontFile))
		doc.AddUTF8Font(cfg.FontFamily, "", filepath.Base(cfg.FontFile))
	default:
		if !IsCoreFont(cfg.FontFamily) {
			return fmt.Errorf("core font family required when no font file is given")
		}
	}
	doc.SetFont(cfg.FontFamily, "", cfg.FontSize)
	if err := doc.Error(); err != nil {
		return fmt.Errorf("font setup: %w", err)
	}
	return nil
}

// pageY flips an upward-axis coordinate into fpdf's top-down axis.
func (s *sheet) pageY(y float64) float64 { return s.height - y }

// setTracingFont selects the tracing font size, fitting the glyph ascent
// into the row's writing zone unless fitting is disabled.
func (s *sheet) setTracingFont(row ruled.RowSpan) {
	size := s.cfg.FontSize
	if !s.cfg.NoFitToZone {
		bounds := ruled.FitBounds{Min: s.cfg.FitMin, Max: s.cfg.FitMax}
		size = ruled.FitSize(size, s.ascentAt(size), row.ZoneHeight(), bounds)
	}
	s.doc.SetFont(s.cfg.FontFamily, "", size)
	s.doc.SetTextColor(s.cfg.TextRGB[0], s.cfg.TextRGB[1], s.cfg.TextRGB[2])
}

// ascentAt returns the glyph ascent in points at the given size: from the
// parsed TTF when one was supplied, else from fpdf's font descriptor in
// per-mille units. A zero result disables fitting for that font.
func (s *sheet) ascentAt(size float64) float64 {
	if s.metrics != nil {
		return s.metrics.AscentAt(size)
	}
	desc := s.doc.GetFontDesc(s.cfg.FontFamily, "")
	if desc.Ascent <= 0 {
		return 0
	}
	return float64(desc.Ascent) * size / 1000
}

func (s *sheet) drawRules(rows []ruled.RowSpan) {
	s.doc.SetDrawColor(s.cfg.LineRGB[0], s.cfg.LineRGB[1], s.cfg.LineRGB[2])
	s.doc.SetLineWidth(s.cfg.LineWidth)
	left, right := s.cfg.Margin, s.width-s.cfg.Margin
	for _, row := range rows {
		for _, line := range row.Lines {
			if line.Dashed {
				s.doc.SetDashPattern([]float64{3, 3}, 0)
			} else {
				s.doc.SetDashPattern([]float64{}, 0)
			}
			y := s.pageY(line.Y)
			s.doc.Line(left, y, right, y)
		}
	}
	s.doc.SetDashPattern([]float64{}, 0)
}

// traceRow tiles the item across the row's writing line. Blank items are
// a no-op, leaving the row empty.
func (s *sheet) traceRow(row ruled.RowSpan, item string) {
	left := s.cfg.Margin + s.cfg.TextInset
	right := s.width - s.cfg.Margin - s.cfg.TextInset
	run, ok := ruled.TileText(item, s.cfg.Spacing, right-left, s.doc.GetStringWidth)
	if !ok {
		return
	}
	y := s.pageY(row.Baseline() + s.cfg.BaselineLift)
	x := left
	for i := 0; i < run.Count; i++ {
		s.doc.Text(x, y, run.Unit)
		x += run.Width
	}
}

func (s *sheet) drawFooter() {
	if s.cfg.NoFooter {
		return
	}
	caption := s.cfg.Footer
	if caption == "" {
		caption = fmt.Sprintf("%s-pair ruling / %s / pkt.systems/ruled", s.style, s.cfg.FontFamily)
	}
	s.doc.SetFont("Helvetica", "", 8)
	s.doc.SetTextColor(s.cfg.TextRGB[0], s.cfg.TextRGB[1], s.cfg.TextRGB[2])
	x := s.width - s.cfg.Margin - s.doc.GetStringWidth(caption)
	s.doc.Text(x, s.pageY(s.cfg.Margin*0.5), caption)
}
