package pdf

import (
	"fmt"
	"io"

	"pkt.systems/ruled"
)

// BookRequest contains inputs for rendering a multi-section practice
// book.
type BookRequest struct {
	Writer io.Writer
	Config Config
	// Sections are rendered in order, each starting on a fresh page.
	// Empty Sections selects ruled.BookSections.
	Sections []ruled.Section
}

// RenderBook writes one ruled row per section item, breaking to a new
// page whenever the next row would cross the bottom margin. The section
// header is redrawn at the top of every page it spans.
func RenderBook(req BookRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("pdf book: writer is nil")
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)
	sections := req.Sections
	if len(sections) == 0 {
		sections = ruled.BookSections()
	}

	s, err := newSheet(&cfg)
	if err != nil {
		return fmt.Errorf("pdf book: %w", err)
	}

	topY := s.height - cfg.Margin
	for _, section := range sections {
		s.startSectionPage(section.Title)
		y := topY
		for _, item := range section.Items {
			if y-cfg.RowHeight < cfg.Margin {
				s.startSectionPage(section.Title)
				y = topY
			}
			row := ruled.LayoutRows(y, cfg.RowHeight, cfg.RowGap, cfg.PairSpacing, 1, s.style)[0]
			s.drawRules([]ruled.RowSpan{row})
			s.traceRow(row, item)
			y -= cfg.RowHeight + cfg.RowGap
		}
	}

	s.drawFooter()
	if err := s.doc.Output(req.Writer); err != nil {
		return fmt.Errorf("pdf book: output: %w", err)
	}
	return nil
}

// startSectionPage opens a new page with the section header and restores
// the tracing font afterward.
func (s *sheet) startSectionPage(title string) {
	s.doc.AddPage()
	s.doc.SetFont("Helvetica", "", 12)
	s.doc.SetTextColor(s.cfg.TextRGB[0], s.cfg.TextRGB[1], s.cfg.TextRGB[2])
	s.doc.Text(s.cfg.Margin, s.cfg.Margin*0.5, title)
	topRow := ruled.LayoutRows(s.height-s.cfg.Margin, s.cfg.RowHeight, s.cfg.RowGap, s.cfg.PairSpacing, 1, s.style)[0]
	s.setTracingFont(topRow)
}
