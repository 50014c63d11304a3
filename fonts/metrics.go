package fonts

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Metrics carries the vertical font measurements the worksheet fitter
// needs, in font units.
type Metrics struct {
	Family     string
	UnitsPerEm int
	Ascent     int
	Descent    int
}

// AscentAt returns the glyph ascent in points at the given font size.
func (m Metrics) AscentAt(size float64) float64 {
	if m.UnitsPerEm <= 0 {
		return 0
	}
	return float64(m.Ascent) * size / float64(m.UnitsPerEm)
}

// ParseMetrics parses raw TTF/OTF bytes and extracts Metrics. It doubles
// as the payload check for downloaded fonts: HTML error pages and
// truncated downloads fail here.
func ParseMetrics(data []byte) (Metrics, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return Metrics{}, fmt.Errorf("parse font: %w", err)
	}
	upem := int(f.UnitsPerEm())
	if upem <= 0 {
		return Metrics{}, fmt.Errorf("parse font: invalid units per em %d", upem)
	}
	var buf sfnt.Buffer
	fm, err := f.Metrics(&buf, fixed.Int26_6(upem<<6), font.HintingNone)
	if err != nil {
		return Metrics{}, fmt.Errorf("font metrics: %w", err)
	}
	family, _ := f.Name(&buf, sfnt.NameIDFamily)
	return Metrics{
		Family:     family,
		UnitsPerEm: upem,
		Ascent:     fm.Ascent.Round(),
		Descent:    fm.Descent.Round(),
	}, nil
}

// ReadMetrics loads a font file and extracts Metrics.
func ReadMetrics(path string) (Metrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metrics{}, fmt.Errorf("read font: %w", err)
	}
	return ParseMetrics(data)
}
