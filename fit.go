package ruled

// Default clamp bounds for fitted font sizes, in points. The bounds are a
// practical printing range, not a layout invariant; override them through
// FitBounds when a worksheet needs larger or smaller tracing text.
const (
	DefaultFitMin = 56.0
	DefaultFitMax = 80.0
)

// FitBounds clamps fitted font sizes. A zero Min or Max leaves that side
// unbounded.
type FitBounds struct {
	Min float64
	Max float64
}

// Clamp forces size into the bounds.
func (b FitBounds) Clamp(size float64) float64 {
	if b.Min > 0 && size < b.Min {
		return b.Min
	}
	if b.Max > 0 && size > b.Max {
		return b.Max
	}
	return size
}

// FitSize scales base so that a glyph ascent of ascent points (measured at
// base size) grows to zone points, then clamps the result. A non-positive
// base, ascent, or zone skips scaling and returns the clamped base.
func FitSize(base, ascent, zone float64, bounds FitBounds) float64 {
	if base <= 0 || ascent <= 0 || zone <= 0 {
		return bounds.Clamp(base)
	}
	return bounds.Clamp(base * zone / ascent)
}
