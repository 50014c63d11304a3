package ruled

// All layout math runs in PostScript points. Flags and configs may supply
// millimeters; they are normalized to points before any geometry is
// computed.

// Conversion constants between points and millimeters (72 pt per inch).
const (
	PtPerMm = 72.0 / 25.4
	MmPerPt = 25.4 / 72.0
)

// MmToPt converts millimeters to points.
func MmToPt(mm float64) float64 { return mm * PtPerMm }

// PtToMm converts points to millimeters.
func PtToMm(pt float64) float64 { return pt * MmPerPt }
