package fonts

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestParseMetrics(t *testing.T) {
	m, err := ParseMetrics(goregular.TTF)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.UnitsPerEm <= 0 {
		t.Fatalf("UnitsPerEm = %d, want > 0", m.UnitsPerEm)
	}
	if m.Ascent <= 0 || m.Ascent > m.UnitsPerEm*2 {
		t.Fatalf("Ascent = %d looks wrong for upem %d", m.Ascent, m.UnitsPerEm)
	}
	if m.Family == "" {
		t.Fatalf("expected a family name")
	}
}

func TestParseMetricsRejectsGarbage(t *testing.T) {
	if _, err := ParseMetrics([]byte("<html>error page</html>")); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := ParseMetrics(nil); err == nil {
		t.Fatalf("expected parse error for empty input")
	}
}

func TestAscentAtScalesLinearly(t *testing.T) {
	m, err := ParseMetrics(goregular.TTF)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	at64 := m.AscentAt(64)
	if at64 <= 0 || at64 > 64*1.5 {
		t.Fatalf("AscentAt(64) = %v out of plausible range", at64)
	}
	if got := m.AscentAt(128); math.Abs(got-2*at64) > 1e-9 {
		t.Fatalf("AscentAt(128) = %v, want %v", got, 2*at64)
	}
	if got := (Metrics{}).AscentAt(64); got != 0 {
		t.Fatalf("zero metrics AscentAt = %v, want 0", got)
	}
}

func TestReadMetrics(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	m, err := ReadMetrics(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if m.UnitsPerEm <= 0 {
		t.Fatalf("UnitsPerEm = %d, want > 0", m.UnitsPerEm)
	}
	if _, err := ReadMetrics(filepath.Join(dir, "missing.ttf")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
