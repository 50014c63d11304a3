package pdf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"pkt.systems/ruled"
)

func TestRenderWorksheetCoreFont(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Writer:   &out,
		Config:   Config{FontFamily: "Courier"},
		Sequence: ruled.NewSequence("text", []string{"Aa Bb Cc"}),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out.Bytes(), []byte("%PDF")) {
		t.Fatalf("unexpected pdf header: %q", out.Bytes()[:8])
	}
	if !bytes.Contains(out.Bytes(), []byte("/Count 1")) {
		t.Fatalf("expected a single page")
	}
}

func TestRenderWorksheetEmbeddedFont(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Writer: &out,
		Config: Config{
			FontFamily: "Go",
			FontBytes:  goregular.TTF,
			Style:      "single",
		},
		Sequence: ruled.DefaultSequence(),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out.Bytes(), []byte("%PDF")) {
		t.Fatalf("unexpected pdf header: %q", out.Bytes()[:8])
	}
}

func TestRenderWorksheetFontFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	var out bytes.Buffer
	err := Render(RenderRequest{
		Writer: &out,
		Config: Config{
			FontFamily: "Go",
			FontFile:   path,
		},
		Sequence: ruled.NewSequence("text", []string{"fox"}),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out.Bytes(), []byte("%PDF")) {
		t.Fatalf("unexpected pdf header: %q", out.Bytes()[:8])
	}
}

func TestRenderWorksheetCustomPageSize(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Writer: &out,
		Config: Config{
			FontFamily: "Helvetica",
			PageWidth:  ruled.MmToPt(210),
			PageHeight: ruled.MmToPt(148), // A5 landscape
			Margin:     30,
			RowHeight:  40,
		},
		Sequence: ruled.NewSequence("text", []string{"Aa"}),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out.Bytes(), []byte("%PDF")) {
		t.Fatalf("unexpected pdf header: %q", out.Bytes()[:8])
	}
}

func TestRenderNilWriter(t *testing.T) {
	err := Render(RenderRequest{Sequence: ruled.DefaultSequence()})
	if err == nil {
		t.Fatalf("expected error for nil writer")
	}
}

func TestRenderValidation(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{name: "margin swallows page", cfg: Config{FontFamily: "Courier", Margin: 400}},
		{name: "unknown style", cfg: Config{FontFamily: "Courier", Style: "triple"}},
		{name: "non-core family without file", cfg: Config{FontFamily: "Solway"}},
		{name: "font path and bytes together", cfg: Config{
			FontFamily: "Go", FontFile: "/tmp/a.ttf", FontBytes: []byte{1},
		}},
		{name: "unreadable font file", cfg: Config{FontFamily: "Go", FontFile: "/nonexistent/font.ttf"}},
		{name: "unknown page size", cfg: Config{FontFamily: "Courier", PageSize: "Tabloid-ish"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := Render(RenderRequest{
				Writer:   &out,
				Config:   tc.cfg,
				Sequence: ruled.DefaultSequence(),
			})
			if err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestRenderBlankSequenceLeavesRowsEmpty(t *testing.T) {
	// Whitespace-only items tile to nothing; the page still renders.
	var out bytes.Buffer
	err := Render(RenderRequest{
		Writer:   &out,
		Config:   Config{FontFamily: "Courier"},
		Sequence: ruled.NewSequence("blank", []string{"   "}),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out.Bytes(), []byte("%PDF")) {
		t.Fatalf("unexpected pdf header: %q", out.Bytes()[:8])
	}
}

func TestIsCoreFont(t *testing.T) {
	for _, name := range []string{"Courier", "Helvetica", "Times", "Symbol", "ZapfDingbats"} {
		if !IsCoreFont(name) {
			t.Fatalf("expected %q to be a core font", name)
		}
	}
	for _, name := range []string{"Solway", "helvetica", ""} {
		if IsCoreFont(name) {
			t.Fatalf("did not expect %q to be a core font", name)
		}
	}
}
