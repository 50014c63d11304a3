// Package pdf composes handwriting worksheets into PDF documents.
//
// Render produces a single page of ruled rows with tracing text on
// alternating rows; RenderBook produces a multi-page, multi-section
// practice book with automatic page breaks. Both build on the row
// geometry, fitting, and tiling engine in pkt.systems/ruled.
//
// Example:
//
//	cfg := pdf.DefaultConfig()
//	cfg.FontFamily = "Courier"
//	err := pdf.Render(pdf.RenderRequest{
//		Writer:   outFile,
//		Config:   cfg,
//		Sequence: ruled.NewSequence("text", []string{"Aa Bb Cc"}),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Custom fonts are supplied as a TTF path in Config.FontFile or raw bytes
// in Config.FontBytes; without either, Config.FontFamily must name a PDF
// core font.
package pdf
