// Package ruled lays out handwriting-practice worksheets: guide lines
// arranged in ruled rows down a page, with tracing text repeated across
// each writing line.
//
// The package is canvas-independent. It computes row geometry, scales a
// font size so the glyph ascent fills a writing zone, and decides how many
// repetitions of a tracing unit fit across a line. String width
// measurement is injected by the caller, so the same engine serves any
// backend that can measure text. The pdf subpackage renders the result as
// a PDF document.
//
// Coordinates follow the PDF convention: the y axis grows upward from the
// bottom of the page. Renderers with a top-down axis flip at draw time.
//
// Example:
//
//	count := ruled.RowCount(842, 54, 64, 16)
//	rows := ruled.LayoutRows(842-54, 64, 16, 4, count, ruled.StyleDoublePair)
//	for _, row := range rows {
//		run, ok := ruled.TileText("Aa Bb", 1, 487, measure)
//		if !ok {
//			continue // blank row
//		}
//		draw(run, row.Baseline())
//	}
package ruled
