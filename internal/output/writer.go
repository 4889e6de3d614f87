package output

import (
	"io"

	"github.com/lgbarn/movegen-go/internal/config"
)

// ResultWriter is the interface for writing results to output.
// Different implementations handle different output formats (text, JSON).
type ResultWriter interface {
	WritePerft(r PerftResult) error
	WriteSuite(results []SuiteResult) error
	WriteSearch(r SearchResult) error
	WritePosition(p PositionInfo) error

	// Close releases any resources. Batch writers (like JSON) write their
	// pending output here.
	Close() error
}

// NewResultWriter returns the writer selected by the configuration.
func NewResultWriter(cfg *config.Config) ResultWriter {
	if cfg.JSONFormat {
		return NewJSONWriter(cfg.OutputFile)
	}
	return NewTextWriter(cfg.OutputFile)
}

// TextWriter writes results as plain text as soon as they arrive.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WritePerft writes a perft result.
func (tw *TextWriter) WritePerft(r PerftResult) error {
	OutputPerft(tw.w, r)
	return nil
}

// WriteSuite writes suite results.
func (tw *TextWriter) WriteSuite(results []SuiteResult) error {
	OutputSuite(tw.w, results)
	return nil
}

// WriteSearch writes a search result.
func (tw *TextWriter) WriteSearch(r SearchResult) error {
	OutputSearch(tw.w, r)
	return nil
}

// WritePosition writes a position listing.
func (tw *TextWriter) WritePosition(p PositionInfo) error {
	OutputPosition(tw.w, p)
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter buffers results and writes them as one JSON document on Close.
type JSONWriter struct {
	w   io.Writer
	out JSONOutput
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WritePerft buffers a perft result.
func (jw *JSONWriter) WritePerft(r PerftResult) error {
	jw.out.Perft = append(jw.out.Perft, PerftToJSON(r))
	return nil
}

// WriteSuite buffers suite results.
func (jw *JSONWriter) WriteSuite(results []SuiteResult) error {
	for _, r := range results {
		jw.out.Suite = append(jw.out.Suite, SuiteToJSON(r))
	}
	return nil
}

// WriteSearch buffers a search result.
func (jw *JSONWriter) WriteSearch(r SearchResult) error {
	jw.out.Search = append(jw.out.Search, SearchToJSON(r))
	return nil
}

// WritePosition buffers a position listing.
func (jw *JSONWriter) WritePosition(p PositionInfo) error {
	jw.out.Positions = append(jw.out.Positions, PositionToJSON(p))
	return nil
}

// Close writes all buffered results and clears the buffer.
func (jw *JSONWriter) Close() error {
	err := encodeJSON(jw.w, &jw.out)
	jw.out = JSONOutput{}
	return err
}
