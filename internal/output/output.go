// Package output formats perft, suite and search results as text or JSON.
package output

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputPerft writes a perft result. A divide is listed one move per line
// in move-text order, followed by the total.
func OutputPerft(w io.Writer, r PerftResult) {
	if r.Divide != nil {
		counts := make(map[string]uint64, len(r.Divide))
		for _, e := range r.Divide {
			counts[e.Move.String()] = e.Nodes
		}
		moves := maps.Keys(counts)
		slices.Sort(moves)
		for _, m := range moves {
			fmt.Fprintf(w, "%s: %d\n", m, counts[m])
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Moves: %d\n", len(moves))
		fmt.Fprintf(w, "Nodes searched: %d\n", r.Nodes)
		return
	}

	fmt.Fprintf(w, "perft(%d) = %d", r.Depth, r.Nodes)
	switch {
	case r.Cached:
		fmt.Fprint(w, " (cached)")
	case r.Elapsed > 0:
		fmt.Fprintf(w, " in %s (%d nps)", r.Elapsed.Round(time.Millisecond), r.NodesPerSecond())
	}
	fmt.Fprintln(w)
}

// OutputSuite writes one suite line per result and a summary line.
func OutputSuite(w io.Writer, results []SuiteResult) {
	failed := 0
	for _, r := range results {
		if r.Passed() {
			fmt.Fprintf(w, "%-20s depth %d: %d ok\n", r.Name, r.Depth, r.Nodes)
			continue
		}
		failed++
		fmt.Fprintf(w, "%-20s depth %d: %d MISMATCH (expected %d)\n", r.Name, r.Depth, r.Nodes, r.Expected)
	}
	fmt.Fprintf(w, "%d of %d passed\n", len(results)-failed, len(results))
}

// OutputSearch writes a search result.
func OutputSearch(w io.Writer, r SearchResult) {
	move := r.Move
	if move == "" {
		move = "(none)"
	}
	fmt.Fprintf(w, "bestmove %s score %d depth %d evaluations %d\n", move, r.Score, r.Depth, r.Evaluations)
}

// OutputPosition writes the FEN, the game status and the legal moves,
// wrapped at 80 columns.
func OutputPosition(w io.Writer, p PositionInfo) {
	fmt.Fprintf(w, "fen: %s\n", p.FEN)
	status := p.Status
	if p.InCheck && status == "ongoing" {
		status = "check"
	}
	fmt.Fprintf(w, "status: %s\n", status)
	fmt.Fprintf(w, "legal moves (%d):\n", len(p.Moves))

	ow := NewOutputWriter(w, 80)
	for _, m := range p.Moves {
		ow.Write(m)
	}
	ow.NewLine()
}
