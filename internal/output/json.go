package output

import (
	"encoding/json"
	"io"
)

// JSONDivideEntry is one root move of a divide.
type JSONDivideEntry struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// JSONPerft represents a perft result in JSON format.
type JSONPerft struct {
	FEN       string            `json:"fen"`
	Depth     int               `json:"depth"`
	Nodes     uint64            `json:"nodes"`
	ElapsedMS int64             `json:"elapsedMs,omitempty"`
	Cached    bool              `json:"cached,omitempty"`
	Divide    []JSONDivideEntry `json:"divide,omitempty"`
}

// JSONSuite represents a suite result in JSON format.
type JSONSuite struct {
	Name     string `json:"name"`
	FEN      string `json:"fen"`
	Depth    int    `json:"depth"`
	Nodes    uint64 `json:"nodes"`
	Expected uint64 `json:"expected"`
	Passed   bool   `json:"passed"`
}

// JSONSearch represents a search result in JSON format.
type JSONSearch struct {
	FEN         string `json:"fen"`
	Depth       int    `json:"depth"`
	Move        string `json:"move,omitempty"`
	Score       int    `json:"score"`
	Evaluations int    `json:"evaluations"`
	ElapsedMS   int64  `json:"elapsedMs,omitempty"`
}

// JSONPosition represents a position listing in JSON format.
type JSONPosition struct {
	FEN     string   `json:"fen"`
	Status  string   `json:"status"`
	InCheck bool     `json:"inCheck"`
	Moves   []string `json:"moves"`
}

// JSONOutput holds every result of a run.
type JSONOutput struct {
	Perft     []*JSONPerft    `json:"perft,omitempty"`
	Suite     []*JSONSuite    `json:"suite,omitempty"`
	Search    []*JSONSearch   `json:"search,omitempty"`
	Positions []*JSONPosition `json:"positions,omitempty"`
}

// PerftToJSON converts a perft result to JSON format. Divide entries keep
// generation order.
func PerftToJSON(r PerftResult) *JSONPerft {
	jp := &JSONPerft{
		FEN:       r.FEN,
		Depth:     r.Depth,
		Nodes:     r.Nodes,
		ElapsedMS: r.Elapsed.Milliseconds(),
		Cached:    r.Cached,
	}
	for _, e := range r.Divide {
		jp.Divide = append(jp.Divide, JSONDivideEntry{Move: e.Move.String(), Nodes: e.Nodes})
	}
	return jp
}

// SuiteToJSON converts a suite result to JSON format.
func SuiteToJSON(r SuiteResult) *JSONSuite {
	return &JSONSuite{
		Name:     r.Name,
		FEN:      r.FEN,
		Depth:    r.Depth,
		Nodes:    r.Nodes,
		Expected: r.Expected,
		Passed:   r.Passed(),
	}
}

// SearchToJSON converts a search result to JSON format.
func SearchToJSON(r SearchResult) *JSONSearch {
	return &JSONSearch{
		FEN:         r.FEN,
		Depth:       r.Depth,
		Move:        r.Move,
		Score:       r.Score,
		Evaluations: r.Evaluations,
		ElapsedMS:   r.Elapsed.Milliseconds(),
	}
}

// PositionToJSON converts a position listing to JSON format.
func PositionToJSON(p PositionInfo) *JSONPosition {
	moves := p.Moves
	if moves == nil {
		moves = []string{}
	}
	return &JSONPosition{FEN: p.FEN, Status: p.Status, InCheck: p.InCheck, Moves: moves}
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
