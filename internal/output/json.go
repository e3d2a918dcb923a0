package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/lgbarn/chess-search-go/internal/analysis"
	"github.com/lgbarn/chess-search-go/internal/config"
	"github.com/lgbarn/chess-search-go/internal/search"
)

// JSONPosition represents one analysed position in JSON format.
type JSONPosition struct {
	Index       int           `json:"index"`
	Label       string        `json:"label,omitempty"`
	FEN         string        `json:"fen"`
	Reports     []*JSONReport `json:"reports,omitempty"`
	Agree       *bool         `json:"agree,omitempty"`
	DuplicateOf *int          `json:"duplicateOf,omitempty"`
	Error       string        `json:"error,omitempty"`
}

// JSONReport represents one search in JSON format.
type JSONReport struct {
	Strategy string      `json:"strategy"`
	Side     string      `json:"side"`
	Depth    int         `json:"depth"`
	Breadth  int         `json:"breadth,omitempty"`
	Value    float64     `json:"value"`
	Line     []string    `json:"line"`
	Ending   string      `json:"ending"`
	Nodes    int         `json:"nodes,omitempty"`
	FinalFEN string      `json:"finalFEN,omitempty"`
	Hash     string      `json:"hash,omitempty"`
	Elapsed  string      `json:"elapsed,omitempty"`
	Tree     search.Tree `json:"tree,omitempty"`
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions"`
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	cfg       *config.Config
	positions []*JSONPosition
	single    bool // If true, write each result immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches results and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:         w,
		cfg:       cfg,
		positions: make([]*JSONPosition, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each result immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteResult buffers a result for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteResult(r analysis.BatchResult) error {
	jp := ResultToJSON(r, jw.cfg)
	if jw.single {
		return jw.encode(jp)
	}
	jw.positions = append(jw.positions, jp)
	return nil
}

// Flush writes all buffered results as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.positions) == 0 {
		return nil
	}
	err := jw.encode(&JSONOutput{Positions: jw.positions})

	// Clear buffer after writing
	jw.positions = jw.positions[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v any) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ResultToJSON converts an analysis result to JSON format.
func ResultToJSON(r analysis.BatchResult, cfg *config.Config) *JSONPosition {
	jp := &JSONPosition{
		Index: r.Index + 1,
		Label: r.Entry.Label,
		FEN:   r.Entry.Position.FEN(),
	}

	switch {
	case r.DuplicateOf >= 0:
		jp.DuplicateOf = lo.ToPtr(r.DuplicateOf + 1)
	case r.Err != nil:
		jp.Error = r.Err.Error()
	default:
		jp.Reports = lo.Map(r.Reports, func(rep *analysis.Report, _ int) *JSONReport {
			return ReportToJSON(rep, cfg)
		})
		if len(r.Reports) > 1 {
			jp.Agree = lo.ToPtr(r.Agree)
		}
	}
	return jp
}

// ReportToJSON converts one search report to JSON format. The tree is
// included down to the configured tree depth.
func ReportToJSON(rep *analysis.Report, cfg *config.Config) *JSONReport {
	annotation := cfg.Annotation
	jr := &JSONReport{
		Strategy: string(rep.Strategy),
		Side:     rep.Side.String(),
		Depth:    rep.Depth,
		Breadth:  rep.Breadth,
		Value:    rep.Value,
		Line:     lo.Map(rep.Line, func(t search.Token, _ int) string { return string(t) }),
		Ending:   rep.Ending.String(),
	}
	if cfg.Output.TreeDepth > 0 {
		jr.Tree = TruncateTree(rep.Tree, cfg.Output.TreeDepth)
	}
	if annotation.AddNodes {
		jr.Nodes = rep.Nodes
	}
	if annotation.AddFinalFEN {
		jr.FinalFEN = rep.FinalFEN
	}
	if annotation.AddHash {
		jr.Hash = fmt.Sprintf("%016x", rep.Hash)
	}
	if annotation.AddElapsed {
		jr.Elapsed = rep.Elapsed.String()
	}
	return jr
}
