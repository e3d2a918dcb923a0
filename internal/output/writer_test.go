package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/lgbarn/chess-search-go/internal/analysis"
	"github.com/lgbarn/chess-search-go/internal/config"
	"github.com/lgbarn/chess-search-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-search-go/internal/errors"
	"github.com/lgbarn/chess-search-go/internal/search"
	"github.com/lgbarn/chess-search-go/internal/testutil"
)

func backRankResult(t *testing.T) analysis.BatchResult {
	t.Helper()
	pos := testutil.MustPosition(t, testutil.BackRankMateFEN)
	return analysis.BatchResult{
		Entry:       analysis.Entry{Position: pos, Label: "back rank"},
		Index:       0,
		DuplicateOf: -1,
		Reports: []*analysis.Report{{
			Label:    "back rank",
			Strategy: config.AlphaBeta,
			FEN:      pos.FEN(),
			Side:     search.Maximizer,
			Depth:    2,
			Value:    engine.MateScore,
			Line:     []search.Token{"e1e8"},
			Tree: search.Tree{
				"e1e8": search.Tree{},
				"e1e2": search.Tree{"g8h8": search.Tree{}},
			},
			Nodes:    3,
			Ending:   engine.Checkmate,
			FinalFEN: "4R1k1/5ppp/8/8/8/8/8/6K1 b - - 1 1",
			Hash:     0xabcdef,
		}},
	}
}

// TestTextWriter_WriteResult verifies the text layout of one report
func TestTextWriter_WriteResult(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()

	writer := NewTextWriter(&buf, cfg)
	if err := writer.WriteResult(backRankResult(t)); err != nil {
		t.Fatalf("WriteResult failed: %v", err)
	}

	want := `position 1 "back rank": 6k1/5ppp/8/8/8/8/8/4R1K1 w - - 0 1
  alphabeta depth 2: value 100000
  line: e1e8 (checkmate)
  nodes: 3

`
	if got := buf.String(); got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
}

// TestTextWriter_Annotations verifies optional annotations and the tree
func TestTextWriter_Annotations(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithFinalFEN(true).
		WithHash(true).
		WithTreeDepth(2).
		Build()

	writer := NewTextWriter(&buf, cfg)
	if err := writer.WriteResult(backRankResult(t)); err != nil {
		t.Fatalf("WriteResult failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"  final: 4R1k1/5ppp/8/8/8/8/8/6K1 b - - 1 1\n",
		"  hash: 0000000000abcdef\n",
		"  tree:\n    e1e2\n      g8h8\n    e1e8\n",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

// TestTextWriter_DuplicateAndError verifies results with no reports
func TestTextWriter_DuplicateAndError(t *testing.T) {
	var buf bytes.Buffer
	writer := NewTextWriter(&buf, config.NewConfig())

	dup := backRankResult(t)
	dup.Index, dup.DuplicateOf, dup.Reports = 2, 0, nil
	failed := backRankResult(t)
	failed.Index, failed.Reports = 3, nil
	failed.Err = errors.New("search cancelled")

	if err := writer.WriteResult(dup); err != nil {
		t.Fatal(err)
	}
	if err := writer.WriteResult(failed); err != nil {
		t.Fatal(err)
	}

	output := buf.String()
	if !strings.Contains(output, "position 3 \"back rank\"") || !strings.Contains(output, "  duplicate of position 1\n") {
		t.Errorf("duplicate not reported:\n%s", output)
	}
	if !strings.Contains(output, "  error: search cancelled\n") {
		t.Errorf("error not reported:\n%s", output)
	}
}

// TestTextWriter_Comparison verifies the agreement line
func TestTextWriter_Comparison(t *testing.T) {
	var buf bytes.Buffer
	writer := NewTextWriter(&buf, config.NewConfig())

	r := backRankResult(t)
	minimax := *r.Reports[0]
	minimax.Strategy = config.Minimax
	r.Reports = append([]*analysis.Report{&minimax}, r.Reports...)
	r.Agree = true

	if err := writer.WriteResult(r); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "  minimax and alphabeta agree\n") {
		t.Errorf("missing agreement:\n%s", buf.String())
	}
}

// TestOutputWriter_Wrap verifies long lines wrap with the indent
func TestOutputWriter_Wrap(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 12, "  ")
	for _, s := range []string{"e2e4", "e7e5", "g1f3", "b8c6"} {
		ow.Write(s)
	}
	ow.NewLine()

	want := "e2e4 e7e5\n  g1f3 b8c6\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{100000, "100000"},
		{0, "0"},
		{-500, "-500"},
		{12.5, "12.5"},
		{1.0 / 3, "0.33"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncateTree(t *testing.T) {
	tree := search.Tree{"a": search.Tree{"b": search.Tree{"c": search.Tree{}}}}

	if got := TruncateTree(tree, 2); got.Depth() != 2 || got.Size() != 2 {
		t.Errorf("TruncateTree depth 2 = %v", got)
	}
	if tree.Depth() != 3 {
		t.Error("TruncateTree modified its input")
	}
	if got := TruncateTree(tree, 0); len(got) != 0 {
		t.Errorf("TruncateTree depth 0 = %v, want empty", got)
	}
}

// TestJSONWriter_Batch verifies JSON batch output
func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithHash(true).WithTreeDepth(1).Build()

	writer := NewJSONWriter(&buf, cfg)
	dup := backRankResult(t)
	dup.Index, dup.DuplicateOf, dup.Reports = 1, 0, nil
	dup.Err = chesserrors.ErrDuplicatePosition

	if err := writer.WriteResult(backRankResult(t)); err != nil {
		t.Fatal(err)
	}
	if err := writer.WriteResult(dup); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Error("batch writer should not write before Close")
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(out.Positions) != 2 {
		t.Fatalf("positions = %d, want 2", len(out.Positions))
	}

	first := out.Positions[0]
	if first.Index != 1 || first.Label != "back rank" || len(first.Reports) != 1 {
		t.Fatalf("first position = %+v", first)
	}
	rep := first.Reports[0]
	if rep.Strategy != "alphabeta" || rep.Value != engine.MateScore || rep.Ending != "checkmate" {
		t.Errorf("report = %+v", rep)
	}
	if len(rep.Line) != 1 || rep.Line[0] != "e1e8" {
		t.Errorf("line = %v, want [e1e8]", rep.Line)
	}
	if rep.Hash != "0000000000abcdef" {
		t.Errorf("hash = %q", rep.Hash)
	}
	if rep.Tree.Size() != 2 || rep.Tree.Depth() != 1 {
		t.Errorf("tree = %v, want two leaves", rep.Tree)
	}
	if first.Agree != nil {
		t.Error("agree should be omitted for a single strategy")
	}

	second := out.Positions[1]
	if second.DuplicateOf == nil || *second.DuplicateOf != 1 {
		t.Errorf("duplicateOf = %v, want 1", second.DuplicateOf)
	}
	if len(second.Reports) != 0 {
		t.Error("duplicate should have no reports")
	}
}

// TestJSONWriter_Single verifies single mode writes each result immediately
func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriterSingle(&buf, config.NewConfig())

	if err := writer.WriteResult(backRankResult(t)); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("single writer should write immediately")
	}

	var jp JSONPosition
	if err := json.Unmarshal(buf.Bytes(), &jp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if jp.FEN != testutil.BackRankMateFEN {
		t.Errorf("fen = %q", jp.FEN)
	}
	if jp.Reports[0].Tree != nil {
		t.Error("tree should be omitted when tree depth is 0")
	}
	if jp.Reports[0].FinalFEN != "" {
		t.Error("final FEN should be omitted unless requested")
	}
}

func TestNewResultWriter(t *testing.T) {
	cfg := config.NewConfig()
	if _, ok := NewResultWriter(&bytes.Buffer{}, cfg).(*TextWriter); !ok {
		t.Error("default writer should be text")
	}
	cfg.Output.JSONFormat = true
	if _, ok := NewResultWriter(&bytes.Buffer{}, cfg).(*JSONWriter); !ok {
		t.Error("JSONFormat should select the JSON writer")
	}
}

// TestWriteSVG verifies the board diagram
func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	pos := testutil.MustPosition(t, testutil.BackRankMateFEN)

	if err := WriteSVG(&buf, pos, []search.Token{"e1e8"}, 40); err != nil {
		t.Fatalf("WriteSVG failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, `<svg width="320" height="320"`) {
		t.Errorf("unexpected canvas size:\n%s", output[:min(len(output), 200)])
	}
	if got := strings.Count(output, "<rect"); got != 64 {
		t.Errorf("squares = %d, want 64", got)
	}
	for _, want := range []string{"<title>" + testutil.BackRankMateFEN + "</title>", "♖", "♔", "♚", "♟", "marker-end:url(#arrow0)"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(output, "url(#arrow1)") {
		t.Error("a one move line should only use White's arrow")
	}
	if !strings.HasSuffix(strings.TrimSpace(output), "</svg>") {
		t.Error("SVG not closed")
	}
}

func TestWriteSVG_InvalidToken(t *testing.T) {
	pos := engine.NewInitialPosition()
	err := WriteSVG(&bytes.Buffer{}, pos, []search.Token{"zz"}, 40)
	if !errors.Is(err, chesserrors.ErrInvalidToken) {
		t.Errorf("WriteSVG error = %v, want ErrInvalidToken", err)
	}
}
