package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-search-go/internal/analysis"
	"github.com/lgbarn/chess-search-go/internal/config"
	"github.com/lgbarn/chess-search-go/internal/search"
)

// maxLineLength is where long move lines wrap.
const maxLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	indent        string
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. Wrapped lines start with
// indent.
func NewOutputWriter(w io.Writer, maxLineLength int, indent string) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		indent:        indent,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			fmt.Fprint(o.w, o.indent)
			o.lineLength = len(o.indent)
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

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
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

// TextWriter writes human readable reports as results arrive.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteResult writes one position's reports.
func (tw *TextWriter) WriteResult(r analysis.BatchResult) error {
	ow := NewOutputWriter(tw.w, maxLineLength, "    ")

	ow.WriteNoSpace(fmt.Sprintf("position %d", r.Index+1))
	if r.Entry.Label != "" {
		ow.WriteNoSpace(fmt.Sprintf(" %q", r.Entry.Label))
	}
	ow.WriteNoSpace(": " + r.Entry.Position.FEN())
	ow.NewLine()

	switch {
	case r.DuplicateOf >= 0:
		ow.WriteNoSpace(fmt.Sprintf("  duplicate of position %d", r.DuplicateOf+1))
		ow.NewLine()
	case r.Err != nil:
		ow.WriteNoSpace("  error: " + r.Err.Error())
		ow.NewLine()
	default:
		for _, rep := range r.Reports {
			tw.writeReport(ow, rep)
		}
		if len(r.Reports) > 1 {
			verdict := "agree"
			if !r.Agree {
				verdict = "disagree"
			}
			ow.WriteNoSpace("  minimax and alphabeta " + verdict)
			ow.NewLine()
		}
	}
	_, err := fmt.Fprintln(tw.w)
	return err
}

// writeReport writes the lines for one strategy.
func (tw *TextWriter) writeReport(ow *OutputWriter, rep *analysis.Report) {
	header := fmt.Sprintf("  %s depth %d", rep.Strategy, rep.Depth)
	if rep.Breadth > 0 {
		header += fmt.Sprintf(" breadth %d", rep.Breadth)
	}
	ow.WriteNoSpace(header + ": value " + FormatValue(rep.Value))
	ow.NewLine()

	ow.WriteNoSpace("  line:")
	if len(rep.Line) == 0 {
		ow.Write("(none)")
	}
	for _, tok := range rep.Line {
		ow.Write(string(tok))
	}
	ow.Write("(" + rep.Ending.String() + ")")
	ow.NewLine()

	if tw.cfg.Annotation.AddNodes {
		ow.WriteNoSpace(fmt.Sprintf("  nodes: %d", rep.Nodes))
		ow.NewLine()
	}
	if tw.cfg.Annotation.AddElapsed {
		ow.WriteNoSpace("  elapsed: " + rep.Elapsed.String())
		ow.NewLine()
	}
	if tw.cfg.Annotation.AddFinalFEN {
		ow.WriteNoSpace("  final: " + rep.FinalFEN)
		ow.NewLine()
	}
	if tw.cfg.Annotation.AddHash {
		ow.WriteNoSpace(fmt.Sprintf("  hash: %016x", rep.Hash))
		ow.NewLine()
	}
	if tw.cfg.Output.TreeDepth > 0 && len(rep.Tree) > 0 {
		ow.WriteNoSpace("  tree:")
		ow.NewLine()
		WriteTree(tw.w, rep.Tree, tw.cfg.Output.TreeDepth, "    ")
	}
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// WriteTree prints a tree down to depth plies, one token per line, with
// siblings in sorted order and children indented under their parent.
func WriteTree(w io.Writer, tree search.Tree, depth int, indent string) {
	if depth <= 0 {
		return
	}
	for _, tok := range SortedTokens(tree) {
		child := tree[tok]
		if depth == 1 && len(child) > 0 {
			fmt.Fprintf(w, "%s%s (+%d)\n", indent, tok, child.Size())
			continue
		}
		fmt.Fprintf(w, "%s%s\n", indent, tok)
		WriteTree(w, child, depth-1, indent+"  ")
	}
}

// TruncateTree returns a copy of tree cut off below depth plies.
func TruncateTree(tree search.Tree, depth int) search.Tree {
	if depth <= 0 {
		return search.Tree{}
	}
	out := make(search.Tree, len(tree))
	for tok, child := range tree {
		out[tok] = TruncateTree(child, depth-1)
	}
	return out
}

// SortedTokens returns the tokens at the top level of a tree in order.
func SortedTokens(tree search.Tree) []search.Token {
	toks := lo.Keys(tree)
	slices.Sort(toks)
	return toks
}

// FormatValue prints a search value without trailing zeros.
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
