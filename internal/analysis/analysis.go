// Package analysis runs searches over chess positions and reports on them.
package analysis

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chess-search-go/internal/config"
	"github.com/lgbarn/chess-search-go/internal/engine"
	"github.com/lgbarn/chess-search-go/internal/errors"
	"github.com/lgbarn/chess-search-go/internal/hashing"
	"github.com/lgbarn/chess-search-go/internal/search"
)

// Report is the outcome of one search over one position.
type Report struct {
	Label    string
	Index    int
	Strategy config.Strategy
	FEN      string
	Side     search.Side
	Depth    int
	Breadth  int

	Value float64
	Line  []search.Token
	Tree  search.Tree
	Nodes int

	// Ending describes the position at the end of Line.
	Ending   engine.Status
	FinalFEN string
	Hash     uint64

	Elapsed time.Duration
}

// Comparison holds the reports of every search strategy on one position.
type Comparison struct {
	Reports []*Report

	// Agree is true when minimax and alpha-beta found the same value and line.
	Agree bool
}

// Analyzer runs the configured searches. It is safe for concurrent use.
type Analyzer struct {
	cfg      *config.SearchConfig
	searcher *engine.Searcher
	log      zerolog.Logger
}

// NewAnalyzer creates an analyzer for the given search settings.
func NewAnalyzer(cfg *config.SearchConfig, log zerolog.Logger) *Analyzer {
	return &Analyzer{
		cfg:      cfg,
		searcher: engine.NewSearcher(),
		log:      log,
	}
}

// Analyze runs the configured strategy on pos. The "all" strategy is
// answered by Compare, not here.
func (a *Analyzer) Analyze(ctx context.Context, pos engine.Position) (*Report, error) {
	return a.AnalyzeWith(ctx, pos, a.cfg.Strategy, 0)
}

// AnalyzeWith runs one strategy on pos. index picks the chooser stream for
// seeded stochastic searches so batch runs stay reproducible.
func (a *Analyzer) AnalyzeWith(ctx context.Context, pos engine.Position, strategy config.Strategy, index int) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	side, board, flags := pos.Side(), pos.Board, pos.Flags
	depth := a.cfg.Depth
	start := time.Now()

	var res search.Result
	switch strategy {
	case config.Minimax:
		res = a.searcher.Minimax(side, board, flags, depth)
	case config.AlphaBeta:
		res = a.searcher.AlphaBeta(side, board, flags, depth)
	case config.Stochastic:
		res = a.searcher.Stochastic(side, board, flags, depth, a.cfg.Breadth, a.chooser(index))
	case config.Random:
		res = a.searcher.Random(side, board, flags, a.chooser(index))
	default:
		return nil, fmt.Errorf("%q: %w", strategy, errors.ErrUnknownStrategy)
	}

	report, err := a.report(pos, strategy, res, time.Since(start))
	if err != nil {
		return nil, err
	}
	report.Index = index

	a.log.Info().
		Str("strategy", string(strategy)).
		Str("fen", report.FEN).
		Int("depth", depth).
		Float64("value", report.Value).
		Int("nodes", report.Nodes).
		Int("tree_depth", res.Tree.Depth()).
		Dur("elapsed", report.Elapsed).
		Msg("search finished")
	a.log.Debug().
		Strs("line", lo.Map(report.Line, func(t search.Token, _ int) string { return string(t) })).
		Stringer("ending", report.Ending).
		Msg("best line")

	return report, nil
}

// Compare runs minimax, alpha-beta and stochastic search on pos at the same
// time. Each search runs on its own goroutine with its own chooser.
func (a *Analyzer) Compare(ctx context.Context, pos engine.Position, index int) (*Comparison, error) {
	strategies := []config.Strategy{config.Minimax, config.AlphaBeta, config.Stochastic}
	reports := make([]*Report, len(strategies))

	g, ctx := errgroup.WithContext(ctx)
	for i, strategy := range strategies {
		g.Go(func() error {
			r, err := a.AnalyzeWith(ctx, pos.Copy(), strategy, index)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	mm, ab := reports[0], reports[1]
	agree := mm.Value == ab.Value && slices.Equal(mm.Line, ab.Line)
	if !agree {
		a.log.Warn().
			Str("fen", mm.FEN).
			Float64("minimax", mm.Value).
			Float64("alphabeta", ab.Value).
			Msg("minimax and alpha-beta disagree")
	}
	// Pruning only removes branches, so alpha-beta never visits a move
	// minimax skipped.
	if !mm.Tree.Contains(ab.Tree) {
		agree = false
		a.log.Warn().Str("fen", mm.FEN).Msg("alpha-beta tree is not a subset of the minimax tree")
	}
	return &Comparison{Reports: reports, Agree: agree}, nil
}

// chooser builds the move chooser for one stochastic search.
func (a *Analyzer) chooser(index int) search.Chooser {
	switch {
	case a.cfg.Chooser == config.FirstChooser:
		return search.FirstChooser
	case a.cfg.Seeded:
		return search.NewSeededChooser(a.cfg.Seed + uint64(index))
	default:
		return search.NewRandomChooser()
	}
}

// report builds a Report from a search result by replaying its line.
func (a *Analyzer) report(pos engine.Position, strategy config.Strategy, res search.Result, elapsed time.Duration) (*Report, error) {
	line := lo.Map(res.Moves(), func(m search.Move, _ int) search.Token { return engine.EncodeMove(m) })

	final, err := pos.PlayLine(line...)
	if err != nil {
		return nil, errors.Wrapf(err, "replaying %s line", strategy)
	}

	r := &Report{
		Strategy: strategy,
		FEN:      pos.FEN(),
		Side:     pos.Side(),
		Depth:    a.cfg.Depth,
		Value:    res.Value,
		Line:     line,
		Tree:     res.Tree,
		Nodes:    res.Tree.Size(),
		Ending:   engine.StatusOf(final),
		FinalFEN: final.FEN(),
		Hash:     hashing.PositionHash(pos),
		Elapsed:  elapsed,
	}
	if strategy == config.Stochastic {
		r.Breadth = a.cfg.Breadth
	}
	return r, nil
}
