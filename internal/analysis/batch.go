package analysis

import (
	"context"

	"github.com/lgbarn/chess-search-go/internal/config"
	"github.com/lgbarn/chess-search-go/internal/errors"
	"github.com/lgbarn/chess-search-go/internal/hashing"
	"github.com/lgbarn/chess-search-go/internal/worker"
)

// BatchResult is the outcome of analysing one entry of a batch.
type BatchResult struct {
	Entry Entry
	Index int

	// Reports holds one report, or one per strategy for "all".
	Reports []*Report
	Agree   bool

	// DuplicateOf is the index of the first occurrence of a duplicate
	// position, or -1.
	DuplicateOf int

	Err error
}

// BatchOptions configures AnalyzeBatch.
type BatchOptions struct {
	Workers int

	// Duplicates, when set, skips positions it has already seen.
	Duplicates *hashing.ThreadSafeDuplicateDetector
}

// AnalyzeBatch analyses entries on a worker pool and returns one result per
// entry in input order. Duplicates are decided in input order before any
// search runs. Once ctx is done, entries not yet started fail with its error.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, entries []Entry, opts BatchOptions) []BatchResult {
	results := make([]BatchResult, len(entries))
	var pending []int
	for i, e := range entries {
		results[i] = BatchResult{Entry: e, Index: i, DuplicateOf: -1}
		if opts.Duplicates != nil {
			if first, dup := opts.Duplicates.CheckAndAdd(e.Position, i); dup {
				results[i].DuplicateOf = first
				results[i].Err = a.positionError(e, i, errors.Wrapf(errors.ErrDuplicatePosition, "first seen at position %d", first+1))
				a.log.Debug().Int("position", i+1).Int("first", first+1).Msg("skipping duplicate position")
				continue
			}
		}
		pending = append(pending, i)
	}
	if d := opts.Duplicates; d != nil {
		a.log.Debug().Int("unique", d.UniqueCount()).Int("duplicates", d.DuplicateCount()).Msg("duplicate check finished")
		if d.IsFull() {
			a.log.Warn().Int("unique", d.UniqueCount()).Msg("duplicate table full; later positions were not remembered")
		}
	}

	process := func(item worker.WorkItem[int]) worker.ProcessResult[*BatchResult] {
		r := results[item.Value]
		if a.cfg.Strategy == config.All {
			cmp, err := a.Compare(ctx, r.Entry.Position, r.Index)
			if err == nil {
				r.Reports, r.Agree = cmp.Reports, cmp.Agree
			}
			r.Err = err
		} else {
			report, err := a.AnalyzeWith(ctx, r.Entry.Position, a.cfg.Strategy, r.Index)
			if err == nil {
				r.Reports = []*Report{report}
			}
			r.Err = err
		}
		if r.Err != nil {
			r.Err = a.positionError(r.Entry, r.Index, r.Err)
		}
		for _, rep := range r.Reports {
			rep.Label = r.Entry.Label
		}
		return worker.ProcessResult[*BatchResult]{Value: &r, Index: item.Index, Error: r.Err}
	}

	stop := func(worker.ProcessResult[*BatchResult]) bool { return ctx.Err() != nil }
	for _, pr := range worker.Process(pending, opts.Workers, process, stop) {
		i := pending[pr.Index]
		if pr.Value == nil {
			results[i].Err = a.positionError(results[i].Entry, i, ctx.Err())
			continue
		}
		results[i] = *pr.Value
	}
	return results
}

// positionError attaches an entry's origin to err.
func (a *Analyzer) positionError(e Entry, index int, err error) error {
	return &errors.PositionError{
		Err:   err,
		Index: index + 1,
		Label: e.Label,
		FEN:   e.Position.FEN(),
		File:  e.File,
		Line:  e.Line,
	}
}
