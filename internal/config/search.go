package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-search-go/internal/errors"
)

// Strategy names a search strategy.
type Strategy string

const (
	Minimax    Strategy = "minimax"
	AlphaBeta  Strategy = "alphabeta"
	Stochastic Strategy = "stochastic"
	Random     Strategy = "random" // one chooser move, not a search
	All        Strategy = "all"    // minimax, alpha-beta and stochastic side by side
)

// Strategies lists every accepted strategy name.
var Strategies = []Strategy{Minimax, AlphaBeta, Stochastic, Random, All}

// ParseStrategy converts a strategy name, ignoring case.
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Strategies {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, errors.ErrUnknownStrategy)
}

// ChooserKind selects how stochastic search picks sampled moves.
type ChooserKind string

const (
	RandomChooser ChooserKind = "random"
	FirstChooser  ChooserKind = "first" // always the first generated move
)

// SearchConfig holds settings for the search itself.
type SearchConfig struct {
	Strategy Strategy

	// Depth in plies.
	Depth int

	// Breadth is the number of samples per first-ply move in stochastic
	// search.
	Breadth int

	Chooser ChooserKind

	// Seed makes the random chooser reproducible when Seeded is set.
	Seed   uint64
	Seeded bool
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Strategy: AlphaBeta,
		Depth:    3,
		Breadth:  8,
		Chooser:  RandomChooser,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if _, err := ParseStrategy(string(s.Strategy)); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	if s.Depth < 0 {
		return fmt.Errorf("depth must not be negative, got %d: %w", s.Depth, errors.ErrInvalidConfig)
	}
	if s.Breadth < 1 {
		return fmt.Errorf("breadth must be at least 1, got %d: %w", s.Breadth, errors.ErrInvalidConfig)
	}
	if s.Chooser != RandomChooser && s.Chooser != FirstChooser {
		return fmt.Errorf("unknown chooser %q: %w", s.Chooser, errors.ErrInvalidConfig)
	}
	return nil
}
