package config

import (
	"fmt"

	"github.com/lgbarn/chess-search-go/internal/errors"
)

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// TreeDepth is how many plies of the exploration tree the text report
	// prints. Zero leaves the tree out; JSON always carries the whole tree.
	TreeDepth int

	// SVGFile receives a diagram of the first position analysed, with the
	// best line drawn as arrows. Empty disables the diagram.
	SVGFile string

	// SVGSquareSize is the diagram square size in pixels.
	SVGSquareSize int

	// Quiet suppresses the reports, leaving only the log.
	Quiet bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		SVGSquareSize: 60,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.TreeDepth < 0 {
		return fmt.Errorf("tree depth must not be negative, got %d: %w", o.TreeDepth, errors.ErrInvalidConfig)
	}
	if o.SVGSquareSize < 8 {
		return fmt.Errorf("svg square size must be at least 8, got %d: %w", o.SVGSquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
