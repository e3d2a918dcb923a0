// Package output formats analysis results as text, JSON or SVG.
package output

import (
	"io"

	"github.com/lgbarn/chess-search-go/internal/analysis"
	"github.com/lgbarn/chess-search-go/internal/config"
)

// ResultWriter is the interface for writing analysis results.
// Different implementations handle different output formats (text, JSON).
type ResultWriter interface {
	// WriteResult writes the result of one position.
	WriteResult(r analysis.BatchResult) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewResultWriter returns the writer the configuration asks for.
func NewResultWriter(w io.Writer, cfg *config.Config) ResultWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}
