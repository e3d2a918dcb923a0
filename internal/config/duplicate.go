package config

import "io"

// DuplicateConfig holds settings for duplicate position detection in
// batch analysis.
type DuplicateConfig struct {
	// Suppress skips positions already analysed in the same batch
	Suppress bool

	// DuplicateFile receives the FEN of each skipped position
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{
		Suppress: true,
	}
}
