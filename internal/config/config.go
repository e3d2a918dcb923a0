// Package config provides configuration for chess-search.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-search-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Grouped settings
	Search     *SearchConfig
	Output     *OutputConfig
	Duplicate  *DuplicateConfig
	Annotation *AnnotationConfig

	// Verbosity is 0 for warnings only, 1 for one line per position and
	// 2 or more for debug events.
	Verbosity int

	// Workers is the number of positions analysed at once in batch mode.
	Workers int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:     NewSearchConfig(),
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		Annotation: NewAnnotationConfig(),
		Verbosity:  1,
		Workers:    1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream reports are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the stream log events are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every group of settings.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if err := c.Search.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}
