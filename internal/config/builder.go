package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStrategy sets the search strategy.
func (b *ConfigBuilder) WithStrategy(s Strategy) *ConfigBuilder {
	b.cfg.Search.Strategy = s
	return b
}

// WithDepth sets the search depth in plies.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithBreadth sets the number of stochastic samples per first-ply move.
func (b *ConfigBuilder) WithBreadth(breadth int) *ConfigBuilder {
	b.cfg.Search.Breadth = breadth
	return b
}

// WithChooser sets how stochastic search picks sampled moves.
func (b *ConfigBuilder) WithChooser(kind ChooserKind) *ConfigBuilder {
	b.cfg.Search.Chooser = kind
	return b
}

// WithSeed makes the random chooser reproducible.
func (b *ConfigBuilder) WithSeed(seed uint64) *ConfigBuilder {
	b.cfg.Search.Seed = seed
	b.cfg.Search.Seeded = true
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithTreeDepth sets how many plies of the tree text reports print.
func (b *ConfigBuilder) WithTreeDepth(depth int) *ConfigBuilder {
	b.cfg.Output.TreeDepth = depth
	return b
}

// WithSVGFile sets the diagram file.
func (b *ConfigBuilder) WithSVGFile(path string) *ConfigBuilder {
	b.cfg.Output.SVGFile = path
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithFinalFEN enables the final position annotation.
func (b *ConfigBuilder) WithFinalFEN(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddFinalFEN = enabled
	return b
}

// WithHash enables the position hash annotation.
func (b *ConfigBuilder) WithHash(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddHash = enabled
	return b
}

// WithWorkers sets the number of concurrent analyses in batch mode.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
