// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-search-go/internal/config"
)

var (
	// Input options
	fenInput      = flag.String("fen", "", "Analyse this FEN position")
	positionsFile = flag.String("f", "", "Positions file: one FEN per line, '#' comments, optional '; label'")

	// Search options
	strategyName = flag.String("s", string(config.AlphaBeta), "Strategy: minimax, alphabeta, stochastic, random, all")
	depth        = flag.Int("depth", 3, "Search depth in plies")
	breadth      = flag.Int("breadth", 8, "Replies sampled per move by stochastic search")
	chooserName  = flag.String("chooser", string(config.RandomChooser), "Stochastic chooser: random, first")
	seed         = flag.Int64("seed", -1, "Seed for the random chooser (-1 = unseeded)")
	workers      = flag.Int("workers", 1, "Positions analysed in parallel")

	// Output options
	outputFile  = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput  = flag.Bool("J", false, "Output in JSON format")
	treeDepth   = flag.Int("tree", 0, "Print the explored tree to this many plies")
	svgFile     = flag.String("svg", "", "Write an SVG diagram of the first position and its best line")
	squareSize  = flag.Int("square", 60, "SVG square size in pixels")
	showFEN     = flag.Bool("final", false, "Show the FEN at the end of the best line")
	showHash    = flag.Bool("hash", false, "Show the Zobrist hash of each position")
	showElapsed = flag.Bool("elapsed", false, "Show search time")
	noNodes     = flag.Bool("nonodes", false, "Don't show node counts")

	// Duplicate detection
	keepDuplicates    = flag.Bool("keepdups", false, "Analyse repeated positions again")
	duplicateFile     = flag.String("d", "", "Write repeated positions to this file")
	duplicateCapacity = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Logging
	logFile   = flag.String("l", "", "Log file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0 warnings only, 1 searches, 2 best lines")
	quiet     = flag.Bool("q", false, "Quiet mode: no statistics, warnings only")

	// Misc
	_       = flag.String("A", "", "Read arguments from file")
	version = flag.Bool("version", false, "Show version")
	help    = flag.Bool("h", false, "Show help")
)

// Note: -A is expanded before flag.Parse() in loadArgsFromFileIfSpecified

// applyFlags applies command-line flags to the configuration.
// Invalid values are left for cfg.Validate to report.
func applyFlags(cfg *config.Config) error {
	if err := applySearchFlags(cfg); err != nil {
		return err
	}
	applyOutputFlags(cfg)
	applyAnnotationFlags(cfg)
	applyDuplicateFlags(cfg)

	cfg.Workers = *workers
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

func applySearchFlags(cfg *config.Config) error {
	strategy, err := config.ParseStrategy(*strategyName)
	if err != nil {
		return err
	}
	cfg.Search.Strategy = strategy
	cfg.Search.Depth = *depth
	cfg.Search.Breadth = *breadth
	cfg.Search.Chooser = config.ChooserKind(*chooserName)
	if *seed >= 0 {
		cfg.Search.Seed = uint64(*seed)
		cfg.Search.Seeded = true
	}
	return nil
}

func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.TreeDepth = *treeDepth
	cfg.Output.SVGFile = *svgFile
	cfg.Output.SVGSquareSize = *squareSize
	cfg.Output.Quiet = *quiet
}

func applyAnnotationFlags(cfg *config.Config) {
	cfg.Annotation.AddFinalFEN = *showFEN
	cfg.Annotation.AddHash = *showHash
	cfg.Annotation.AddElapsed = *showElapsed
	cfg.Annotation.AddNodes = !*noNodes
}

func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = !*keepDuplicates
}
