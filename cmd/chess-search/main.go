// chess-search analyses chess positions with minimax, alpha-beta and
// stochastic game-tree search.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-search-go/internal/analysis"
	"github.com/lgbarn/chess-search-go/internal/config"
	"github.com/lgbarn/chess-search-go/internal/engine"
	"github.com/lgbarn/chess-search-go/internal/hashing"
	"github.com/lgbarn/chess-search-go/internal/output"
)

const programVersion = "0.1.0"

// runStats summarises one run.
type runStats struct {
	positions  int
	analysed   int
	duplicates int
	failed     int
}

func main() {
	if extra := loadArgsFromFileIfSpecified(); extra != nil {
		os.Args = append([]string{os.Args[0]}, append(extra, os.Args[1:]...)...)
	}

	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-search-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fatalf("Error: %v\n", err)
	}
	if err := cfg.Validate(); err != nil {
		fatalf("Error: %v\n", err)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)
	logger := newLogger(cfg.LogFile, cfg.Verbosity)

	entries, err := loadEntries(*fenInput, *positionsFile, flag.Args(), os.Stdin)
	if err != nil {
		fatalf("Error: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := run(ctx, cfg, logger, entries)
	if err != nil {
		fatalf("Error: %v\n", err)
	}

	if !cfg.Output.Quiet {
		reportStatistics(os.Stderr, stats)
	}
	if stats.failed > 0 {
		os.Exit(1)
	}
}

// fatalf prints to stderr and exits with status 1.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

// newLogger builds the run's logger: verbosity 0 logs warnings, 1 adds one
// event per search and 2 or more adds the best lines.
func newLogger(w io.Writer, verbosity int) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case verbosity >= 2:
		level = zerolog.DebugLevel
	case verbosity == 1:
		level = zerolog.InfoLevel
	}
	console := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fatalf("Error creating log file %s: %v\n", *logFile, err)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fatalf("Error creating output file %s: %v\n", *outputFile, err)
	}
	cfg.SetOutput(file)
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}
	file, err := os.Create(*duplicateFile)
	if err != nil {
		fatalf("Error creating duplicate file %s: %v\n", *duplicateFile, err)
	}
	cfg.Duplicate.DuplicateFile = file
}

// loadEntries collects the positions to analyse: the -fen position, then
// the -f file, then any files named on the command line. With none of
// these the positions are read from stdin.
func loadEntries(fen, file string, args []string, stdin io.Reader) ([]analysis.Entry, error) {
	var entries []analysis.Entry

	if fen != "" {
		pos, err := engine.ParseFEN(fen)
		if err != nil {
			return nil, err
		}
		entries = append(entries, analysis.Entry{Position: pos, Label: "-fen"})
	}

	files := args
	if file != "" {
		files = append([]string{file}, args...)
	}
	for _, name := range files {
		more, err := readPositionsFile(name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, more...)
	}

	if fen == "" && len(files) == 0 {
		return analysis.ReadPositions(stdin, "stdin")
	}
	return entries, nil
}

func readPositionsFile(name string) ([]analysis.Entry, error) {
	file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return analysis.ReadPositions(file, name)
}

// run analyses entries and writes the results to cfg.OutputFile.
func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger, entries []analysis.Entry) (runStats, error) {
	stats := runStats{positions: len(entries)}

	var dups *hashing.ThreadSafeDuplicateDetector
	if cfg.Duplicate.Suppress {
		dups = hashing.NewThreadSafeDuplicateDetector(false, *duplicateCapacity)
	}

	analyzer := analysis.NewAnalyzer(cfg.Search, logger)
	results := analyzer.AnalyzeBatch(ctx, entries, analysis.BatchOptions{
		Workers:    cfg.Workers,
		Duplicates: dups,
	})

	writer := output.NewResultWriter(cfg.OutputFile, cfg)
	for _, r := range results {
		switch {
		case r.DuplicateOf >= 0:
			stats.duplicates++
			writeDuplicate(cfg.Duplicate.DuplicateFile, r)
		case r.Err != nil:
			stats.failed++
			logger.Error().Err(r.Err).Int("position", r.Index+1).Msg("analysis failed")
		default:
			stats.analysed++
		}
		if err := writer.WriteResult(r); err != nil {
			return stats, err
		}
	}
	if err := writer.Close(); err != nil {
		return stats, err
	}

	if cfg.Output.SVGFile != "" {
		if err := writeSVGFile(cfg.Output.SVGFile, results, cfg.Output.SVGSquareSize); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// writeDuplicate appends a repeated position to the duplicate file.
func writeDuplicate(w io.Writer, r analysis.BatchResult) {
	if w == nil {
		return
	}
	line := r.Entry.Position.FEN()
	if r.Entry.Label != "" {
		line += " ; " + r.Entry.Label
	}
	fmt.Fprintln(w, line)
}

// writeSVGFile draws the first successfully analysed position.
func writeSVGFile(name string, results []analysis.BatchResult, squareSize int) error {
	for _, r := range results {
		if r.Err != nil || len(r.Reports) == 0 {
			continue
		}
		file, err := os.Create(name)
		if err != nil {
			return err
		}
		if err := output.WriteSVG(file, r.Entry.Position, r.Reports[0].Line, squareSize); err != nil {
			file.Close() //nolint:errcheck,gosec // G104: the write error is reported
			return err
		}
		return file.Close()
	}
	return nil
}

// reportStatistics prints the final statistics.
func reportStatistics(w io.Writer, stats runStats) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d position(s) analysed", stats.analysed)
	if stats.duplicates > 0 {
		fmt.Fprintf(&sb, ", %d duplicate(s)", stats.duplicates)
	}
	if stats.failed > 0 {
		fmt.Fprintf(&sb, ", %d failed", stats.failed)
	}
	fmt.Fprintf(w, "%s out of %d.\n", sb.String(), stats.positions)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-search [options] [positions-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Searches chess positions for the best line of play.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nStrategies (-s):\n")
	fmt.Fprintf(os.Stderr, "  minimax     Exhaustive minimax\n")
	fmt.Fprintf(os.Stderr, "  alphabeta   Minimax with alpha-beta pruning (default)\n")
	fmt.Fprintf(os.Stderr, "  stochastic  Sampled replies, averaged\n")
	fmt.Fprintf(os.Stderr, "  random      One chooser move, no search\n")
	fmt.Fprintf(os.Stderr, "  all         Minimax, alpha-beta and stochastic side by side\n")
}
