// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chesstree-go/internal/config"
)

var (
	// Position options
	fenFlag    = flag.String("fen", "", "Start position in FEN (default: initial position)")
	movesFlag  = flag.String("moves", "", "Moves to play from the start position, SAN or UCI, space separated")
	legalMoves = flag.Bool("legal", false, "Print the legal moves of the position")
	showBoard  = flag.Bool("board", false, "Print the position as a board")
	perftDepth = flag.Int("perft", 0, "Count the leaf nodes of the move tree to depth N")
	bookMoves  = flag.Bool("book", false, "Print weighted candidate moves for the position from the -index store")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	sevenTagOnly = flag.Bool("7", false, "Output only the seven tag roster")
	noTags       = flag.Bool("notags", false, "Don't output any tags")
	lineLength   = flag.Int("w", 80, "Maximum line length")
	outputFormat = flag.String("W", "san", "Move notation: san, lan, lalg, halg, elalg, uci")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")

	// Content options
	noComments   = flag.Bool("C", false, "Don't output comments")
	noNAGs       = flag.Bool("N", false, "Don't output NAGs")
	noVariations = flag.Bool("V", false, "Don't output variations")
	noResults    = flag.Bool("noresults", false, "Don't output results")
	noChecks     = flag.Bool("nochecks", false, "Don't output check and mate symbols")
	noMoveNums   = flag.Bool("nomovenumbers", false, "Don't output move numbers")
	noClocks     = flag.Bool("noclocks", false, "Strip clock annotations from comments")
	symbolicNAGs = flag.Bool("symbols", false, "Write $1 to $6 as !, ?, !!, ??, !?, ?!")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate games")
	duplicateFile      = flag.String("d", "", "Output duplicates to this file")

	// ECO classification
	ecoFile = flag.String("e", "", "ECO classification file (PGN format)")

	// Game selection
	strictMode       = flag.Bool("strict", false, "Only output games that replay without errors")
	validateMode     = flag.Bool("validate", false, "Log tag and result problems of each game")
	checkmateFilter  = flag.Bool("checkmate", false, "Only output games ending in checkmate")
	stalemateFilter  = flag.Bool("stalemate", false, "Only output games ending in stalemate")
	repetitionFilter = flag.Bool("repetition", false, "Only output games with a threefold repetition")
	fiftyMoveFilter  = flag.Bool("fifty", false, "Only output games reaching the fifty-move rule")
	underpromoFilter = flag.Bool("underpromotion", false, "Only output games with an underpromotion")
	commentedFilter  = flag.Bool("commented", false, "Only output games with comments")
	splitVariants    = flag.Bool("splitvariants", false, "Output each variation as a separate game")

	// Import options
	workers  = flag.Int("workers", 0, "Number of worker goroutines (0 = one per CPU)")
	latin1   = flag.Bool("latin1", false, "Decode input as ISO-8859-1")
	indexDir = flag.String("index", "", "Record every imported position in a store in this directory")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 0, "Log verbosity: 0 = warnings, 1 = progress, 2 = debug")

	// Other options
	quiet   = flag.Bool("q", false, "Quiet mode (no game count)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyTagOutputFlags(cfg)
	applyContentFlags(cfg)
	if err := applyOutputFormatFlags(cfg); err != nil {
		return err
	}
	applyImportFlags(cfg)
	cfg.Duplicate.Suppress = *suppressDuplicates || *duplicateFile != ""

	level := *verbosity
	if *quiet {
		level = 0
	}
	cfg.SetVerbosity(level)
	return cfg.Validate()
}

// applyTagOutputFlags configures tag output settings.
func applyTagOutputFlags(cfg *config.Config) {
	switch {
	case *noTags:
		cfg.Output.TagFormat = config.NoTags
	case *sevenTagOnly:
		cfg.Output.TagFormat = config.SevenTagRoster
	}
}

// applyContentFlags configures content output settings.
func applyContentFlags(cfg *config.Config) {
	cfg.Output.KeepComments = !*noComments
	cfg.Output.KeepNAGs = !*noNAGs
	cfg.Output.KeepVariations = !*noVariations
	cfg.Output.KeepResults = !*noResults
	cfg.Output.KeepChecks = !*noChecks
	cfg.Output.KeepMoveNumbers = !*noMoveNums
	cfg.Output.StripClockAnnotations = *noClocks
	cfg.Output.SymbolicNAGs = *symbolicNAGs
	cfg.Output.JSONFormat = *jsonOutput
	if *lineLength >= 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
}

// applyOutputFormatFlags configures the output notation.
func applyOutputFormatFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	return nil
}

// applyImportFlags configures reading and indexing.
func applyImportFlags(cfg *config.Config) {
	cfg.Import.Workers = *workers
	cfg.Import.IndexDir = *indexDir
	if *latin1 {
		cfg.Import.Encoding = config.Latin1
	}
}

// positionRequested reports whether any position command was given.
func positionRequested() bool {
	return *fenFlag != "" || *movesFlag != "" || *legalMoves || *showBoard || *perftDepth > 0 || *bookMoves
}

// positionFlags collects the position commands.
func positionFlags() positionOptions {
	return positionOptions{
		board: *showBoard,
		legal: *legalMoves,
		perft: *perftDepth,
		book:  *bookMoves,
	}
}
