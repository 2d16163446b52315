// chesstree replays, validates and rewrites chess games in PGN format and
// answers questions about single positions.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/chesstree-go/internal/config"
	"github.com/lgbarn/chesstree-go/internal/eco"
	"github.com/lgbarn/chesstree-go/internal/index"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chesstree version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	setupLogFile(cfg)
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupOutputFile(cfg)
	setupDuplicateFile(cfg)
	classifier := loadECOClassifier(cfg)
	store := openIndex(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, cfg, store, classifier)
	stop()

	if store != nil {
		if err := store.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing index: %v\n", err)
			code = 1
		}
	}
	os.Exit(code)
}

// run imports PGN input and answers position commands. It returns the
// process exit code.
func run(ctx context.Context, cfg *config.Config, store index.Store, classifier *eco.ECOClassifier) int {
	code := 0
	args := flag.Args()
	positionMode := positionRequested()

	// Without position commands the input is always read, stdin included.
	if len(args) > 0 || !positionMode {
		im := newImporter(cfg, store)
		im.classifier = classifier
		im.filter = filterFromFlags()
		im.split = *splitVariants
		im.validate = *validateMode
		if err := im.importFiles(ctx, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			code = 1
		}
		if im.stats.failedFiles > 0 {
			code = 1
		}
		if !*quiet {
			reportStatistics(cfg, im.stats)
		}
	}

	if positionMode {
		pos, err := buildPosition(*fenFlag, *movesFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		opts := positionFlags()
		opts.colour = isTerminal(os.Stdout)
		if err := writePositionReport(os.Stdout, &pos, opts, store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	return code
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLogFile(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
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
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// loadECOClassifier loads the ECO classification file if specified.
func loadECOClassifier(cfg *config.Config) *eco.ECOClassifier {
	if *ecoFile == "" {
		return nil
	}

	classifier := eco.NewECOClassifier()
	if err := classifier.LoadFromFile(*ecoFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ECO file %s: %v\n", *ecoFile, err)
		os.Exit(1)
	}

	cfg.Logger.Info().Str("file", *ecoFile).Int("entries", classifier.EntriesLoaded()).Msg("loaded ECO classification")
	return classifier
}

// openIndex opens the position store named by -index, or returns nil.
func openIndex(cfg *config.Config) index.Store {
	if cfg.Import.IndexDir == "" {
		return nil
	}
	store, err := index.OpenBadgerStore(cfg.Import.IndexDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening index %s: %v\n", cfg.Import.IndexDir, err)
		os.Exit(1)
	}
	return store
}

// reportStatistics prints the final statistics to stderr.
func reportStatistics(cfg *config.Config, stats importStats) {
	if cfg.Duplicate.Suppress {
		fmt.Fprintf(os.Stderr, "%d game(s) output, %d duplicate(s) out of %d.\n", stats.output, stats.duplicates, stats.games)
	} else {
		fmt.Fprintf(os.Stderr, "%d game(s) output.\n", stats.output)
	}
	if stats.skipped > 0 {
		fmt.Fprintf(os.Stderr, "%d game(s) did not match the selection.\n", stats.skipped)
	}
	if *ecoFile != "" {
		fmt.Fprintf(os.Stderr, "%d game(s) classified.\n", stats.classified)
	}
	if stats.withErrors > 0 {
		fmt.Fprintf(os.Stderr, "%d game(s) had movetext errors.\n", stats.withErrors)
	}
	if cfg.Import.IndexDir != "" {
		fmt.Fprintf(os.Stderr, "%d move(s) indexed.\n", stats.positions)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chesstree [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays and rewrites chess games in PGN format.\n")
	fmt.Fprintf(os.Stderr, "With -fen, -moves, -legal, -board, -perft or -book it reports on a single position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-W):\n")
	fmt.Fprintf(os.Stderr, "  san    Standard Algebraic Notation (default)\n")
	fmt.Fprintf(os.Stderr, "  lalg   Long algebraic (e2e4)\n")
	fmt.Fprintf(os.Stderr, "  halg   Hyphenated long algebraic (e2-e4)\n")
	fmt.Fprintf(os.Stderr, "  elalg  Enhanced long algebraic (Ng1-f3), also \"lan\"\n")
	fmt.Fprintf(os.Stderr, "  uci    UCI format (e7e8q)\n")
}
