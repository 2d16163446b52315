// Package config provides configuration for chesstree.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chesstree-go/internal/errors"
)

// OutputFormat represents different output notation formats.
type OutputFormat int

const (
	SAN   OutputFormat = iota // Standard Algebraic Notation
	LALG                      // Long algebraic (e2e4)
	HALG                      // Hyphenated long algebraic (e2-e4)
	ELALG                     // Enhanced long algebraic (Ng1-f3)
	UCI                       // UCI format (e7e8q)
)

var outputFormatNames = [...]string{
	SAN:   "san",
	LALG:  "lalg",
	HALG:  "halg",
	ELALG: "elalg",
	UCI:   "uci",
}

// String returns the command line name of the format.
func (f OutputFormat) String() string {
	if f >= 0 && int(f) < len(outputFormatNames) {
		return outputFormatNames[f]
	}
	return "unknown"
}

// ParseOutputFormat maps a command line name to a format. "lan" is an
// alias for ELALG.
func ParseOutputFormat(name string) (OutputFormat, error) {
	if name == "lan" {
		return ELALG, nil
	}
	for f, n := range outputFormatNames {
		if n == name {
			return OutputFormat(f), nil
		}
	}
	return SAN, fmt.Errorf("output format %q: %w", name, errors.ErrInvalidConfig)
}

// TagOutputForm specifies which tags to output.
type TagOutputForm int

const (
	AllTags        TagOutputForm = 0
	SevenTagRoster TagOutputForm = 1
	NoTags         TagOutputForm = 2
)

// Config holds all program configuration.
type Config struct {
	// 0=warnings only, 1=progress, 2=debug
	Verbosity int

	Output    *OutputConfig
	Duplicate *DuplicateConfig
	Import    *ImportConfig

	// File handling
	CurrentInputFile string
	OutputFilename   string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	// Logger writes diagnostics to LogFile at the level set by Verbosity.
	Logger zerolog.Logger
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	cfg := &Config{
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		Import:     NewImportConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
	cfg.Logger = NewLogger(cfg.LogFile, cfg.Verbosity)
	return cfg
}

// SetOutput sets the stream games are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile redirects diagnostics and rebuilds the logger.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
	c.Logger = NewLogger(w, c.Verbosity)
}

// SetVerbosity changes the log level and rebuilds the logger.
func (c *Config) SetVerbosity(level int) {
	c.Verbosity = level
	c.Logger = NewLogger(c.LogFile, level)
}

// Validate checks that the configuration is consistent.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Import.Validate()
}
