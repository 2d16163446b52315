package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chesstree-go/internal/errors"
)

// InputEncoding names the character set of PGN input.
type InputEncoding int

const (
	UTF8 InputEncoding = iota
	Latin1
)

// ImportConfig holds settings for reading and indexing games.
type ImportConfig struct {
	// Workers is the number of goroutines replaying games; 0 means one per CPU
	Workers int

	// Encoding of the input files
	Encoding InputEncoding

	// IndexDir is the position index directory; empty disables indexing
	IndexDir string
}

// NewImportConfig creates an ImportConfig with default values.
func NewImportConfig() *ImportConfig {
	return &ImportConfig{}
}

// WorkerCount returns the effective number of workers.
func (i *ImportConfig) WorkerCount() int {
	if i.Workers <= 0 {
		return runtime.NumCPU()
	}
	return i.Workers
}

// Validate checks that the import configuration is usable.
func (i *ImportConfig) Validate() error {
	if i.Workers < 0 {
		return fmt.Errorf("workers %d: %w", i.Workers, errors.ErrInvalidConfig)
	}
	if i.Encoding != UTF8 && i.Encoding != Latin1 {
		return fmt.Errorf("encoding %d: %w", i.Encoding, errors.ErrInvalidConfig)
	}
	return nil
}
