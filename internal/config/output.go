package config

import (
	"fmt"

	"github.com/lgbarn/chesstree-go/internal/errors"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the output notation format (SAN, LALG, etc.)
	Format OutputFormat

	// MaxLineLength is the maximum line length for PGN output
	MaxLineLength uint

	// JSONFormat enables JSON output instead of PGN
	JSONFormat bool

	// KeepMoveNumbers controls whether move numbers are included
	KeepMoveNumbers bool

	// KeepResults controls whether game results are included
	KeepResults bool

	// KeepChecks controls whether check symbols (+, #) are included
	KeepChecks bool

	// KeepNAGs controls whether Numeric Annotation Glyphs are kept
	KeepNAGs bool

	// SymbolicNAGs writes $1 to $6 as !, ?, !!, ??, !?, ?!
	SymbolicNAGs bool

	// KeepComments controls whether comments are kept in output
	KeepComments bool

	// KeepVariations controls whether variations (RAV) are kept
	KeepVariations bool

	// StripClockAnnotations removes [%clk ...] annotations from comments
	StripClockAnnotations bool

	// TagFormat specifies which tags to output (AllTags, SevenTagRoster, NoTags)
	TagFormat TagOutputForm
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          SAN,
		MaxLineLength:   80,
		KeepMoveNumbers: true,
		KeepResults:     true,
		KeepChecks:      true,
		KeepNAGs:        true,
		KeepComments:    true,
		KeepVariations:  true,
		TagFormat:       AllTags,
	}
}

// Validate checks that the output configuration is usable.
func (o *OutputConfig) Validate() error {
	if o.Format < SAN || o.Format > UCI {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.MaxLineLength > 0 && o.MaxLineLength < 10 {
		return fmt.Errorf("line length %d is too short: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	if o.TagFormat < AllTags || o.TagFormat > NoTags {
		return fmt.Errorf("tag format %d: %w", o.TagFormat, errors.ErrInvalidConfig)
	}
	return nil
}
