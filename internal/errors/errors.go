// Package errors provides sentinel errors and error types for chesstree.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a square name that is not a1..h8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidMove indicates move text that is syntactically malformed.
	ErrInvalidMove = errors.New("invalid move")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrAmbiguousMove indicates SAN text matching more than one legal move.
	// It wraps ErrIllegalMove.
	ErrAmbiguousMove = fmt.Errorf("ambiguous move: %w", ErrIllegalMove)

	// ErrDuplicateVariation indicates the move already has a child node.
	ErrDuplicateVariation = errors.New("variation already exists")

	// ErrNoSuchVariation indicates the move has no child node.
	ErrNoSuchVariation = errors.New("no such variation")

	// ErrParseFailure indicates a general PGN parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDuplicateGame indicates a duplicate game was detected.
	ErrDuplicateGame = errors.New("duplicate game")

	// ErrNotFound indicates a position key missing from the index.
	ErrNotFound = errors.New("not found")
)

// FENError reports why a FEN string was rejected.
type FENError struct {
	FEN    string // The rejected input
	Reason string // Which field or rule failed
}

// Error returns a formatted error message.
func (e *FENError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%v: %q", ErrInvalidFEN, e.FEN)
	}
	return fmt.Sprintf("%v: %s: %q", ErrInvalidFEN, e.Reason, e.FEN)
}

// Unwrap returns ErrInvalidFEN.
func (e *FENError) Unwrap() error {
	return ErrInvalidFEN
}

// MoveError reports move text or a move that could not be used in a position.
type MoveError struct {
	Err    error  // ErrInvalidMove or ErrIllegalMove
	Move   string // The move as written
	FEN    string // Position the move was tried in (empty for pure syntax errors)
	Reason string // Optional detail
}

// Error returns a formatted error message.
func (e *MoveError) Error() string {
	var b strings.Builder
	err := e.Err
	if err == nil {
		err = ErrIllegalMove
	}
	fmt.Fprintf(&b, "%v %q", err, e.Move)
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if e.FEN != "" {
		fmt.Fprintf(&b, " in %s", e.FEN)
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	if e.Err == nil {
		return ErrIllegalMove
	}
	return e.Err
}

// AmbiguousMoveError reports SAN text that matches more than one legal move.
type AmbiguousMoveError struct {
	Move       string   // The SAN text
	FEN        string   // Position the move was tried in
	Candidates []string // UCI text of every matching move
}

// Error returns a formatted error message.
func (e *AmbiguousMoveError) Error() string {
	return fmt.Sprintf("ambiguous move %q in %s: candidates %s",
		e.Move, e.FEN, strings.Join(e.Candidates, ", "))
}

// Unwrap returns ErrAmbiguousMove, which in turn wraps ErrIllegalMove.
func (e *AmbiguousMoveError) Unwrap() error {
	return ErrAmbiguousMove
}

// GameError wraps errors with game context, including game number,
// ply position, and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameNum  int    // 1-based game number in the file
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	File     string // Source file name (if known)
	Line     int    // Line number in source file (if known)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	parts = append(parts, fmt.Sprintf("game %d", e.GameNum))

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with file location context.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}
