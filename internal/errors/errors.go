// Package errors provides sentinel errors and error types for the rules
// engine. It defines the failure conditions the engine reports instead of
// terminating the process, structured so callers can inspect them with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the engine's failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedPlacement indicates a placement string that cannot be
	// parsed into a 64-cell layout with exactly one king per colour.
	ErrMalformedPlacement = errors.New("malformed placement string")

	// ErrOutOfBoard indicates file or rank arithmetic that left the board.
	ErrOutOfBoard = errors.New("square out of board")

	// ErrInvalidMove indicates a move that cannot be applied, such as a
	// move from an empty origin or a pawn reaching the back rank without
	// a promotion target.
	ErrInvalidMove = errors.New("invalid move")

	// ErrGameOver indicates a move applied after the game was decided.
	ErrGameOver = errors.New("game already decided")

	// ErrMalformedSAN indicates SAN text that does not match any move form.
	ErrMalformedSAN = errors.New("malformed SAN text")

	// ErrUnresolvedSAN indicates a SAN move no piece in the current
	// position can play.
	ErrUnresolvedSAN = errors.New("unresolved SAN move")

	// ErrAmbiguousSAN indicates a SAN move more than one piece in the
	// current position could play.
	ErrAmbiguousSAN = errors.New("ambiguous SAN move")
)

// MoveError wraps errors with move context: the offending move text and
// the position's side to move and move number. It supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err        error  // The underlying error
	MoveText   string // The move that caused the error
	SideToMove string // Whose turn it was
	MoveNumber uint   // The move number in the game (0 if not applicable)
}

// Error returns a formatted message including all available context.
func (e *MoveError) Error() string {
	msg := fmt.Sprintf("move %q", e.MoveText)
	if e.SideToMove != "" {
		if e.MoveNumber > 0 {
			msg += fmt.Sprintf(" (%s, move %d)", e.SideToMove, e.MoveNumber)
		} else {
			msg += fmt.Sprintf(" (%s)", e.SideToMove)
		}
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error, enabling errors.Is() and
// errors.As() to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// PlacementError reports where in a placement string parsing failed.
type PlacementError struct {
	Err    error // The underlying error
	Rank   int   // Board rank being parsed, 8 down to 1 (0 if structural)
	Symbol rune  // The offending symbol (0 if structural)
}

// Error returns a formatted message with the failure location.
func (e *PlacementError) Error() string {
	switch {
	case e.Symbol != 0 && e.Rank != 0:
		return fmt.Sprintf("rank %d: symbol %q: %v", e.Rank, e.Symbol, e.Err)
	case e.Rank != 0:
		return fmt.Sprintf("rank %d: %v", e.Rank, e.Err)
	default:
		return e.Err.Error()
	}
}

// Unwrap returns the underlying error.
func (e *PlacementError) Unwrap() error {
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
