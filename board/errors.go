package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFEN    = errors.New("invalid FEN")
	ErrInvalidSquare = errors.New("invalid square")
	ErrInvalidMove   = errors.New("invalid move text")
	ErrIllegalMove   = errors.New("illegal move")
	ErrCorruptBoard  = errors.New("board invariant violated")

	// ErrHistoryUnderflow is the panic value of UndoMove on an empty history.
	ErrHistoryUnderflow = errors.New("undo with empty move history")
)

// ParseError describes a malformed position description.
type ParseError struct {
	Field  string // "placement", "side", "castling", "en passant", "halfmove", "fullmove"
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid FEN: %s %q: %s", e.Field, e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrInvalidFEN }

// InvariantError reports the first mismatch found by Validate.
type InvariantError struct {
	Check  string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("board invariant violated: %s: %s", e.Check, e.Detail)
}

func (e *InvariantError) Unwrap() error { return ErrCorruptBoard }
