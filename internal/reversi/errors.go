package reversi

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds   = errors.New("position is out of bounds")
	ErrOccupiedCell  = errors.New("cell is already occupied")
	ErrInvalidMove   = errors.New("move captures no pieces")
	ErrInvalidLayout = errors.New("invalid board layout")
	ErrUnknownColor  = errors.New("unknown color")
)

// MoveError carries the rejected position and color alongside one of
// ErrOutOfBounds, ErrOccupiedCell or ErrInvalidMove.
type MoveError struct {
	Kind  error
	Pos   Position
	Color Color
}

func (that *MoveError) Error() string {
	if that.Color == NoColor {
		return fmt.Sprintf("%v: %s", that.Kind, that.Pos)
	}

	return fmt.Sprintf("%v: %s at %s", that.Kind, that.Color, that.Pos)
}

func (that *MoveError) Unwrap() error {
	return that.Kind
}

func outOfBounds(pos Position) error {
	return &MoveError{Kind: ErrOutOfBounds, Pos: pos}
}
