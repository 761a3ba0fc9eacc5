package reversi

import (
	"fmt"
	"strings"
)

type Color int

const (
	NoColor Color = iota
	Black
	White
)

// Opposite - returns the other side. NoColor has no opposite and is returned unchanged.
func (that Color) Opposite() Color {
	switch that {
	case Black:
		return White
	case White:
		return Black
	default:
		return NoColor
	}
}

func (that Color) String() string {
	switch that {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}

// ParseColor accepts "black"/"white" in any case, or the single-letter symbols.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	default:
		return NoColor, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
}

// Piece is a disc on the board. Only the board creates pieces.
type Piece struct {
	color Color
}

func NewPiece(color Color) *Piece {
	return &Piece{color: color}
}

func (that *Piece) Color() Color {
	return that.color
}

// Flip - turns the disc over to the opposite color.
func (that *Piece) Flip() {
	that.color = that.color.Opposite()
}

// Symbol - single character used by text renderers.
func (that *Piece) Symbol() string {
	switch that.color {
	case Black:
		return "B"
	case White:
		return "W"
	default:
		return "?"
	}
}
