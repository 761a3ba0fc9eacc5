package reversi

import "fmt"

const Size = 8

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board is the 8x8 grid. A nil slot is empty. The zero value is an empty grid;
// use NewBoard for the starting layout.
type Board struct {
	grid [Size][Size]*Piece
}

// NewBoard - creates a board with white on (3,3),(4,4) and black on (3,4),(4,3).
func NewBoard() *Board {
	board := &Board{}

	board.grid[3][3] = NewPiece(White)
	board.grid[4][4] = NewPiece(White)
	board.grid[3][4] = NewPiece(Black)
	board.grid[4][3] = NewPiece(Black)

	return board
}

func (that *Board) IsValidPos(pos Position) bool {
	return pos.Row >= 0 && pos.Row < Size && pos.Col >= 0 && pos.Col < Size
}

// GetPiece returns nil with no error for an empty slot.
func (that *Board) GetPiece(pos Position) (*Piece, error) {
	if !that.IsValidPos(pos) {
		return nil, outOfBounds(pos)
	}

	return that.grid[pos.Row][pos.Col], nil
}

func (that *Board) IsOccupied(pos Position) (bool, error) {
	piece, err := that.GetPiece(pos)
	if err != nil {
		return false, err
	}

	return piece != nil, nil
}

// IsMine reports whether pos holds a piece of the given color. Empty slots are not mine.
func (that *Board) IsMine(pos Position, color Color) (bool, error) {
	piece, err := that.GetPiece(pos)
	if err != nil {
		return false, err
	}

	return piece != nil && piece.Color() == color, nil
}

// PlacePiece - puts a piece of color at pos and flips every captured piece.
// The grid is left untouched when an error is returned.
func (that *Board) PlacePiece(pos Position, color Color) ([]Position, error) {
	occupied, err := that.IsOccupied(pos)
	if err != nil {
		return nil, err
	}

	if occupied {
		return nil, &MoveError{Kind: ErrOccupiedCell, Pos: pos, Color: color}
	}

	flips := that.captures(pos, color)
	if len(flips) == 0 {
		return nil, &MoveError{Kind: ErrInvalidMove, Pos: pos, Color: color}
	}

	that.grid[pos.Row][pos.Col] = NewPiece(color)
	for _, flip := range flips {
		that.grid[flip.Row][flip.Col].Flip()
	}

	return flips, nil
}

func (that *Board) ValidMove(pos Position, color Color) bool {
	occupied, err := that.IsOccupied(pos)
	if err != nil || occupied {
		return false
	}

	return len(that.captures(pos, color)) > 0
}

// ValidMoves - returns the legal positions for color in row-major order.
func (that *Board) ValidMoves(color Color) []Position {
	var moves []Position

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			pos := Position{Row: row, Col: col}
			if that.ValidMove(pos, color) {
				moves = append(moves, pos)
			}
		}
	}

	return moves
}

func (that *Board) HasMove(color Color) bool {
	return len(that.ValidMoves(color)) > 0
}

// IsOver reports whether neither side can move. Empty cells may remain.
func (that *Board) IsOver() bool {
	return !that.HasMove(Black) && !that.HasMove(White)
}

func (that *Board) Count(color Color) int {
	count := 0

	for row := range that.grid {
		for _, piece := range that.grid[row] {
			if piece != nil && piece.Color() == color {
				count++
			}
		}
	}

	return count
}

// Score - returns black and white disc counts.
func (that *Board) Score() (int, int) {
	return that.Count(Black), that.Count(White)
}

// Winner returns the color with more discs. ok is false on a tie.
func (that *Board) Winner() (Color, bool) {
	black, white := that.Score()

	switch {
	case black > white:
		return Black, true
	case white > black:
		return White, true
	default:
		return NoColor, false
	}
}
