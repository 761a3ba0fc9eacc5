package reversi

import (
	"fmt"
	"strings"
)

const emptySymbol = "."

// Rows encodes the grid as eight strings of B, W and '.' (top row first).
func (that *Board) Rows() []string {
	rows := make([]string, Size)

	for row := range that.grid {
		var sb strings.Builder
		for _, piece := range that.grid[row] {
			if piece == nil {
				sb.WriteString(emptySymbol)
				continue
			}
			sb.WriteString(piece.Symbol())
		}
		rows[row] = sb.String()
	}

	return rows
}

// NewBoardFromRows - inverse of Rows.
func NewBoardFromRows(rows []string) (*Board, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidLayout, Size, len(rows))
	}

	board := &Board{}

	for row, line := range rows {
		if len(line) != Size {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrInvalidLayout, row, len(line))
		}

		for col, cell := range line {
			switch string(cell) {
			case emptySymbol:
			case "B":
				board.grid[row][col] = NewPiece(Black)
			case "W":
				board.grid[row][col] = NewPiece(White)
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %s", ErrInvalidLayout, cell, Position{Row: row, Col: col})
			}
		}
	}

	return board, nil
}

// String renders the grid the way the console client prints it, '#' marking empty cells.
func (that *Board) String() string {
	var sb strings.Builder

	for row := range that.grid {
		sb.WriteString("\n")
		for _, piece := range that.grid[row] {
			sb.WriteString(" ")
			if piece == nil {
				sb.WriteString("#")
				continue
			}
			sb.WriteString(piece.Symbol())
		}
	}

	return sb.String()
}
