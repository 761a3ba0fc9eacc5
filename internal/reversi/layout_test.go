package reversi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardFromRows(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		board, err := NewBoardFromRows(initialRows)

		require.NoError(t, err)
		assert.Equal(t, NewBoard().Rows(), board.Rows())
	})

	t.Run("Wrong number of rows", func(t *testing.T) {
		_, err := NewBoardFromRows(initialRows[:7])
		require.ErrorIs(t, err, ErrInvalidLayout)
	})

	t.Run("Short row", func(t *testing.T) {
		rows := append([]string{}, initialRows...)
		rows[2] = "......."

		_, err := NewBoardFromRows(rows)
		require.ErrorIs(t, err, ErrInvalidLayout)
	})

	t.Run("Unknown symbol", func(t *testing.T) {
		rows := append([]string{}, initialRows...)
		rows[0] = "...X...."

		_, err := NewBoardFromRows(rows)
		require.ErrorIs(t, err, ErrInvalidLayout)
	})
}

func TestBoard_String(t *testing.T) {
	lines := strings.Split(NewBoard().String(), "\n")

	require.Len(t, lines, Size+1)
	assert.Equal(t, " # # # W B # # #", lines[4])
	assert.Equal(t, " # # # B W # # #", lines[5])
}
