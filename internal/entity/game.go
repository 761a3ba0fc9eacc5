package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	ColorBlack = "black"
	ColorWhite = "white"
	ColorTie   = "-"

	MaxPlayers = 2
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is the persisted session around a reversi board. Board holds the
// rows produced by reversi.Board.Rows.
type Game struct {
	ID      string    `json:"id"`
	Board   []string  `json:"board"`
	Turn    string    `json:"turn"`
	Winner  string    `json:"winner"`
	Status  string    `json:"status"`
	Black   int       `json:"black"`
	White   int       `json:"white"`
	Moves   int       `json:"moves"`
	Players []*Player `json:"players,omitempty"`
}

func NewGame(id string) *Game {
	game := &Game{
		ID:     id,
		Turn:   ColorBlack,
		Status: StatusWaiting,
	}
	game.SetBoard(reversi.NewBoard())

	return game
}

// LoadBoard - decodes the stored rows into a playable board.
func (that *Game) LoadBoard() (*reversi.Board, error) {
	board, err := reversi.NewBoardFromRows(that.Board)
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", that.ID, err)
	}

	return board, nil
}

// SetBoard stores the board rows and refreshes the disc counts.
func (that *Game) SetBoard(board *reversi.Board) {
	that.Board = board.Rows()
	that.Black, that.White = board.Score()
}

// UpdateGameState - hands the turn to whoever can move next or finishes the game.
// mover is the side that just played; it keeps the turn when the opponent must pass.
func (that *Game) UpdateGameState(board *reversi.Board, mover reversi.Color) {
	that.SetBoard(board)

	if board.IsOver() {
		that.Status = StatusFinished
		that.Turn = ""

		if winner, ok := board.Winner(); ok {
			that.Winner = winner.String()
		} else {
			that.Winner = ColorTie
		}

		return
	}

	that.Status = StatusOngoing

	if board.HasMove(mover.Opposite()) {
		that.Turn = mover.Opposite().String()
	} else {
		that.Turn = mover.String()
	}
}

// TurnColor - color of the side to move, NoColor when the game is finished.
func (that *Game) TurnColor() reversi.Color {
	color, err := reversi.ParseColor(that.Turn)
	if err != nil {
		return reversi.NoColor
	}

	return color
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) IsFull() bool {
	return len(that.Players) >= MaxPlayers
}

// SeatOf - the seated player with the given id, nil when the player holds no seat.
func (that *Game) SeatOf(playerID string) *Player {
	for _, player := range that.Players {
		if player.ID == playerID {
			return player
		}
	}

	return nil
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
