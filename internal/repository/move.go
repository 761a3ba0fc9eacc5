package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

type MoveRepository interface {
	Save(ctx context.Context, move *entity.Move) error
	ListByGameID(ctx context.Context, gameID string) ([]*entity.Move, error)
}

type moveRepository struct {
	conn *sql.DB
}

func NewMoveRepository(conn *sql.DB) MoveRepository {
	return &moveRepository{
		conn: conn,
	}
}

// Save - records a move. Saving the same game and number again overwrites the row.
func (that *moveRepository) Save(ctx context.Context, move *entity.Move) error {
	query := `INSERT OR REPLACE INTO moves (game_id, number, player_id, color, pos_row, pos_col, flipped)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query,
		move.GameID, move.Number, move.PlayerID, move.Color, move.Row, move.Col, move.Flipped)
	if err != nil {
		return fmt.Errorf("can't save move: %w", err)
	}

	return nil
}

// ListByGameID - returns the moves of a game in play order.
func (that *moveRepository) ListByGameID(ctx context.Context, gameID string) ([]*entity.Move, error) {
	query := `SELECT game_id, number, player_id, color, pos_row, pos_col, flipped
		FROM moves WHERE game_id = ? ORDER BY number`

	rows, err := that.conn.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("can't list moves: %w", err)
	}
	defer rows.Close()

	var moves []*entity.Move
	for rows.Next() {
		var move entity.Move
		if err = rows.Scan(&move.GameID, &move.Number, &move.PlayerID, &move.Color, &move.Row, &move.Col, &move.Flipped); err != nil {
			return nil, fmt.Errorf("can't scan move: %w", err)
		}
		moves = append(moves, &move)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't iterate moves: %w", err)
	}

	return moves, nil
}
