package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/repository"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type moveRepo interface {
	Save(ctx context.Context, move *entity.Move) error
	ListByGameID(ctx context.Context, gameID string) ([]*entity.Move, error)
}

// GameManager runs reversi sessions on top of the board rules: it seats players,
// alternates turns and records every accepted move.
type GameManager struct {
	logger     *slog.Logger
	playerRepo playerRepo
	gameRepo   gameRepo
	moveRepo   moveRepo
}

func NewGameManager(logger *slog.Logger, playerRepo playerRepo, gameRepo gameRepo, moveRepo moveRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		moveRepo:   moveRepo,
	}
}

func (that *GameManager) CreatePlayer(ctx context.Context) (*entity.Player, error) {
	player := &entity.Player{
		ID: uuid.NewString(),
	}

	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

func (that *GameManager) GetPlayer(ctx context.Context, id string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

// GetOrCreateGame - returns the player's current game or opens a new one with the player as black.
func (that *GameManager) GetOrCreateGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	current, err := that.boundGame(ctx, player)
	if err != nil {
		return nil, err
	}

	if current != nil {
		return current, nil
	}

	game := entity.NewGame(uuid.NewString())

	player.GameID = game.ID
	player.Color = entity.ColorBlack
	if err = that.updatePlayer(ctx, player); err != nil {
		return nil, err
	}

	game.Players = []*entity.Player{player}
	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game created", "gameID", game.ID, "playerID", player.ID)

	return game, nil
}

// JoinGame seats the player as white and starts the game.
func (that *GameManager) JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	player, err := that.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.GameID == game.ID && game.SeatOf(player.ID) != nil && !game.IsFinished() {
		return game, nil
	}

	if player.GameID != game.ID {
		current, err := that.boundGame(ctx, player)
		if err != nil {
			return nil, err
		}

		if current != nil {
			return nil, fmt.Errorf("%w: game id %s", apperror.ErrAlreadyInGame, current.ID)
		}
	}

	if game.IsFull() || !game.IsWaiting() {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameFull, gameID)
	}

	player.GameID = game.ID
	player.Color = entity.ColorWhite
	if err = that.updatePlayer(ctx, player); err != nil {
		return nil, err
	}

	game.Status = entity.StatusOngoing
	game.Players = append(game.Players, player)
	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("player joined game", "gameID", game.ID, "playerID", player.ID)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// ValidMoves - legal positions for the side to move. Empty once the game is finished.
func (that *GameManager) ValidMoves(ctx context.Context, gameID string) ([]reversi.Position, error) {
	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.IsFinished() {
		return []reversi.Position{}, nil
	}

	board, err := game.LoadBoard()
	if err != nil {
		return nil, err
	}

	moves := board.ValidMoves(game.TurnColor())
	if moves == nil {
		moves = []reversi.Position{}
	}

	return moves, nil
}

// MakeTurn - places the player's piece. The turn passes to the opponent unless
// the opponent has no legal move, in which case the same player moves again.
func (that *GameManager) MakeTurn(ctx context.Context, playerID string, pos reversi.Position) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "playerID", playerID)

	player, err := that.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.GameID == "" {
		return nil, apperror.ErrNotInGame
	}

	game, err := that.GetGame(ctx, player.GameID)
	if err != nil {
		return nil, err
	}

	seat := game.SeatOf(player.ID)
	if seat == nil {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrNotInGame, game.ID)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, err
	}

	color, err := reversi.ParseColor(seat.Color)
	if err != nil {
		return nil, fmt.Errorf("player %s: %w", player.ID, err)
	}

	if game.TurnColor() != color {
		return game, apperror.ErrNotYourTurn
	}

	board, err := game.LoadBoard()
	if err != nil {
		return nil, err
	}

	flips, err := board.PlacePiece(pos, color)
	if err != nil {
		return game, fmt.Errorf("invalid turn: %w", err)
	}

	game.Moves++
	game.UpdateGameState(board, color)

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	move := &entity.Move{
		GameID:   game.ID,
		Number:   game.Moves,
		PlayerID: player.ID,
		Color:    color.String(),
		Row:      pos.Row,
		Col:      pos.Col,
		Flipped:  len(flips),
	}

	// The stored game is authoritative; a lost history row does not undo the turn.
	if err = that.moveRepo.Save(ctx, move); err != nil {
		log.Error("failed to record move", "gameID", game.ID, "number", move.Number, "error", err)
	}

	log.Debug("turn made", "gameID", game.ID, "pos", pos.String(), "flipped", len(flips))

	if game.IsFinished() {
		that.releasePlayers(ctx, game)
		log.Info("game finished", "gameID", game.ID, "winner", game.Winner)
	}

	return game, nil
}

func (that *GameManager) History(ctx context.Context, gameID string) ([]*entity.Move, error) {
	if _, err := that.GetGame(ctx, gameID); err != nil {
		return nil, err
	}

	moves, err := that.moveRepo.ListByGameID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	if moves == nil {
		moves = []*entity.Move{}
	}

	return moves, nil
}

// LeaveGame - unbinds the player from its game. A waiting game the player opened is
// removed; a game already under way cannot be left.
func (that *GameManager) LeaveGame(ctx context.Context, playerID string) (*entity.Player, error) {
	log := that.logger.With("method", "LeaveGame", "playerID", playerID)

	player, err := that.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.GameID == "" {
		return player, nil
	}

	game, err := that.boundGame(ctx, player)
	if err != nil {
		return nil, err
	}

	if game != nil {
		if !game.IsWaiting() {
			return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameIsStarted, game.ID)
		}

		if err = that.gameRepo.DeleteByID(ctx, game.ID); err != nil && !errors.Is(err, repository.ErrGameNotFound) {
			return nil, fmt.Errorf("failed to delete game: %w", err)
		}

		log.Info("waiting game removed", "gameID", game.ID)
	}

	released := &entity.Player{ID: player.ID}
	if err = that.updatePlayer(ctx, released); err != nil {
		return nil, err
	}

	return released, nil
}

// boundGame - the unfinished game the player is seated in, nil when the player is free.
// A binding to a finished or removed game, or to one without the player's seat, counts as free.
func (that *GameManager) boundGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	if player.GameID == "" {
		return nil, nil
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if errors.Is(err, repository.ErrGameNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if game.IsFinished() || game.SeatOf(player.ID) == nil {
		return nil, nil
	}

	return game, nil
}

// releasePlayers frees the players of a finished game so they can start another one.
// The finished game itself stays stored for lookups. A failed release is harmless:
// boundGame treats a finished game as no binding.
func (that *GameManager) releasePlayers(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "releasePlayers", "gameID", game.ID)

	for _, player := range game.Players {
		released := &entity.Player{ID: player.ID}

		if err := that.playerRepo.CreateOrUpdate(ctx, released); err != nil {
			log.Error("failed to update player", "playerID", player.ID, "error", err)
		}
	}
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) updatePlayer(ctx context.Context, player *entity.Player) error {
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	return nil
}
