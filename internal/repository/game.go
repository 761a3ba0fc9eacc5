package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbGame struct {
	store jsonStore
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		store: jsonStore{client: client, prefix: "game", notFound: ErrGameNotFound},
	}
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	return that.store.put(ctx, game.ID, game)
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	var game entity.Game
	if err := that.store.get(ctx, id, &game); err != nil {
		return nil, err
	}

	return &game, nil
}

// DeleteByID - removes a game; ErrGameNotFound when nothing was stored under id.
func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	return that.store.del(ctx, id)
}
