package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

var ErrPlayerNotFound = errors.New("player not found")

// PlayerRepository keeps each player with the game and color it is bound to.
type PlayerRepository interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type dbPlayer struct {
	store jsonStore
}

func NewPlayerRepository(client *redis.Client) PlayerRepository {
	return &dbPlayer{
		store: jsonStore{client: client, prefix: "player", notFound: ErrPlayerNotFound},
	}
}

func (that *dbPlayer) CreateOrUpdate(ctx context.Context, player *entity.Player) error {
	return that.store.put(ctx, player.ID, player)
}

func (that *dbPlayer) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	var player entity.Player
	if err := that.store.get(ctx, id, &player); err != nil {
		return nil, err
	}

	return &player, nil
}
