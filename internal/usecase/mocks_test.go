package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/repository"
)

type mockPlayerRepo struct {
	mock.Mock
}

func newMockPlayerRepo(t *testing.T) *mockPlayerRepo {
	m := &mockPlayerRepo{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (that *mockPlayerRepo) CreateOrUpdate(ctx context.Context, player *entity.Player) error {
	args := that.Called(ctx, player)
	return args.Error(0)
}

func (that *mockPlayerRepo) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	args := that.Called(ctx, id)
	player, _ := args.Get(0).(*entity.Player)

	return player, args.Error(1)
}

type mockGameRepo struct {
	mock.Mock
}

func newMockGameRepo(t *testing.T) *mockGameRepo {
	m := &mockGameRepo{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)

	return game, args.Error(1)
}

func (that *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

// storedGameRepo keeps games as JSON, so every read hands out a fresh copy the
// way the redis repository does. failNext makes the next save fail once.
type storedGameRepo struct {
	games    map[string][]byte
	failNext error
}

func newStoredGameRepo(t *testing.T, games ...*entity.Game) *storedGameRepo {
	t.Helper()

	repo := &storedGameRepo{games: map[string][]byte{}}
	for _, game := range games {
		require.NoError(t, repo.CreateOrUpdate(context.Background(), game))
	}

	return repo
}

func (that *storedGameRepo) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	if that.failNext != nil {
		err := that.failNext
		that.failNext = nil

		return err
	}

	payload, err := json.Marshal(game)
	if err != nil {
		return err
	}

	that.games[game.ID] = payload

	return nil
}

func (that *storedGameRepo) GetByID(_ context.Context, id string) (*entity.Game, error) {
	payload, ok := that.games[id]
	if !ok {
		return nil, repository.ErrGameNotFound
	}

	var game entity.Game
	if err := json.Unmarshal(payload, &game); err != nil {
		return nil, err
	}

	return &game, nil
}

func (that *storedGameRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := that.games[id]; !ok {
		return repository.ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}

type mockMoveRepo struct {
	mock.Mock
}

func newMockMoveRepo(t *testing.T) *mockMoveRepo {
	m := &mockMoveRepo{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (that *mockMoveRepo) Save(ctx context.Context, move *entity.Move) error {
	args := that.Called(ctx, move)
	return args.Error(0)
}

func (that *mockMoveRepo) ListByGameID(ctx context.Context, gameID string) ([]*entity.Move, error) {
	args := that.Called(ctx, gameID)
	moves, _ := args.Get(0).([]*entity.Move)

	return moves, args.Error(1)
}
