package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

const shutdownTimeout = 5 * time.Second

type gameUseCase interface {
	CreatePlayer(ctx context.Context) (*entity.Player, error)
	GetPlayer(ctx context.Context, id string) (*entity.Player, error)
	LeaveGame(ctx context.Context, playerID string) (*entity.Player, error)

	GetOrCreateGame(ctx context.Context, playerID string) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	ValidMoves(ctx context.Context, gameID string) ([]reversi.Position, error)
	History(ctx context.Context, gameID string) ([]*entity.Move, error)

	MakeTurn(ctx context.Context, playerID string, pos reversi.Position) (*entity.Game, error)
}

type Server struct {
	logger *slog.Logger
	games  gameUseCase
}

func New(logger *slog.Logger, games gameUseCase) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		games:  games,
	}
}

// Routes - registers every endpoint on a fresh mux.
func (that *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", that.handlePing)

	mux.HandleFunc("POST /players", that.handleCreatePlayer)
	mux.HandleFunc("GET /players/{id}", that.handleGetPlayer)
	mux.HandleFunc("POST /players/{id}/turn", that.handleTurn)
	mux.HandleFunc("POST /players/{id}/leave", that.handleLeaveGame)

	mux.HandleFunc("POST /games", that.handleNewGame)
	mux.HandleFunc("GET /games/{id}", that.handleGetGame)
	mux.HandleFunc("POST /games/{id}/join", that.handleJoinGame)
	mux.HandleFunc("GET /games/{id}/moves", that.handleValidMoves)
	mux.HandleFunc("GET /games/{id}/history", that.handleHistory)

	return that.logRequests(mux)
}

// Start - serves until ctx is canceled, then shuts the server down.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		that.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
