package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/repository"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

type playerRequest struct {
	PlayerID string `json:"player_id"`
}

type turnRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	player, err := that.games.CreatePlayer(r.Context())
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, player)
}

func (that *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	player, err := that.games.GetPlayer(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, player)
}

func (that *Server) handleLeaveGame(w http.ResponseWriter, r *http.Request) {
	player, err := that.games.LeaveGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, player)
}

func (that *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerID == "" {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "player_id is required"})
		return
	}

	game, err := that.games.GetOrCreateGame(r.Context(), req.PlayerID)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) handleJoinGame(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerID == "" {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "player_id is required"})
		return
	}

	game, err := that.games.JoinGame(r.Context(), r.PathValue("id"), req.PlayerID)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) handleValidMoves(w http.ResponseWriter, r *http.Request) {
	moves, err := that.games.ValidMoves(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, moves)
}

func (that *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	moves, err := that.games.History(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, moves)
}

func (that *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Row == nil || req.Col == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "row and col are required"})
		return
	}

	pos := reversi.Position{Row: *req.Row, Col: *req.Col}

	game, err := that.games.MakeTurn(r.Context(), r.PathValue("id"), pos)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrGameNotFound),
		errors.Is(err, repository.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, reversi.ErrOutOfBounds):
		return http.StatusBadRequest
	case errors.Is(err, reversi.ErrInvalidMove):
		return http.StatusUnprocessableEntity
	case errors.Is(err, reversi.ErrOccupiedCell),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrGameIsNotStarted),
		errors.Is(err, apperror.ErrGameIsStarted),
		errors.Is(err, apperror.ErrGameFull),
		errors.Is(err, apperror.ErrAlreadyInGame),
		errors.Is(err, apperror.ErrNotInGame):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
		that.writeJSON(w, status, errorResponse{Error: http.StatusText(status)})

		return
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
