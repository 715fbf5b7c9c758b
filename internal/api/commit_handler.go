package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"promptpilot/backend/internal/auth"
	"promptpilot/backend/internal/interfaces"
)

// CommitHandler handles HTTP requests for the commit/fetch subsystem.
type CommitHandler struct {
	service interfaces.CommitService
}

func NewCommitHandler(svc interfaces.CommitService) *CommitHandler {
	return &CommitHandler{service: svc}
}

// CommitRequest is the DTO for POST /v1/commits/commit. Name may be
// empty; the service substitutes a sequential fallback.
type CommitRequest struct {
	ChatID string `json:"chatId" validate:"required" example:"8f14e45f-ceea-4673-9a0b-5c3e1f0e2d11"`
	Name   string `json:"name" validate:"max=200" example:"before refactor"`
}

// CreateCommit godoc
// @Summary      Commit a chat
// @Description  Snapshots the chat's current message log under a named, immutable commit.
// @Tags         Commits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        commit  body  CommitRequest  true  "Commit"
// @Success      200  {object}  CommitResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/commits/commit [post]
func (h *CommitHandler) CreateCommit(w http.ResponseWriter, r *http.Request) {
	var req CommitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload.", Code: "validation_failed"})
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	commit, err := h.service.Commit(r.Context(), auth.OwnerID(r.Context()), req.ChatID, req.Name)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, CommitResponse{
		CommitID:     commit.ID,
		ChatID:       commit.ChatID,
		Name:         commit.Name,
		Timestamp:    commit.CreatedAt,
		MessageCount: len(commit.Messages),
	})
}

// FetchCommit godoc
// @Summary      Fetch a commit
// @Description  Restores the owning chat's live log from the commit's snapshot. Commit records themselves are never changed.
// @Tags         Commits
// @Produce      json
// @Security     BearerAuth
// @Param        commitID  path  string  true  "Commit ID"
// @Success      200  {object}  FetchResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/commits/fetch/{commitID} [post]
func (h *CommitHandler) FetchCommit(w http.ResponseWriter, r *http.Request) {
	commitID := chi.URLParam(r, "commitID")
	result, err := h.service.Fetch(r.Context(), auth.OwnerID(r.Context()), commitID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, FetchResponse{
		CommitID:         result.CommitID,
		ChatID:           result.ChatID,
		RestoredMessages: result.RestoredMessages,
		Timestamp:        result.RestoredAt,
	})
}

// GetHistory godoc
// @Summary      Commit history
// @Description  Lists a chat's commits newest-first, metadata only. Empty for a chat with no commits.
// @Tags         Commits
// @Produce      json
// @Security     BearerAuth
// @Param        chatID  path  string  true  "Chat ID"
// @Success      200  {object}  CommitHistoryResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/commits/{chatID} [get]
func (h *CommitHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	history, err := h.service.History(r.Context(), auth.OwnerID(r.Context()), chatID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, CommitHistoryResponse{
		ChatID:     chatID,
		Commits:    history,
		TotalCount: len(history),
	})
}
