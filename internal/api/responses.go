package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	app_errors "promptpilot/backend/internal/errors"
	"promptpilot/backend/internal/model"
)

// This file contains shared DTOs for API responses and helpers for
// sending consistent HTTP responses.

// ErrorResponse is the standard JSON error envelope. Code is a stable
// machine-readable identifier so the presentation layer can render a
// specific explanation per failure mode.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ChatListResponse answers GET /v1/chat/list.
type ChatListResponse struct {
	Chats []model.ChatSummary `json:"chats"`
}

// MessagesResponse answers GET /v1/chat/{chatId}/messages.
type MessagesResponse struct {
	ChatID   string          `json:"chatId"`
	Messages []model.Message `json:"messages"`
}

// ChatReplyResponse answers POST /v1/chat.
type ChatReplyResponse struct {
	ChatID           string    `json:"chatId"`
	AssistantMessage string    `json:"assistantMessage"`
	Timestamp        time.Time `json:"timestamp"`
}

// CommitResponse is the metadata of a freshly created commit.
type CommitResponse struct {
	CommitID     string    `json:"commitId"`
	ChatID       string    `json:"chatId"`
	Name         string    `json:"name"`
	Timestamp    time.Time `json:"timestamp"`
	MessageCount int       `json:"messageCount"`
}

// FetchResponse answers POST /v1/commits/fetch/{commitId}.
type FetchResponse struct {
	CommitID         string          `json:"commitId"`
	ChatID           string          `json:"chatId"`
	RestoredMessages []model.Message `json:"restoredMessages"`
	Timestamp        time.Time       `json:"timestamp"`
}

// CommitHistoryResponse answers GET /v1/commits/{chatId}.
type CommitHistoryResponse struct {
	ChatID     string                `json:"chatId"`
	Commits    []model.CommitSummary `json:"commits"`
	TotalCount int                   `json:"totalCount"`
}

// respondWithError is the centralized error handling function for the
// API layer. It maps business-layer sentinel errors to HTTP status
// codes and stable error codes.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var code, message string

	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		code = "not_found"
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		code = "validation_failed"
		// Validation messages from the service layer are already
		// descriptive and safe to show.
		message = err.Error()
	case errors.Is(err, app_errors.ErrPermission):
		statusCode = http.StatusForbidden
		code = "forbidden"
		message = "You do not have permission to access this resource."
	case errors.Is(err, app_errors.ErrUpstreamTimeout):
		statusCode = http.StatusGatewayTimeout
		code = "upstream_timeout"
		message = "Reply generation timed out. Your message was saved; resend it to retry."
	case errors.Is(err, app_errors.ErrStorage):
		statusCode = http.StatusInternalServerError
		code = "storage_failure"
		message = "A storage error occurred. The operation was not completed."
	default:
		statusCode = http.StatusInternalServerError
		code = "internal"
		message = "An unexpected internal server error occurred."
	}

	// Log the detailed error; the client gets the stable message only.
	slog.Warn("Responding with error", "status_code", statusCode, "code", code, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message, Code: code})
}

// respondWithJSON marshals a payload and writes it with the given
// status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
