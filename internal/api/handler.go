package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"promptpilot/backend/internal/auth"
	"promptpilot/backend/internal/interfaces"
)

// ChatHandler handles HTTP requests for chat sessions and messaging.
type ChatHandler struct {
	service interfaces.ChatService
}

func NewChatHandler(svc interfaces.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// SendMessageRequest is the DTO for POST /v1/chat.
type SendMessageRequest struct {
	ChatID      string `json:"chatId" validate:"required" example:"8f14e45f-ceea-4673-9a0b-5c3e1f0e2d11"`
	UserMessage string `json:"userMessage" validate:"required,min=1" example:"How do I revert a commit?"`
}

// ListChats godoc
// @Summary      List chats
// @Description  Lists the authenticated user's chats, most recently updated first.
// @Tags         Chats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ChatListResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /v1/chat/list [get]
func (h *ChatHandler) ListChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.service.ListChats(r.Context(), auth.OwnerID(r.Context()))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ChatListResponse{Chats: chats})
}

// CreateChat godoc
// @Summary      Create a chat
// @Description  Creates an empty chat with a sequential default name.
// @Tags         Chats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.ChatSummary
// @Failure      401  {object}  ErrorResponse
// @Router       /v1/chat/new [post]
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	chat, err := h.service.CreateChat(r.Context(), auth.OwnerID(r.Context()))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"chatId":    chat.ID,
		"name":      chat.Name,
		"updatedAt": chat.UpdatedAt,
	})
}

// GetMessages godoc
// @Summary      Get chat messages
// @Description  Returns the current live message log of a chat.
// @Tags         Chats
// @Produce      json
// @Security     BearerAuth
// @Param        chatID  path  string  true  "Chat ID"
// @Success      200  {object}  MessagesResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/chat/{chatID}/messages [get]
func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	messages, err := h.service.GetMessages(r.Context(), auth.OwnerID(r.Context()), chatID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessagesResponse{ChatID: chatID, Messages: messages})
}

// SendMessage godoc
// @Summary      Send a message
// @Description  Appends the user message to the chat log, generates the assistant reply and appends it too.
// @Tags         Chats
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        message  body  SendMessageRequest  true  "Message"
// @Success      200  {object}  ChatReplyResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      504  {object}  ErrorResponse
// @Router       /v1/chat [post]
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload.", Code: "validation_failed"})
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	result, err := h.service.SendMessage(r.Context(), auth.OwnerID(r.Context()), req.ChatID, req.UserMessage)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ChatReplyResponse{
		ChatID:           result.ChatID,
		AssistantMessage: result.AssistantMessage.Content,
		Timestamp:        result.AssistantMessage.Timestamp,
	})
}
