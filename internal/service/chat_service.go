package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	app_errors "promptpilot/backend/internal/errors"
	"promptpilot/backend/internal/llm"
	"promptpilot/backend/internal/model"
	"promptpilot/backend/internal/repository"
)

// ChatService owns the chat sessions: creation, listing, the live
// message log, and the round trip to the reply generator.
type ChatService struct {
	repo         repository.Repository
	generator    llm.ReplyGenerator
	locks        *LockTable
	replyTimeout time.Duration
}

// SendResult is what a completed message round trip returns: the
// assistant's reply as appended to the log.
type SendResult struct {
	ChatID           string
	AssistantMessage model.Message
}

func NewChatService(repo repository.Repository, generator llm.ReplyGenerator, locks *LockTable, replyTimeout time.Duration) *ChatService {
	return &ChatService{repo: repo, generator: generator, locks: locks, replyTimeout: replyTimeout}
}

// CreateChat creates an empty chat with a sequential default name
// ("Chat 1", "Chat 2", ...) scoped to the owner.
func (s *ChatService) CreateChat(ctx context.Context, ownerID string) (*model.Chat, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner id is empty", app_errors.ErrValidation)
	}
	count, err := s.repo.CountChats(ctx, ownerID)
	if err != nil {
		return nil, storageFailure("could not count chats", err)
	}
	now := time.Now().UTC()
	chat := &model.Chat{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Name:      fmt.Sprintf("Chat %d", count+1),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateChat(ctx, chat); err != nil {
		return nil, storageFailure("could not create chat", err)
	}
	slog.Info("Created chat", "chat_id", chat.ID, "name", chat.Name)
	return chat, nil
}

// ListChats returns the owner's chats, most recently updated first.
func (s *ChatService) ListChats(ctx context.Context, ownerID string) ([]model.ChatSummary, error) {
	chats, err := s.repo.GetChats(ctx, ownerID)
	if err != nil {
		return nil, storageFailure("could not list chats", err)
	}
	summaries := make([]model.ChatSummary, 0, len(chats))
	for _, chat := range chats {
		summaries = append(summaries, model.ChatSummary{ChatID: chat.ID, Name: chat.Name, UpdatedAt: chat.UpdatedAt})
	}
	return summaries, nil
}

// GetMessages returns the chat's current live log.
func (s *ChatService) GetMessages(ctx context.Context, ownerID, chatID string) ([]model.Message, error) {
	if _, err := loadOwnedChat(ctx, s.repo, ownerID, chatID); err != nil {
		return nil, err
	}
	messages, err := s.repo.GetMessages(ctx, chatID)
	if err != nil {
		return nil, storageFailure("could not get messages", err)
	}
	return messages, nil
}

// SendMessage appends the user's message to the chat log, asks the
// reply generator for the assistant's turn, and appends that too. The
// whole round trip holds the chat's lock so a concurrent commit or
// restore can never capture a half-finished exchange.
//
// If the previous call failed after the append (for example on a
// generation timeout), resending the same content does not duplicate
// the user message: a trailing identical user turn is reused and only
// the reply is regenerated.
func (s *ChatService) SendMessage(ctx context.Context, ownerID, chatID, content string) (*SendResult, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: message content is empty", app_errors.ErrValidation)
	}

	unlock := s.locks.Lock(chatID)
	defer unlock()

	if _, err := loadOwnedChat(ctx, s.repo, ownerID, chatID); err != nil {
		return nil, err
	}

	history, err := s.repo.GetMessages(ctx, chatID)
	if err != nil {
		return nil, storageFailure("could not get message history", err)
	}

	if !isRetryOfLastTurn(history, content) {
		userMessage := model.Message{Role: model.RoleUser, Content: content, Timestamp: time.Now().UTC()}
		if err := s.repo.AppendMessage(ctx, chatID, &userMessage); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: chat %s", app_errors.ErrNotFound, chatID)
			}
			return nil, storageFailure("could not append user message", err)
		}
		history = append(history, userMessage)
	}

	genCtx, cancel := context.WithTimeout(ctx, s.replyTimeout)
	defer cancel()

	reply, err := s.generator.GenerateReply(genCtx, toProviderMessages(history))
	if err != nil {
		// The user message stays in the log either way; the caller may
		// resend the same content to retry generation only.
		if errors.Is(err, context.DeadlineExceeded) || genCtx.Err() == context.DeadlineExceeded {
			slog.Warn("Reply generation timed out", "chat_id", chatID, "timeout", s.replyTimeout)
			return nil, fmt.Errorf("%w: after %s", app_errors.ErrUpstreamTimeout, s.replyTimeout)
		}
		slog.Error("Reply generation failed", "chat_id", chatID, "error", err)
		return nil, fmt.Errorf("%w: reply generation failed", app_errors.ErrInternal)
	}

	assistantMessage := model.Message{Role: model.RoleAssistant, Content: reply, Timestamp: time.Now().UTC()}
	if err := s.repo.AppendMessage(ctx, chatID, &assistantMessage); err != nil {
		return nil, storageFailure("could not append assistant message", err)
	}

	return &SendResult{ChatID: chatID, AssistantMessage: assistantMessage}, nil
}

// isRetryOfLastTurn reports whether the log already ends with this
// exact user message, meaning the previous call appended it but failed
// before a reply was stored.
func isRetryOfLastTurn(history []model.Message, content string) bool {
	if len(history) == 0 {
		return false
	}
	last := history[len(history)-1]
	return last.Role == model.RoleUser && last.Content == content
}

func toProviderMessages(history []model.Message) []llm.Message {
	out := make([]llm.Message, 0, len(history))
	for _, msg := range history {
		out = append(out, llm.Message{Role: msg.Role, Content: msg.Content})
	}
	return out
}

// loadOwnedChat resolves a chat and checks that the requester owns it.
// Shared by both services; the ownership check runs before any mutation.
func loadOwnedChat(ctx context.Context, repo repository.Repository, ownerID, chatID string) (*model.Chat, error) {
	if chatID == "" {
		return nil, fmt.Errorf("%w: chat id is empty", app_errors.ErrValidation)
	}
	chat, err := repo.GetChat(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: chat %s", app_errors.ErrNotFound, chatID)
		}
		return nil, storageFailure("could not get chat", err)
	}
	if chat.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: chat %s", app_errors.ErrPermission, chatID)
	}
	return chat, nil
}

func storageFailure(msg string, err error) error {
	return fmt.Errorf("%w: %s: %v", app_errors.ErrStorage, msg, err)
}
