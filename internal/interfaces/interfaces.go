package interfaces

import (
	"context"

	"promptpilot/backend/internal/model"
	"promptpilot/backend/internal/service"
)

// This file defines the interfaces for our core services. The API layer
// depends on these instead of the concrete implementations, which keeps
// the layers decoupled and lets handler tests swap in mocks.

// ChatService defines the contract for chat session logic.
type ChatService interface {
	CreateChat(ctx context.Context, ownerID string) (*model.Chat, error)
	ListChats(ctx context.Context, ownerID string) ([]model.ChatSummary, error)
	GetMessages(ctx context.Context, ownerID, chatID string) ([]model.Message, error)
	SendMessage(ctx context.Context, ownerID, chatID, content string) (*service.SendResult, error)
}

// CommitService defines the contract for the snapshot/restore engine.
type CommitService interface {
	Commit(ctx context.Context, ownerID, chatID, name string) (*model.Commit, error)
	Fetch(ctx context.Context, ownerID, commitID string) (*service.RestoreResult, error)
	History(ctx context.Context, ownerID, chatID string) ([]model.CommitSummary, error)
}
