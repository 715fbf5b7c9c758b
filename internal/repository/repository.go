package repository

import (
	"context"

	"promptpilot/backend/internal/model"
)

// Repository defines the interface for data storage operations.
// Two implementations exist: SQLite (default) and Redis, selected by
// configuration. Commit records are write-once; nothing in this
// interface can modify or delete one after CreateCommit.
type Repository interface {
	CreateChat(ctx context.Context, chat *model.Chat) error
	GetChat(ctx context.Context, chatID string) (*model.Chat, error)
	GetChats(ctx context.Context, ownerID string) ([]*model.Chat, error)
	CountChats(ctx context.Context, ownerID string) (int, error)

	// AppendMessage adds a message to the end of a chat's live log and
	// bumps the chat's updated_at. Returns ErrNotFound for an unknown chat.
	AppendMessage(ctx context.Context, chatID string, msg *model.Message) error
	GetMessages(ctx context.Context, chatID string) ([]model.Message, error)
	// ReplaceMessages swaps a chat's entire live log for the given
	// sequence, records the commit the log now descends from, and bumps
	// updated_at. Used only by the restore path.
	ReplaceMessages(ctx context.Context, chatID string, msgs []model.Message, headCommitID string) error

	// CreateCommit persists an immutable snapshot and points the owning
	// chat's head at it. The chat's updated_at is left untouched: taking
	// a snapshot is not a conversation event.
	CreateCommit(ctx context.Context, commit *model.Commit) error
	GetCommit(ctx context.Context, commitID string) (*model.Commit, error)
	GetCommitHistory(ctx context.Context, chatID string) ([]model.CommitSummary, error)
	CountCommits(ctx context.Context, chatID string) (int, error)
}
