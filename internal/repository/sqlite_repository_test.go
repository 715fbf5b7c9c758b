package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptpilot/backend/internal/database"
	"promptpilot/backend/internal/model"
	"promptpilot/backend/internal/repository"
)

// These tests run against a real SQLite database in a temp directory.
// The snapshot semantics of the commit store (immutability, round-trip,
// history ordering) live at this layer, so they are verified against
// actual storage rather than mocks.

func newTestRepo(t *testing.T) repository.Repository {
	t.Helper()
	db, err := database.InitDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewSQLiteRepository(db)
}

func newChat(id, ownerID string, updatedAt time.Time) *model.Chat {
	return &model.Chat{
		ID:        id,
		OwnerID:   ownerID,
		Name:      "Chat 1",
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
	}
}

func TestSQLiteRepository_ChatLifecycle(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateChat(ctx, newChat("chat-old", "user1", base)))
	require.NoError(t, repo.CreateChat(ctx, newChat("chat-new", "user1", base.Add(time.Hour))))
	require.NoError(t, repo.CreateChat(ctx, newChat("chat-other", "user2", base)))

	t.Run("GetChat", func(t *testing.T) {
		chat, err := repo.GetChat(ctx, "chat-old")
		require.NoError(t, err)
		assert.Equal(t, "user1", chat.OwnerID)
		assert.Nil(t, chat.HeadCommitID)
	})

	t.Run("GetChat - unknown id", func(t *testing.T) {
		_, err := repo.GetChat(ctx, "nope")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("GetChats - newest first, owner scoped", func(t *testing.T) {
		chats, err := repo.GetChats(ctx, "user1")
		require.NoError(t, err)
		require.Len(t, chats, 2)
		assert.Equal(t, "chat-new", chats[0].ID)
		assert.Equal(t, "chat-old", chats[1].ID)
	})

	t.Run("CountChats", func(t *testing.T) {
		count, err := repo.CountChats(ctx, "user1")
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		count, err = repo.CountChats(ctx, "nobody")
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestSQLiteRepository_MessageLog(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateChat(ctx, newChat("chat1", "user1", base)))

	t.Run("Append to unknown chat", func(t *testing.T) {
		err := repo.AppendMessage(ctx, "nope", &model.Message{Role: model.RoleUser, Content: "x", Timestamp: base})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("Append preserves order and bumps updated_at", func(t *testing.T) {
		require.NoError(t, repo.AppendMessage(ctx, "chat1", &model.Message{Role: model.RoleUser, Content: "Hello", Timestamp: base}))
		require.NoError(t, repo.AppendMessage(ctx, "chat1", &model.Message{Role: model.RoleAssistant, Content: "Hi!", Timestamp: base}))

		messages, err := repo.GetMessages(ctx, "chat1")
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, model.RoleUser, messages[0].Role)
		assert.Equal(t, "Hello", messages[0].Content)
		assert.Equal(t, model.RoleAssistant, messages[1].Role)

		chat, err := repo.GetChat(ctx, "chat1")
		require.NoError(t, err)
		assert.True(t, chat.UpdatedAt.After(base), "append should bump updated_at")
	})

	t.Run("Empty log is an empty slice", func(t *testing.T) {
		require.NoError(t, repo.CreateChat(ctx, newChat("chat2", "user1", base)))
		messages, err := repo.GetMessages(ctx, "chat2")
		require.NoError(t, err)
		assert.Empty(t, messages)
	})
}

func TestSQLiteRepository_CommitImmutability(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateChat(ctx, newChat("chat1", "user1", base)))
	require.NoError(t, repo.AppendMessage(ctx, "chat1", &model.Message{Role: model.RoleUser, Content: "Hello", Timestamp: base}))
	require.NoError(t, repo.AppendMessage(ctx, "chat1", &model.Message{Role: model.RoleAssistant, Content: "Hi!", Timestamp: base}))

	snapshot, err := repo.GetMessages(ctx, "chat1")
	require.NoError(t, err)

	commit := &model.Commit{ID: "commit1", ChatID: "chat1", Name: "v1", CreatedAt: base, Messages: model.CloneMessages(snapshot)}
	require.NoError(t, repo.CreateCommit(ctx, commit))

	// The chat's head now points at the commit.
	chat, err := repo.GetChat(ctx, "chat1")
	require.NoError(t, err)
	require.NotNil(t, chat.HeadCommitID)
	assert.Equal(t, "commit1", *chat.HeadCommitID)

	// Appending after the commit must not change the stored snapshot.
	require.NoError(t, repo.AppendMessage(ctx, "chat1", &model.Message{Role: model.RoleUser, Content: "Bye", Timestamp: base}))

	stored, err := repo.GetCommit(ctx, "commit1")
	require.NoError(t, err)
	require.Len(t, stored.Messages, 2)
	assert.Equal(t, "Hello", stored.Messages[0].Content)
	assert.Equal(t, "Hi!", stored.Messages[1].Content)

	// Replacing the live log must not change it either.
	require.NoError(t, repo.ReplaceMessages(ctx, "chat1", nil, "commit1"))
	stored, err = repo.GetCommit(ctx, "commit1")
	require.NoError(t, err)
	assert.Len(t, stored.Messages, 2)
}

func TestSQLiteRepository_ReplaceMessages(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateChat(ctx, newChat("chat1", "user1", base)))
	require.NoError(t, repo.AppendMessage(ctx, "chat1", &model.Message{Role: model.RoleUser, Content: "Hello", Timestamp: base}))
	require.NoError(t, repo.AppendMessage(ctx, "chat1", &model.Message{Role: model.RoleAssistant, Content: "Hi!", Timestamp: base}))
	require.NoError(t, repo.AppendMessage(ctx, "chat1", &model.Message{Role: model.RoleUser, Content: "Bye", Timestamp: base}))

	restored := []model.Message{
		{Role: model.RoleUser, Content: "Hello", Timestamp: base},
		{Role: model.RoleAssistant, Content: "Hi!", Timestamp: base},
	}
	require.NoError(t, repo.ReplaceMessages(ctx, "chat1", restored, "commit1"))

	messages, err := repo.GetMessages(ctx, "chat1")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Hello", messages[0].Content)
	assert.Equal(t, "Hi!", messages[1].Content)

	chat, err := repo.GetChat(ctx, "chat1")
	require.NoError(t, err)
	require.NotNil(t, chat.HeadCommitID)
	assert.Equal(t, "commit1", *chat.HeadCommitID)

	t.Run("Unknown chat", func(t *testing.T) {
		err := repo.ReplaceMessages(ctx, "nope", restored, "commit1")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestSQLiteRepository_CommitHistory(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateChat(ctx, newChat("chat1", "user1", base)))

	t.Run("No commits yields empty history", func(t *testing.T) {
		history, err := repo.GetCommitHistory(ctx, "chat1")
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	msgs := []model.Message{{Role: model.RoleUser, Content: "Hello", Timestamp: base}}
	require.NoError(t, repo.CreateCommit(ctx, &model.Commit{ID: "commit-a", ChatID: "chat1", Name: "first", CreatedAt: base, Messages: msgs}))
	require.NoError(t, repo.CreateCommit(ctx, &model.Commit{ID: "commit-b", ChatID: "chat1", Name: "second", CreatedAt: base.Add(time.Minute), Messages: msgs}))
	require.NoError(t, repo.CreateCommit(ctx, &model.Commit{ID: "commit-c", ChatID: "chat1", Name: "third", CreatedAt: base.Add(2 * time.Minute)}))

	t.Run("Newest first", func(t *testing.T) {
		history, err := repo.GetCommitHistory(ctx, "chat1")
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, "commit-c", history[0].CommitID)
		assert.Equal(t, "commit-b", history[1].CommitID)
		assert.Equal(t, "commit-a", history[2].CommitID)
		assert.Equal(t, 1, history[1].MessageCount)
		assert.Equal(t, 0, history[0].MessageCount)
	})

	t.Run("Equal timestamps break ties by commit id", func(t *testing.T) {
		require.NoError(t, repo.CreateChat(ctx, newChat("chat2", "user1", base)))
		require.NoError(t, repo.CreateCommit(ctx, &model.Commit{ID: "tie-a", ChatID: "chat2", Name: "a", CreatedAt: base}))
		require.NoError(t, repo.CreateCommit(ctx, &model.Commit{ID: "tie-b", ChatID: "chat2", Name: "b", CreatedAt: base}))

		history, err := repo.GetCommitHistory(ctx, "chat2")
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, "tie-b", history[0].CommitID)
		assert.Equal(t, "tie-a", history[1].CommitID)
	})

	t.Run("CountCommits", func(t *testing.T) {
		count, err := repo.CountCommits(ctx, "chat1")
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("GetCommit - unknown id", func(t *testing.T) {
		_, err := repo.GetCommit(ctx, "nope")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("Commit against unknown chat", func(t *testing.T) {
		err := repo.CreateCommit(ctx, &model.Commit{ID: "orphan", ChatID: "nope", Name: "x", CreatedAt: base})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
