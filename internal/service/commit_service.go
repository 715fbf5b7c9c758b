package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	app_errors "promptpilot/backend/internal/errors"
	"promptpilot/backend/internal/model"
	"promptpilot/backend/internal/repository"
)

// CommitService owns the version-control surface of a chat: creating
// immutable snapshots, restoring from them, and listing history.
// Commits are full content snapshots, not diffs; each one is an
// independent copy, so no later operation can reach into a stored one.
type CommitService struct {
	repo  repository.Repository
	locks *LockTable
}

// RestoreResult is the outcome of a fetch: the chat whose live log was
// replaced and the messages now installed as that log.
type RestoreResult struct {
	CommitID         string
	ChatID           string
	RestoredMessages []model.Message
	RestoredAt       time.Time
}

func NewCommitService(repo repository.Repository, locks *LockTable) *CommitService {
	return &CommitService{repo: repo, locks: locks}
}

// Commit snapshots the chat's current log under a new globally unique
// commit id. An empty name falls back to "Commit N" so the commit
// affordance never rejects. The chat's head moves to the new commit.
func (s *CommitService) Commit(ctx context.Context, ownerID, chatID, name string) (*model.Commit, error) {
	unlock := s.locks.Lock(chatID)
	defer unlock()

	chat, err := loadOwnedChat(ctx, s.repo, ownerID, chatID)
	if err != nil {
		return nil, err
	}

	messages, err := s.repo.GetMessages(ctx, chatID)
	if err != nil {
		return nil, storageFailure("could not read chat log", err)
	}

	if name == "" {
		count, err := s.repo.CountCommits(ctx, chatID)
		if err != nil {
			return nil, storageFailure("could not count commits", err)
		}
		name = fmt.Sprintf("Commit %d", count+1)
	}

	commit := &model.Commit{
		ID:        uuid.NewString(),
		ChatID:    chat.ID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Messages:  model.CloneMessages(messages),
	}
	if err := s.repo.CreateCommit(ctx, commit); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: chat %s", app_errors.ErrNotFound, chatID)
		}
		return nil, storageFailure("could not persist commit", err)
	}

	slog.Info("Created commit", "commit_id", commit.ID, "chat_id", chatID, "name", name, "messages", len(commit.Messages))
	return commit, nil
}

// Fetch restores a chat's live log from a commit. The commit's own
// chat id is authoritative: a fetch always restores into the chat the
// commit belongs to, never into whichever chat the caller has active.
// Combined with the ownership check this closes off cross-chat
// restores via guessed commit ids.
//
// No commit record is altered or deleted; only the live log changes,
// so every earlier and later commit remains fetchable afterwards.
func (s *CommitService) Fetch(ctx context.Context, ownerID, commitID string) (*RestoreResult, error) {
	if commitID == "" {
		return nil, fmt.Errorf("%w: commit id is empty", app_errors.ErrValidation)
	}

	commit, err := s.repo.GetCommit(ctx, commitID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: commit %s", app_errors.ErrNotFound, commitID)
		}
		return nil, storageFailure("could not get commit", err)
	}

	unlock := s.locks.Lock(commit.ChatID)
	defer unlock()

	chat, err := loadOwnedChat(ctx, s.repo, ownerID, commit.ChatID)
	if err != nil {
		return nil, err
	}

	restored := model.CloneMessages(commit.Messages)
	if err := s.repo.ReplaceMessages(ctx, chat.ID, restored, commit.ID); err != nil {
		return nil, storageFailure("could not install restored log", err)
	}

	slog.Info("Restored chat from commit", "commit_id", commit.ID, "chat_id", chat.ID, "messages", len(restored))
	return &RestoreResult{
		CommitID:         commit.ID,
		ChatID:           chat.ID,
		RestoredMessages: restored,
		RestoredAt:       time.Now().UTC(),
	}, nil
}

// History lists a chat's commits newest-first, metadata only. A chat
// with no commits yields an empty list, not an error.
func (s *CommitService) History(ctx context.Context, ownerID, chatID string) ([]model.CommitSummary, error) {
	if _, err := loadOwnedChat(ctx, s.repo, ownerID, chatID); err != nil {
		return nil, err
	}
	history, err := s.repo.GetCommitHistory(ctx, chatID)
	if err != nil {
		return nil, storageFailure("could not get commit history", err)
	}
	return history, nil
}
