package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"promptpilot/backend/internal/model"
)

// redisRepository is the document-store backend. Chats are hashes,
// logs are JSON lists, commits are write-once JSON documents indexed
// per chat by a sorted set keyed on creation time.
type redisRepository struct {
	rdb *redis.Client
}

func NewRedisRepository(rdb *redis.Client) Repository {
	return &redisRepository{rdb: rdb}
}

// Key generation helpers.
func (r *redisRepository) chatKey(chatID string) string        { return fmt.Sprintf("chat:%s", chatID) }
func (r *redisRepository) messagesKey(chatID string) string    { return fmt.Sprintf("chat:%s:messages", chatID) }
func (r *redisRepository) chatCommitsKey(chatID string) string { return fmt.Sprintf("chat:%s:commits", chatID) }
func (r *redisRepository) commitKey(commitID string) string    { return fmt.Sprintf("commit:%s", commitID) }
func (r *redisRepository) ownerChatsKey(ownerID string) string { return fmt.Sprintf("user:%s:chats", ownerID) }

// --- Chat operations ---

func (r *redisRepository) CreateChat(ctx context.Context, chat *model.Chat) error {
	chatMap, err := structToMap(chat)
	if err != nil {
		return fmt.Errorf("could not convert chat to map: %w", err)
	}
	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, r.chatKey(chat.ID), chatMap)
	// Negative score so ZRange yields newest-first without a reverse scan.
	pipe.ZAdd(ctx, r.ownerChatsKey(chat.OwnerID), redis.Z{Score: float64(-chat.UpdatedAt.UnixNano()), Member: chat.ID})
	_, err = pipe.Exec(ctx)
	return err
}

func (r *redisRepository) GetChat(ctx context.Context, chatID string) (*model.Chat, error) {
	chatMap, err := r.rdb.HGetAll(ctx, r.chatKey(chatID)).Result()
	if err != nil {
		return nil, err
	}
	if len(chatMap) == 0 {
		return nil, ErrNotFound
	}
	var chat model.Chat
	return &chat, mapToStruct(chatMap, &chat)
}

func (r *redisRepository) GetChats(ctx context.Context, ownerID string) ([]*model.Chat, error) {
	chatIDs, err := r.rdb.ZRange(ctx, r.ownerChatsKey(ownerID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	chats := make([]*model.Chat, 0, len(chatIDs))
	for _, id := range chatIDs {
		chat, err := r.GetChat(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		chats = append(chats, chat)
	}
	return chats, nil
}

func (r *redisRepository) CountChats(ctx context.Context, ownerID string) (int, error) {
	n, err := r.rdb.ZCard(ctx, r.ownerChatsKey(ownerID)).Result()
	return int(n), err
}

// --- Message log operations ---

func (r *redisRepository) AppendMessage(ctx context.Context, chatID string, msg *model.Message) error {
	chat, err := r.GetChat(ctx, chatID)
	if err != nil {
		return err
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("could not marshal message: %w", err)
	}
	now := time.Now().UTC()
	pipe := r.rdb.TxPipeline()
	pipe.RPush(ctx, r.messagesKey(chatID), data)
	pipe.HSet(ctx, r.chatKey(chatID), "updatedAt", now.Format(time.RFC3339Nano))
	pipe.ZAdd(ctx, r.ownerChatsKey(chat.OwnerID), redis.Z{Score: float64(-now.UnixNano()), Member: chatID})
	_, err = pipe.Exec(ctx)
	return err
}

func (r *redisRepository) GetMessages(ctx context.Context, chatID string) ([]model.Message, error) {
	raw, err := r.rdb.LRange(ctx, r.messagesKey(chatID), 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return []model.Message{}, nil
		}
		return nil, err
	}
	messages := make([]model.Message, 0, len(raw))
	for _, item := range raw {
		var msg model.Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, fmt.Errorf("could not unmarshal message: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (r *redisRepository) ReplaceMessages(ctx context.Context, chatID string, msgs []model.Message, headCommitID string) error {
	chat, err := r.GetChat(ctx, chatID)
	if err != nil {
		return err
	}
	encoded := make([]interface{}, 0, len(msgs))
	for _, msg := range msgs {
		data, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("could not marshal message: %w", err)
		}
		encoded = append(encoded, data)
	}
	now := time.Now().UTC()
	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, r.messagesKey(chatID))
	if len(encoded) > 0 {
		pipe.RPush(ctx, r.messagesKey(chatID), encoded...)
	}
	pipe.HSet(ctx, r.chatKey(chatID), "updatedAt", now.Format(time.RFC3339Nano), "headCommitId", headCommitID)
	pipe.ZAdd(ctx, r.ownerChatsKey(chat.OwnerID), redis.Z{Score: float64(-now.UnixNano()), Member: chatID})
	_, err = pipe.Exec(ctx)
	return err
}

// --- Commit operations ---

func (r *redisRepository) CreateCommit(ctx context.Context, commit *model.Commit) error {
	if _, err := r.GetChat(ctx, commit.ChatID); err != nil {
		return err
	}
	data, err := json.Marshal(commit)
	if err != nil {
		return fmt.Errorf("could not marshal commit: %w", err)
	}
	pipe := r.rdb.TxPipeline()
	// Commit documents have no TTL and are never rewritten.
	pipe.Set(ctx, r.commitKey(commit.ID), data, 0)
	pipe.ZAdd(ctx, r.chatCommitsKey(commit.ChatID), redis.Z{Score: float64(commit.CreatedAt.UnixNano()), Member: commit.ID})
	pipe.HSet(ctx, r.chatKey(commit.ChatID), "headCommitId", commit.ID)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *redisRepository) GetCommit(ctx context.Context, commitID string) (*model.Commit, error) {
	data, err := r.rdb.Get(ctx, r.commitKey(commitID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var commit model.Commit
	if err := json.Unmarshal(data, &commit); err != nil {
		return nil, fmt.Errorf("could not unmarshal commit: %w", err)
	}
	if commit.Messages == nil {
		commit.Messages = []model.Message{}
	}
	return &commit, nil
}

func (r *redisRepository) GetCommitHistory(ctx context.Context, chatID string) ([]model.CommitSummary, error) {
	// ZRevRange orders by score descending; equal scores come back in
	// reverse lexical member order, which gives the commit-id tie-break.
	commitIDs, err := r.rdb.ZRevRange(ctx, r.chatCommitsKey(chatID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	history := make([]model.CommitSummary, 0, len(commitIDs))
	for _, id := range commitIDs {
		commit, err := r.GetCommit(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		history = append(history, model.CommitSummary{
			CommitID:     commit.ID,
			Name:         commit.Name,
			CreatedAt:    commit.CreatedAt,
			MessageCount: len(commit.Messages),
		})
	}
	return history, nil
}

func (r *redisRepository) CountCommits(ctx context.Context, chatID string) (int, error) {
	n, err := r.rdb.ZCard(ctx, r.chatCommitsKey(chatID)).Result()
	return int(n), err
}

// --- Helper functions ---

func structToMap(obj interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	var mapData map[string]interface{}
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, err
	}
	// Null fields (an unset head pointer) cannot be stored in a hash.
	for k, v := range mapData {
		if v == nil {
			delete(mapData, k)
		}
	}
	return mapData, nil
}

func mapToStruct(data map[string]string, obj interface{}) error {
	jsonStr, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonStr, obj)
}
