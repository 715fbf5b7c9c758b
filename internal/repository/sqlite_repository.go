package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"promptpilot/backend/internal/model"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateChat(ctx context.Context, chat *model.Chat) error {
	query := "INSERT INTO chats (id, owner_id, name, head_commit_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)"
	_, err := r.db.ExecContext(ctx, query, chat.ID, chat.OwnerID, chat.Name, chat.HeadCommitID, chat.CreatedAt, chat.UpdatedAt)
	return err
}

func (r *sqliteRepository) GetChat(ctx context.Context, chatID string) (*model.Chat, error) {
	query := "SELECT id, owner_id, name, head_commit_id, created_at, updated_at FROM chats WHERE id = ?"
	row := r.db.QueryRowContext(ctx, query, chatID)
	chat, err := scanChat(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return chat, nil
}

func (r *sqliteRepository) GetChats(ctx context.Context, ownerID string) ([]*model.Chat, error) {
	query := "SELECT id, owner_id, name, head_commit_id, created_at, updated_at FROM chats WHERE owner_id = ? ORDER BY updated_at DESC"
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chats []*model.Chat
	for rows.Next() {
		chat, err := scanChat(rows)
		if err != nil {
			return nil, err
		}
		chats = append(chats, chat)
	}
	return chats, rows.Err()
}

func (r *sqliteRepository) CountChats(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chats WHERE owner_id = ?", ownerID).Scan(&count)
	return count, err
}

// AppendMessage inserts the message and bumps the chat's updated_at in
// one transaction, so a concurrent reader never sees one without the other.
func (r *sqliteRepository) AppendMessage(ctx context.Context, chatID string, msg *model.Message) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := touchChat(ctx, tx, chatID, nil); err != nil {
		return err
	}

	insertQuery := "INSERT INTO messages (chat_id, role, content, timestamp) VALUES (?, ?, ?, ?)"
	if _, err := tx.ExecContext(ctx, insertQuery, chatID, msg.Role, msg.Content, msg.Timestamp); err != nil {
		return fmt.Errorf("could not insert message: %w", err)
	}

	return tx.Commit()
}

func (r *sqliteRepository) GetMessages(ctx context.Context, chatID string) ([]model.Message, error) {
	query := "SELECT role, content, timestamp FROM messages WHERE chat_id = ? ORDER BY seq ASC"
	rows, err := r.db.QueryContext(ctx, query, chatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []model.Message{}
	for rows.Next() {
		var msg model.Message
		if err := rows.Scan(&msg.Role, &msg.Content, &msg.Timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// ReplaceMessages swaps out the entire live log for the given sequence.
// The delete and re-insert happen inside one transaction together with
// the head pointer and updated_at changes.
func (r *sqliteRepository) ReplaceMessages(ctx context.Context, chatID string, msgs []model.Message, headCommitID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := touchChat(ctx, tx, chatID, &headCommitID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM messages WHERE chat_id = ?", chatID); err != nil {
		return fmt.Errorf("could not clear chat log: %w", err)
	}
	insertQuery := "INSERT INTO messages (chat_id, role, content, timestamp) VALUES (?, ?, ?, ?)"
	for _, msg := range msgs {
		if _, err := tx.ExecContext(ctx, insertQuery, chatID, msg.Role, msg.Content, msg.Timestamp); err != nil {
			return fmt.Errorf("could not insert restored message: %w", err)
		}
	}

	return tx.Commit()
}

// CreateCommit writes the snapshot rows and repoints the chat's head in
// one transaction. updated_at is deliberately not bumped here: a commit
// records the conversation, it does not advance it.
func (r *sqliteRepository) CreateCommit(ctx context.Context, commit *model.Commit) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "UPDATE chats SET head_commit_id = ? WHERE id = ?", commit.ID, commit.ChatID)
	if err != nil {
		return fmt.Errorf("could not update chat head: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}

	commitQuery := "INSERT INTO commits (id, chat_id, name, created_at, message_count) VALUES (?, ?, ?, ?, ?)"
	if _, err := tx.ExecContext(ctx, commitQuery, commit.ID, commit.ChatID, commit.Name, commit.CreatedAt, len(commit.Messages)); err != nil {
		return fmt.Errorf("could not insert commit: %w", err)
	}

	msgQuery := "INSERT INTO commit_messages (commit_id, seq, role, content, timestamp) VALUES (?, ?, ?, ?, ?)"
	for i, msg := range commit.Messages {
		if _, err := tx.ExecContext(ctx, msgQuery, commit.ID, i, msg.Role, msg.Content, msg.Timestamp); err != nil {
			return fmt.Errorf("could not insert commit message: %w", err)
		}
	}

	return tx.Commit()
}

func (r *sqliteRepository) GetCommit(ctx context.Context, commitID string) (*model.Commit, error) {
	query := "SELECT id, chat_id, name, created_at FROM commits WHERE id = ?"
	row := r.db.QueryRowContext(ctx, query, commitID)

	var commit model.Commit
	if err := row.Scan(&commit.ID, &commit.ChatID, &commit.Name, &commit.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	msgQuery := "SELECT role, content, timestamp FROM commit_messages WHERE commit_id = ? ORDER BY seq ASC"
	rows, err := r.db.QueryContext(ctx, msgQuery, commitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	commit.Messages = []model.Message{}
	for rows.Next() {
		var msg model.Message
		if err := rows.Scan(&msg.Role, &msg.Content, &msg.Timestamp); err != nil {
			return nil, err
		}
		commit.Messages = append(commit.Messages, msg)
	}
	return &commit, rows.Err()
}

func (r *sqliteRepository) GetCommitHistory(ctx context.Context, chatID string) ([]model.CommitSummary, error) {
	// Newest first; equal timestamps fall back to commit id so the
	// ordering is deterministic.
	query := "SELECT id, name, created_at, message_count FROM commits WHERE chat_id = ? ORDER BY created_at DESC, id DESC"
	rows, err := r.db.QueryContext(ctx, query, chatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []model.CommitSummary{}
	for rows.Next() {
		var c model.CommitSummary
		if err := rows.Scan(&c.CommitID, &c.Name, &c.CreatedAt, &c.MessageCount); err != nil {
			return nil, err
		}
		history = append(history, c)
	}
	return history, rows.Err()
}

func (r *sqliteRepository) CountCommits(ctx context.Context, chatID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM commits WHERE chat_id = ?", chatID).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChat(row rowScanner) (*model.Chat, error) {
	var chat model.Chat
	var head sql.NullString
	if err := row.Scan(&chat.ID, &chat.OwnerID, &chat.Name, &head, &chat.CreatedAt, &chat.UpdatedAt); err != nil {
		return nil, err
	}
	if head.Valid {
		chat.HeadCommitID = &head.String
	}
	return &chat, nil
}

// touchChat bumps updated_at (and optionally the head pointer) for a
// chat inside an open transaction. Zero rows affected means the chat
// does not exist.
func touchChat(ctx context.Context, tx *sql.Tx, chatID string, headCommitID *string) error {
	var res sql.Result
	var err error
	if headCommitID != nil {
		res, err = tx.ExecContext(ctx, "UPDATE chats SET updated_at = ?, head_commit_id = ? WHERE id = ?", time.Now().UTC(), *headCommitID, chatID)
	} else {
		res, err = tx.ExecContext(ctx, "UPDATE chats SET updated_at = ? WHERE id = ?", time.Now().UTC(), chatID)
	}
	if err != nil {
		return fmt.Errorf("could not update chat timestamp: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
