package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptpilot/backend/internal/model"
	"promptpilot/backend/internal/repository"
)

// sqlmock covers the failure paths that are awkward to provoke against
// a real database: driver errors mid-transaction and rollbacks.

func TestSQLiteRepository_AppendMessage_RollsBackOnInsertError(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewSQLiteRepository(db)

	mockDB.ExpectBegin()
	mockDB.ExpectExec("UPDATE chats SET updated_at").WillReturnResult(sqlmock.NewResult(0, 1))
	mockDB.ExpectExec("INSERT INTO messages").WillReturnError(errors.New("disk full"))
	mockDB.ExpectRollback()

	err = repo.AppendMessage(context.Background(), "chat1", &model.Message{Role: model.RoleUser, Content: "x"})
	assert.ErrorContains(t, err, "could not insert message")
	require.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSQLiteRepository_CreateCommit_RollsBackOnSnapshotError(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewSQLiteRepository(db)

	mockDB.ExpectBegin()
	mockDB.ExpectExec("UPDATE chats SET head_commit_id").WillReturnResult(sqlmock.NewResult(0, 1))
	mockDB.ExpectExec("INSERT INTO commits").WillReturnResult(sqlmock.NewResult(1, 1))
	mockDB.ExpectExec("INSERT INTO commit_messages").WillReturnError(errors.New("disk full"))
	mockDB.ExpectRollback()

	commit := &model.Commit{
		ID:       "commit1",
		ChatID:   "chat1",
		Name:     "v1",
		Messages: []model.Message{{Role: model.RoleUser, Content: "Hello"}},
	}
	err = repo.CreateCommit(context.Background(), commit)
	assert.ErrorContains(t, err, "could not insert commit message")
	require.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSQLiteRepository_CreateCommit_UnknownChat(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewSQLiteRepository(db)

	mockDB.ExpectBegin()
	mockDB.ExpectExec("UPDATE chats SET head_commit_id").WillReturnResult(sqlmock.NewResult(0, 0))
	mockDB.ExpectRollback()

	err = repo.CreateCommit(context.Background(), &model.Commit{ID: "commit1", ChatID: "nope"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mockDB.ExpectationsWereMet())
}
