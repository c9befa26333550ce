package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"event-hub/core/database"
	"event-hub/modules/user/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewUserRepository(database.NewDatabase(sqlx.NewDb(db, "postgres"))), mock
}

func Test_UserRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)
	name, email := gofakeit.Name(), gofakeit.Email()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (name, email)")).
		WithArgs(name, email).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "created_at"}).
			AddRow(7, name, email, now))

	created, err := repo.Create(context.Background(), &entity.User{Name: name, Email: email})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, email, created.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_UserRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "created_at"}))

	user, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_UserRepository_List_ByIDs(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id IN ($1, $2)")).
		WithArgs(int64(1), int64(2), 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "created_at"}).
			AddRow(1, "a", "a@example.com", time.Now()).
			AddRow(2, "b", "b@example.com", time.Now()))

	users, err := repo.List(context.Background(), []int64{1, 2}, 0, 10)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_UserRepository_Delete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_UserRepository_Delete_Referenced(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "events_initiator_id_fkey"})

	deleted, err := repo.Delete(context.Background(), 4)
	require.Error(t, err)
	assert.False(t, deleted)
	assert.True(t, database.IsForeignKeyViolation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
