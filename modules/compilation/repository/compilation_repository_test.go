package repository

import (
	"context"
	"regexp"
	"testing"

	"event-hub/core/database"
	"event-hub/modules/compilation/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*CompilationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewCompilationRepository(database.NewDatabase(sqlx.NewDb(db, "postgres"))), mock
}

func Test_CompilationRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO compilations (title, pinned) VALUES ($1, $2) RETURNING id, title, pinned")).
		WithArgs("Summer", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "pinned"}).AddRow(int64(4), "Summer", true))

	got, err := repo.Create(context.Background(), &entity.Compilation{Title: "Summer", Pinned: true})
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ID)
	assert.True(t, got.Pinned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_CompilationRepository_ReplaceEvents(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM compilation_events WHERE compilation_id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "compilation_events" ("compilation_id", "event_id") VALUES ($1, $2), ($3, $4)`)).
		WithArgs(int64(1), int64(3), int64(1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.ReplaceEvents(context.Background(), 1, []int64{3, 5}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_CompilationRepository_ReplaceEvents_EmptyOnlyClears(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM compilation_events WHERE compilation_id = $1")).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ReplaceEvents(context.Background(), 2, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_CompilationRepository_ReplaceEvents_UnknownEvent(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM compilation_events")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "compilation_events"`)).
		WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})

	err := repo.ReplaceEvents(context.Background(), 1, []int64{404})
	require.Error(t, err)
	assert.True(t, database.IsForeignKeyViolation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_CompilationRepository_List_PinnedFilter(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id", "title", "pinned" FROM "compilations" WHERE ("pinned" IS TRUE) ORDER BY "id" ASC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "pinned"}).AddRow(int64(1), "Top", true))

	pinned := true
	got, err := repo.List(context.Background(), &pinned, 10, 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Top", got[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_BuildListQuery_NoFilter(t *testing.T) {
	query, _, err := buildListQuery(nil, 0, 10)
	require.NoError(t, err)
	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, `ORDER BY "id" ASC`)
}

func Test_CompilationRepository_EventIDs(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE compilation_id IN ($1, $2)")).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"compilation_id", "event_id"}).
			AddRow(int64(1), int64(3)).
			AddRow(int64(1), int64(7)).
			AddRow(int64(2), int64(3)))

	got, err := repo.EventIDs(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, map[int64][]int64{1: {3, 7}, 2: {3}}, got)

	empty, err := repo.EventIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NoError(t, mock.ExpectationsWereMet())
}
