package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"event-hub/core/database"
	"event-hub/modules/comment/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commentRowColumns = []string{"id", "text", "event_id", "author_id", "author_name", "created"}

func newMockRepo(t *testing.T) (*CommentRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewCommentRepository(database.NewDatabase(sqlx.NewDb(db, "postgres"))), mock
}

func Test_CommentRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO comments (text, event_id, author_id, created)")).
		WithArgs("nice", int64(3), int64(8), created).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	id, err := repo.Create(context.Background(), &entity.Comment{Text: "nice", EventID: 3, AuthorID: 8, Created: created})
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_CommentRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("JOIN users u ON u.id = cm.author_id")).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows(commentRowColumns).AddRow(int64(11), "nice", int64(3), int64(8), "Ann", created))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE cm.id = $1")).
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows(commentRowColumns))

	got, err := repo.GetByID(context.Background(), 11)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ann", got.AuthorName)
	assert.Equal(t, created, got.Created)

	missing, err := repo.GetByID(context.Background(), 12)
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_CommentRepository_List(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE ("cm"."event_id" = $1) ORDER BY "cm"."created" ASC, "cm"."id" ASC`)).
		WillReturnRows(sqlmock.NewRows(commentRowColumns).
			AddRow(int64(1), "first", int64(3), int64(8), "Ann", created).
			AddRow(int64(2), "second", int64(3), int64(9), "Bob", created.Add(time.Minute)))

	got, err := repo.List(context.Background(), entity.CommentFilter{EventID: 3, Size: 10})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Bob", got[1].AuthorName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_BuildListQuery_AuthorAndRange(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	query, args, err := buildListQuery(entity.CommentFilter{
		AuthorID:   8,
		RangeStart: &start,
		RangeEnd:   &end,
		From:       5,
		Size:       10,
	})
	require.NoError(t, err)

	for _, fragment := range []string{
		`FROM "comments" AS "cm"`,
		`INNER JOIN "users" AS "u"`,
		`"u"."name" AS "author_name"`,
		`"cm"."author_id" = `,
		`"cm"."created" >= `,
		`"cm"."created" <= `,
		"LIMIT",
		"OFFSET",
	} {
		assert.Contains(t, query, fragment)
	}
	assert.NotContains(t, query, `"cm"."event_id" = `)
	assert.Contains(t, args, int64(8))
	assert.Contains(t, args, start)
	assert.Contains(t, args, end)
}
