package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"event-hub/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*HitRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewHitRepository(database.NewDatabase(sqlx.NewDb(db, "postgres"))), mock
}

func Test_HitRepository_Stats_UniqueWithURIs(t *testing.T) {
	repo, mock := newMockRepo(t)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT app, uri, COUNT(DISTINCT ip) AS hits FROM hits WHERE timestamp BETWEEN $1 AND $2 AND uri IN ($3, $4) GROUP BY app, uri ORDER BY hits DESC")).
		WithArgs(start, end, "/events/1", "/events/2").
		WillReturnRows(sqlmock.NewRows([]string{"app", "uri", "hits"}).
			AddRow("event-hub", "/events/2", 5).
			AddRow("event-hub", "/events/1", 1))

	stats, err := repo.Stats(context.Background(), start, end, []string{"/events/1", "/events/2"}, true)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, int64(5), stats[0].Hits)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_HitRepository_Stats_AllURIs(t *testing.T) {
	repo, mock := newMockRepo(t)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT app, uri, COUNT(ip) AS hits FROM hits WHERE timestamp BETWEEN $1 AND $2 GROUP BY app, uri ORDER BY hits DESC")).
		WithArgs(start, start).
		WillReturnRows(sqlmock.NewRows([]string{"app", "uri", "hits"}))

	stats, err := repo.Stats(context.Background(), start, start, nil, false)
	require.NoError(t, err)
	assert.Empty(t, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}
