package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"event-hub/core/database"
	"event-hub/modules/event/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventRowColumns = []string{
	"id", "annotation", "description", "title", "category_id", "category_name",
	"initiator_id", "initiator_name", "location_id", "lat", "lon", "event_date",
	"created_on", "published_on", "paid", "participant_limit", "request_moderation",
	"state", "confirmed_requests",
}

func newMockDB(t *testing.T) (database.Database, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return database.NewDatabase(sqlx.NewDb(db, "postgres")), mock
}

func Test_EventRepository_GetByIDForUpdate_LocksThenLoads(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepository(db)
	date := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "events" WHERE ("id" = $1) FOR UPDATE`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "events" AS "e"`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(eventRowColumns).AddRow(
			5, "annotation", "description", "title", 1, "Music",
			2, "Ann", 3, 55.7, 37.6, date,
			date.Add(-time.Hour), nil, false, 10, true,
			"PENDING", 4,
		))
	mock.ExpectCommit()

	var got *entity.Event
	err := db.WithinTransaction(context.Background(), func(ctx context.Context) error {
		var err error
		got, err = repo.GetByIDForUpdate(ctx, 5)
		return err
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Music", got.CategoryName)
	assert.Equal(t, entity.StatePending, got.State)
	assert.Equal(t, int64(4), got.ConfirmedRequests)
	assert.Nil(t, got.PublishedOn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_EventRepository_GetByIDForUpdate_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := repo.GetByIDForUpdate(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_EventRepository_PublicSearch_SkipsPageWhenPastTotal(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*)`)).
		WithArgs("PUBLISHED").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	page, err := repo.PublicSearch(context.Background(), entity.SearchCriteria{
		States: []entity.EventState{entity.StatePending},
		From:   10,
		Size:   10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Empty(t, page.Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_LocationRepository_GetOrCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (lat, lon) DO UPDATE SET lat = EXCLUDED.lat")).
		WithArgs(55.75, 37.61).
		WillReturnRows(sqlmock.NewRows([]string{"id", "lat", "lon"}).AddRow(12, 55.75, 37.61))

	loc, err := repo.GetOrCreate(context.Background(), 55.75, 37.61)
	require.NoError(t, err)
	assert.Equal(t, int64(12), loc.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_EventRepository_Update_BindsNamedColumns(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepository(db)
	date := time.Date(2025, 5, 1, 18, 0, 0, 0, time.UTC)
	published := date.Add(-48 * time.Hour)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE events SET")).
		WithArgs("annotation", "description", "title", int64(2), int64(3), date,
			published, true, int64(50), false, "PUBLISHED", int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &entity.Event{
		ID:                11,
		Annotation:        "annotation",
		Description:       "description",
		Title:             "title",
		CategoryID:        2,
		LocationID:        3,
		EventDate:         date,
		PublishedOn:       &published,
		Paid:              true,
		ParticipantLimit:  50,
		RequestModeration: false,
		State:             entity.StatePublished,
		InitiatorID:       99,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_EventRepository_ListByIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEventRepository(db)
	date := time.Date(2025, 5, 1, 18, 0, 0, 0, time.UTC)

	empty, err := repo.ListByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE ("e"."id" IN ($1, $2)) ORDER BY "e"."id" ASC`)).
		WithArgs(int64(3), int64(5)).
		WillReturnRows(sqlmock.NewRows(eventRowColumns).AddRow(
			3, "annotation", "description", "title", 1, "Music",
			2, "Ann", 3, 55.7, 37.6, date,
			date.Add(-time.Hour), date.Add(-time.Minute), false, 0, true,
			"PUBLISHED", 2,
		))

	got, err := repo.ListByIDs(context.Background(), []int64{3, 5})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(2), got[0].ConfirmedRequests)
	assert.NoError(t, mock.ExpectationsWereMet())
}
