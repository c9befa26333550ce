package service

import (
	"context"
	"testing"
	"time"

	coredto "event-hub/core/dto"
	"event-hub/core/errors"
	"event-hub/modules/event/dto"
	"event-hub/modules/event/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	categories map[int64]string
	nextLocID  int64
}

func (r *stubResolver) ResolveCategory(_ context.Context, id int64) (string, *errors.AppError) {
	name, ok := r.categories[id]
	if !ok {
		return "", errors.NewAppError(errors.ErrNotFound, "category not found", nil)
	}
	return name, nil
}

func (r *stubResolver) ResolveLocation(_ context.Context, lat, lon float64) (*entity.Location, *errors.AppError) {
	r.nextLocID++
	return &entity.Location{ID: r.nextLocID, Lat: lat, Lon: lon}, nil
}

func ptr[T any](v T) *T { return &v }

func baseEvent() *entity.Event {
	return &entity.Event{
		ID:                1,
		Annotation:        "current annotation text",
		Description:       "current description text",
		Title:             "Current",
		CategoryID:        1,
		CategoryName:      "Music",
		LocationID:        10,
		Lat:               1,
		Lon:               2,
		EventDate:         fixedNow.Add(48 * time.Hour),
		ParticipantLimit:  5,
		RequestModeration: true,
	}
}

func Test_MergeEventFields_AbsentKeepsCurrent(t *testing.T) {
	ev := baseEvent()
	want := *ev

	require.Nil(t, MergeEventFields(context.Background(), ev, dto.UpdateEventFields{}, &stubResolver{}))
	assert.Equal(t, want, *ev)
}

func Test_MergeEventFields_BlankStringsKeepCurrent(t *testing.T) {
	ev := baseEvent()
	patch := dto.UpdateEventFields{Annotation: ptr("   "), Title: ptr("")}

	require.Nil(t, MergeEventFields(context.Background(), ev, patch, &stubResolver{}))
	assert.Equal(t, "current annotation text", ev.Annotation)
	assert.Equal(t, "Current", ev.Title)
}

func Test_MergeEventFields_AppliesPresentFields(t *testing.T) {
	ev := baseEvent()
	newDate := fixedNow.Add(72 * time.Hour)
	patch := dto.UpdateEventFields{
		Annotation:        ptr("a brand new annotation"),
		Category:          ptr(int64(2)),
		Description:       ptr("a brand new description"),
		EventDate:         &coredto.DateTime{Time: newDate},
		Location:          &dto.LocationDto{Lat: 55.75, Lon: 37.61},
		Paid:              ptr(true),
		ParticipantLimit:  ptr(int64(0)),
		RequestModeration: ptr(false),
		Title:             ptr("New title"),
	}

	require.Nil(t, MergeEventFields(context.Background(), ev, patch, &stubResolver{categories: map[int64]string{2: "Theatre"}}))

	assert.Equal(t, "a brand new annotation", ev.Annotation)
	assert.Equal(t, int64(2), ev.CategoryID)
	assert.Equal(t, "Theatre", ev.CategoryName)
	assert.Equal(t, "a brand new description", ev.Description)
	assert.True(t, ev.EventDate.Equal(newDate))
	assert.Equal(t, 55.75, ev.Lat)
	assert.Equal(t, 37.61, ev.Lon)
	assert.Equal(t, int64(1), ev.LocationID)
	assert.True(t, ev.Paid)
	assert.Equal(t, int64(0), ev.ParticipantLimit)
	assert.False(t, ev.RequestModeration)
	assert.Equal(t, "New title", ev.Title)
}

func Test_MergeEventFields_Errors(t *testing.T) {
	ev := baseEvent()
	appErr := MergeEventFields(context.Background(), ev, dto.UpdateEventFields{Category: ptr(int64(99))}, &stubResolver{})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)

	appErr = MergeEventFields(context.Background(), ev, dto.UpdateEventFields{ParticipantLimit: ptr(int64(-1))}, &stubResolver{})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	assert.Equal(t, int64(5), ev.ParticipantLimit)
}
