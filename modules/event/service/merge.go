package service

import (
	"context"
	"strings"
	"time"

	"event-hub/core/errors"
	"event-hub/modules/event/dto"
	"event-hub/modules/event/entity"
)

// FieldResolver resolves references carried by an update.
type FieldResolver interface {
	ResolveCategory(ctx context.Context, id int64) (name string, appErr *errors.AppError)
	ResolveLocation(ctx context.Context, lat, lon float64) (*entity.Location, *errors.AppError)
}

// MergeEventFields copies the present fields of patch onto ev. Absent and
// blank fields keep the current value.
func MergeEventFields(ctx context.Context, ev *entity.Event, patch dto.UpdateEventFields, resolver FieldResolver) *errors.AppError {
	if patch.ParticipantLimit != nil && *patch.ParticipantLimit < 0 {
		return errors.NewAppError(errors.ErrInvalidInput, "participant_limit must not be negative", nil)
	}

	if patch.Category != nil && *patch.Category != ev.CategoryID {
		name, appErr := resolver.ResolveCategory(ctx, *patch.Category)
		if appErr != nil {
			return appErr
		}
		ev.CategoryID = *patch.Category
		ev.CategoryName = name
	}
	if patch.Location != nil {
		loc, appErr := resolver.ResolveLocation(ctx, patch.Location.Lat, patch.Location.Lon)
		if appErr != nil {
			return appErr
		}
		ev.LocationID, ev.Lat, ev.Lon = loc.ID, loc.Lat, loc.Lon
	}

	mergeText(&ev.Annotation, patch.Annotation)
	mergeText(&ev.Description, patch.Description)
	mergeText(&ev.Title, patch.Title)

	if patch.EventDate != nil && !patch.EventDate.IsZero() {
		ev.EventDate = patch.EventDate.Time.UTC()
	}
	if patch.Paid != nil {
		ev.Paid = *patch.Paid
	}
	if patch.ParticipantLimit != nil {
		ev.ParticipantLimit = *patch.ParticipantLimit
	}
	if patch.RequestModeration != nil {
		ev.RequestModeration = *patch.RequestModeration
	}
	return nil
}

func mergeText(dst *string, v *string) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return
	}
	*dst = *v
}

// newEventDate returns the supplied date, or nil when the patch keeps the
// current one.
func newEventDate(patch dto.UpdateEventFields) *time.Time {
	if patch.EventDate == nil || patch.EventDate.IsZero() {
		return nil
	}
	t := patch.EventDate.Time.UTC()
	return &t
}
