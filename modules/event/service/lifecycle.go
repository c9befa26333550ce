package service

import (
	"fmt"
	"time"

	"event-hub/core/errors"
	"event-hub/modules/event/entity"
)

// ApplyAdminAction moves a pending event to PUBLISHED or REJECTED. On
// error the event is left untouched.
func ApplyAdminAction(ev *entity.Event, action entity.StateAction, now time.Time) *errors.AppError {
	switch action {
	case entity.ActionPublishEvent, entity.ActionRejectEvent:
	default:
		return errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("unknown admin state action %q", action), nil)
	}

	if ev.State != entity.StatePending {
		return errors.NewAppError(errors.ErrIllegalStateTransition,
			fmt.Sprintf("cannot apply %s to an event in state %s", action, ev.State), nil)
	}

	if action == entity.ActionPublishEvent {
		published := now.UTC()
		ev.State = entity.StatePublished
		ev.PublishedOn = &published
		return nil
	}
	ev.State = entity.StateRejected
	return nil
}

// ApplyUserAction lets the initiator resubmit or withdraw an unpublished event.
func ApplyUserAction(ev *entity.Event, action entity.StateAction) *errors.AppError {
	var target entity.EventState
	switch action {
	case entity.ActionSendToReview:
		target = entity.StatePending
	case entity.ActionCancelReview:
		target = entity.StateCanceled
	default:
		return errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("unknown user state action %q", action), nil)
	}

	if ev.IsPublished() {
		return errors.NewAppError(errors.ErrIllegalStateTransition,
			fmt.Sprintf("cannot apply %s to a published event", action), nil)
	}
	ev.State = target
	return nil
}

// EnsureOwnerEditable allows initiator edits only before publication.
func EnsureOwnerEditable(ev *entity.Event) *errors.AppError {
	switch ev.State {
	case entity.StatePending, entity.StateCanceled, entity.StateRejected:
		return nil
	}
	return errors.NewAppError(errors.ErrConflict, "only pending, canceled or rejected events can be changed", nil)
}

// EnsureAdminEditable guards admin field edits sent without a state action.
func EnsureAdminEditable(ev *entity.Event) *errors.AppError {
	switch ev.State {
	case entity.StatePublished, entity.StateCanceled:
		return errors.NewAppError(errors.ErrConflict,
			fmt.Sprintf("event in state %s cannot be edited", ev.State), nil)
	}
	return nil
}

// CheckLeadTime requires date to be at least min after now.
func CheckLeadTime(date, now time.Time, min time.Duration) *errors.AppError {
	if date.Before(now.Add(min)) {
		return errors.NewAppError(errors.ErrInvalidEventDateTime,
			fmt.Sprintf("event date must be at least %s from now", min), nil)
	}
	return nil
}
