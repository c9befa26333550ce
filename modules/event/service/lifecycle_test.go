package service

import (
	"testing"
	"time"

	"event-hub/core/errors"
	"event-hub/modules/event/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ApplyAdminAction(t *testing.T) {
	tests := []struct {
		name      string
		from      entity.EventState
		action    entity.StateAction
		wantState entity.EventState
		wantCode  errors.ErrorCode
	}{
		{name: "publish pending", from: entity.StatePending, action: entity.ActionPublishEvent, wantState: entity.StatePublished},
		{name: "reject pending", from: entity.StatePending, action: entity.ActionRejectEvent, wantState: entity.StateRejected},
		{name: "publish published", from: entity.StatePublished, action: entity.ActionPublishEvent, wantState: entity.StatePublished, wantCode: errors.ErrIllegalStateTransition},
		{name: "publish canceled", from: entity.StateCanceled, action: entity.ActionPublishEvent, wantState: entity.StateCanceled, wantCode: errors.ErrIllegalStateTransition},
		{name: "reject published", from: entity.StatePublished, action: entity.ActionRejectEvent, wantState: entity.StatePublished, wantCode: errors.ErrIllegalStateTransition},
		{name: "reject rejected", from: entity.StateRejected, action: entity.ActionRejectEvent, wantState: entity.StateRejected, wantCode: errors.ErrIllegalStateTransition},
		{name: "user action from admin", from: entity.StatePending, action: entity.ActionCancelReview, wantState: entity.StatePending, wantCode: errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := &entity.Event{State: tt.from}
			appErr := ApplyAdminAction(ev, tt.action, fixedNow)

			assert.Equal(t, tt.wantState, ev.State)
			if tt.wantCode != "" {
				require.NotNil(t, appErr)
				assert.Equal(t, tt.wantCode, appErr.Code)
				assert.Nil(t, ev.PublishedOn)
				return
			}
			require.Nil(t, appErr)
		})
	}
}

func Test_ApplyAdminAction_PublishStampsTime(t *testing.T) {
	ev := &entity.Event{State: entity.StatePending}
	require.Nil(t, ApplyAdminAction(ev, entity.ActionPublishEvent, fixedNow))
	require.NotNil(t, ev.PublishedOn)
	assert.True(t, ev.PublishedOn.Equal(fixedNow))
}

func Test_ApplyAdminAction_ErrorNamesActionAndState(t *testing.T) {
	ev := &entity.Event{State: entity.StatePublished}
	appErr := ApplyAdminAction(ev, entity.ActionPublishEvent, fixedNow)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Message, "PUBLISH_EVENT")
	assert.Contains(t, appErr.Message, "PUBLISHED")
}

func Test_ApplyUserAction(t *testing.T) {
	tests := []struct {
		name      string
		from      entity.EventState
		action    entity.StateAction
		wantState entity.EventState
		wantErr   bool
	}{
		{name: "resubmit rejected", from: entity.StateRejected, action: entity.ActionSendToReview, wantState: entity.StatePending},
		{name: "resubmit canceled", from: entity.StateCanceled, action: entity.ActionSendToReview, wantState: entity.StatePending},
		{name: "withdraw pending", from: entity.StatePending, action: entity.ActionCancelReview, wantState: entity.StateCanceled},
		{name: "withdraw published", from: entity.StatePublished, action: entity.ActionCancelReview, wantState: entity.StatePublished, wantErr: true},
		{name: "admin action", from: entity.StatePending, action: entity.ActionPublishEvent, wantState: entity.StatePending, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := &entity.Event{State: tt.from}
			appErr := ApplyUserAction(ev, tt.action)
			assert.Equal(t, tt.wantState, ev.State)
			assert.Equal(t, tt.wantErr, appErr != nil)
		})
	}
}

func Test_EnsureEditable(t *testing.T) {
	for _, st := range []entity.EventState{entity.StatePending, entity.StateCanceled, entity.StateRejected} {
		assert.Nil(t, EnsureOwnerEditable(&entity.Event{State: st}), st)
	}
	appErr := EnsureOwnerEditable(&entity.Event{State: entity.StatePublished})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrConflict, appErr.Code)

	assert.Nil(t, EnsureAdminEditable(&entity.Event{State: entity.StatePending}))
	assert.Nil(t, EnsureAdminEditable(&entity.Event{State: entity.StateRejected}))
	assert.NotNil(t, EnsureAdminEditable(&entity.Event{State: entity.StatePublished}))
	assert.NotNil(t, EnsureAdminEditable(&entity.Event{State: entity.StateCanceled}))
}

func Test_CheckLeadTime(t *testing.T) {
	assert.Nil(t, CheckLeadTime(fixedNow.Add(2*time.Hour), fixedNow, 2*time.Hour))

	appErr := CheckLeadTime(fixedNow.Add(2*time.Hour-time.Second), fixedNow, 2*time.Hour)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidEventDateTime, appErr.Code)
}
