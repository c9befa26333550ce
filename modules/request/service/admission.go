package service

import (
	"fmt"

	"event-hub/core/errors"
	evententity "event-hub/modules/event/entity"
	"event-hub/modules/request/entity"
)

const limitReachedMessage = "Participants limit is reached"

// DecideInitialStatus confirms new requests right away when the event does
// not moderate them or has no participant limit.
func DecideInitialStatus(ev *evententity.Event) entity.RequestStatus {
	if !ev.RequestModeration || ev.ParticipantLimit == 0 {
		return entity.StatusConfirmed
	}
	return entity.StatusPending
}

// CheckAdmission applies the event side guards for a new request.
func CheckAdmission(ev *evententity.Event, requesterID, confirmed int64) *errors.AppError {
	if ev.InitiatorID == requesterID {
		return errors.NewAppError(errors.ErrConflict, "the initiator cannot request participation in their own event", nil)
	}
	if !ev.IsPublished() {
		return errors.NewAppError(errors.ErrConflict, "cannot participate in an unpublished event", nil)
	}
	if ev.ParticipantLimit > 0 && confirmed >= ev.ParticipantLimit {
		return errors.NewAppError(errors.ErrParticipantLimitReached, limitReachedMessage, nil)
	}
	return nil
}

// OrderByCaller arranges loaded requests in the order of ids, dropping
// repeated ids. Every id must exist and belong to eventID.
func OrderByCaller(eventID int64, ids []int64, loaded []entity.ParticipationRequest) ([]entity.ParticipationRequest, *errors.AppError) {
	byID := make(map[int64]entity.ParticipationRequest, len(loaded))
	for _, r := range loaded {
		byID[r.ID] = r
	}

	seen := make(map[int64]struct{}, len(ids))
	ordered := make([]entity.ParticipationRequest, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		r, ok := byID[id]
		if !ok || r.EventID != eventID {
			return nil, errors.NewAppError(errors.ErrNotFound, fmt.Sprintf("request %d not found", id), nil)
		}
		ordered = append(ordered, r)
	}
	return ordered, nil
}

// EnsureAllPending refuses a batch that contains any decided request.
func EnsureAllPending(requests []entity.ParticipationRequest) *errors.AppError {
	for _, r := range requests {
		if r.Status != entity.StatusPending {
			return errors.NewAppError(errors.ErrRequestNotPending, "Impossible to change request status", nil)
		}
	}
	return nil
}

// ConfirmationPlan is the outcome of a bulk confirm.
type ConfirmationPlan struct {
	Confirm      []entity.ParticipationRequest
	Reject       []entity.ParticipationRequest
	LimitReached bool
}

// PlanConfirmations confirms requests in order while the event has free
// places and rejects the rest once the limit is hit.
func PlanConfirmations(requests []entity.ParticipationRequest, limit, confirmed int64) ConfirmationPlan {
	var plan ConfirmationPlan
	running := confirmed
	for _, r := range requests {
		if limit > 0 && running >= limit {
			r.Status = entity.StatusRejected
			plan.Reject = append(plan.Reject, r)
			plan.LimitReached = true
			continue
		}
		r.Status = entity.StatusConfirmed
		plan.Confirm = append(plan.Confirm, r)
		running++
	}
	return plan
}

func requestIDs(requests []entity.ParticipationRequest) []int64 {
	ids := make([]int64, len(requests))
	for i, r := range requests {
		ids[i] = r.ID
	}
	return ids
}
