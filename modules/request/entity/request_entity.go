package entity

import "time"

type RequestStatus string

const (
	StatusPending   RequestStatus = "PENDING"
	StatusConfirmed RequestStatus = "CONFIRMED"
	StatusRejected  RequestStatus = "REJECTED"
	StatusCanceled  RequestStatus = "CANCELED"
)

type ParticipationRequest struct {
	ID          int64         `db:"id"`
	Created     time.Time     `db:"created"`
	EventID     int64         `db:"event_id"`
	RequesterID int64         `db:"requester_id"`
	Status      RequestStatus `db:"status"`
}

// IsActive reports whether the request still blocks a new one for the
// same event and requester.
func (r *ParticipationRequest) IsActive() bool {
	return r.Status != StatusCanceled
}
