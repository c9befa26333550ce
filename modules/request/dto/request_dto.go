package dto

import (
	coredto "event-hub/core/dto"
)

type ParticipationRequestResponse struct {
	ID        int64            `json:"id"`
	Created   coredto.DateTime `json:"created"`
	Event     int64            `json:"event"`
	Requester int64            `json:"requester"`
	Status    string           `json:"status"`
}

type StatusUpdateRequest struct {
	RequestIDs []int64 `json:"request_ids"`
	Status     string  `json:"status" validate:"required,oneof=CONFIRMED REJECTED"`
}

type StatusUpdateResult struct {
	ConfirmedRequests []ParticipationRequestResponse `json:"confirmed_requests"`
	RejectedRequests  []ParticipationRequestResponse `json:"rejected_requests"`
}
