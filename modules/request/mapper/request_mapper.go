package mapper

import (
	coredto "event-hub/core/dto"
	"event-hub/modules/request/dto"
	"event-hub/modules/request/entity"
)

func ToRequestResponse(r *entity.ParticipationRequest) *dto.ParticipationRequestResponse {
	return &dto.ParticipationRequestResponse{
		ID:        r.ID,
		Created:   coredto.NewDateTime(r.Created),
		Event:     r.EventID,
		Requester: r.RequesterID,
		Status:    string(r.Status),
	}
}

func ToRequestResponses(requests []entity.ParticipationRequest) []dto.ParticipationRequestResponse {
	out := make([]dto.ParticipationRequestResponse, len(requests))
	for i := range requests {
		out[i] = *ToRequestResponse(&requests[i])
	}
	return out
}
