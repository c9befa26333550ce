package mapper

import (
	coredto "event-hub/core/dto"
	categorydto "event-hub/modules/category/dto"
	"event-hub/modules/event/dto"
	"event-hub/modules/event/entity"
	userdto "event-hub/modules/user/dto"
)

func ToEventFullResponse(ev *entity.Event) *dto.EventFullResponse {
	return &dto.EventFullResponse{
		ID:                ev.ID,
		Annotation:        ev.Annotation,
		Category:          categorydto.CategoryResponse{ID: ev.CategoryID, Name: ev.CategoryName},
		ConfirmedRequests: ev.ConfirmedRequests,
		CreatedOn:         coredto.NewDateTime(ev.CreatedOn),
		Description:       ev.Description,
		EventDate:         coredto.NewDateTime(ev.EventDate),
		Initiator:         userdto.UserShortResponse{ID: ev.InitiatorID, Name: ev.InitiatorName},
		Location:          dto.LocationDto{Lat: ev.Lat, Lon: ev.Lon},
		Paid:              ev.Paid,
		ParticipantLimit:  ev.ParticipantLimit,
		PublishedOn:       coredto.NewDateTimePtr(ev.PublishedOn),
		RequestModeration: ev.RequestModeration,
		State:             string(ev.State),
		Title:             ev.Title,
		Views:             ev.Views,
	}
}

func ToEventShortResponse(ev *entity.Event) *dto.EventShortResponse {
	return &dto.EventShortResponse{
		ID:                ev.ID,
		Annotation:        ev.Annotation,
		Category:          categorydto.CategoryResponse{ID: ev.CategoryID, Name: ev.CategoryName},
		ConfirmedRequests: ev.ConfirmedRequests,
		EventDate:         coredto.NewDateTime(ev.EventDate),
		Initiator:         userdto.UserShortResponse{ID: ev.InitiatorID, Name: ev.InitiatorName},
		Paid:              ev.Paid,
		Title:             ev.Title,
		Views:             ev.Views,
	}
}

func ToEventFullResponses(events []entity.Event) []dto.EventFullResponse {
	out := make([]dto.EventFullResponse, len(events))
	for i := range events {
		out[i] = *ToEventFullResponse(&events[i])
	}
	return out
}

func ToEventShortResponses(events []entity.Event) []dto.EventShortResponse {
	out := make([]dto.EventShortResponse, len(events))
	for i := range events {
		out[i] = *ToEventShortResponse(&events[i])
	}
	return out
}
