package mapper

import (
	"event-hub/modules/compilation/dto"
	"event-hub/modules/compilation/entity"
	eventdto "event-hub/modules/event/dto"
)

// ToCompilationResponse lists the resolved events in eventIDs order. Ids
// missing from byID are left out.
func ToCompilationResponse(c *entity.Compilation, eventIDs []int64, byID map[int64]eventdto.EventShortResponse) *dto.CompilationResponse {
	events := make([]eventdto.EventShortResponse, 0, len(eventIDs))
	for _, id := range eventIDs {
		if ev, ok := byID[id]; ok {
			events = append(events, ev)
		}
	}
	return &dto.CompilationResponse{
		ID:     c.ID,
		Events: events,
		Pinned: c.Pinned,
		Title:  c.Title,
	}
}

func IndexEvents(events []eventdto.EventShortResponse) map[int64]eventdto.EventShortResponse {
	out := make(map[int64]eventdto.EventShortResponse, len(events))
	for _, ev := range events {
		out[ev.ID] = ev
	}
	return out
}
