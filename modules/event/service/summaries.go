package service

import (
	"context"

	"event-hub/core/constants"
	"event-hub/core/errors"
	"event-hub/modules/event/dto"
	"event-hub/modules/event/mapper"
)

// Summaries returns short views of the given events ordered by id, with views
// and confirmed participants attached. Unknown ids are skipped, and so are
// unpublished events when onlyPublished is set. No hit is recorded.
func (s *PublicService) Summaries(ctx context.Context, ids []int64, onlyPublished bool) ([]dto.EventShortResponse, *errors.AppError) {
	if len(ids) == 0 {
		return []dto.EventShortResponse{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	events, err := s.events.ListByIDs(ctx, ids)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get events failed", err)
	}

	if onlyPublished {
		kept := events[:0]
		for _, ev := range events {
			if ev.IsPublished() {
				kept = append(kept, ev)
			}
		}
		events = kept
	}

	s.attachViews(ctx, events)
	return mapper.ToEventShortResponses(events), nil
}
