package dto

import (
	"strings"

	eventdto "event-hub/modules/event/dto"
)

type NewCompilationRequest struct {
	Events []int64 `json:"events" validate:"dive,gt=0"`
	Pinned bool    `json:"pinned"`
	Title  string  `json:"title" validate:"required,notblank,max=50"`
}

func (r *NewCompilationRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Events = UniqueIDs(r.Events)
}

// UpdateCompilationRequest changes only the fields present. A present events
// list replaces the current set, an empty one clears it.
type UpdateCompilationRequest struct {
	Events *[]int64 `json:"events"`
	Pinned *bool    `json:"pinned"`
	Title  *string  `json:"title" validate:"omitempty,max=50"`
}

func (r *UpdateCompilationRequest) Normalize() {
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			r.Title = nil
		} else {
			r.Title = &title
		}
	}
	if r.Events != nil {
		ids := UniqueIDs(*r.Events)
		r.Events = &ids
	}
}

type CompilationResponse struct {
	ID     int64                         `json:"id"`
	Events []eventdto.EventShortResponse `json:"events"`
	Pinned bool                          `json:"pinned"`
	Title  string                        `json:"title"`
}

// UniqueIDs drops repeated ids and keeps the first occurrence order.
func UniqueIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
