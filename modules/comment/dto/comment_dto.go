package dto

import (
	"strings"

	coredto "event-hub/core/dto"
)

type CommentRequest struct {
	Text string `json:"text" validate:"required,notblank,max=2000"`
}

func (r *CommentRequest) Normalize() {
	r.Text = strings.TrimSpace(r.Text)
}

// CommentListQuery carries the raw query of an author's listing. Bounds use
// the "2006-01-02 15:04:05" layout.
type CommentListQuery struct {
	RangeStart string
	RangeEnd   string
}

type CommentResponse struct {
	ID         int64            `json:"id"`
	Text       string           `json:"text"`
	EventID    int64            `json:"event_id"`
	AuthorName string           `json:"author_name"`
	Created    coredto.DateTime `json:"created"`
}
