package mapper

import (
	coredto "event-hub/core/dto"
	"event-hub/modules/comment/dto"
	"event-hub/modules/comment/entity"
)

func ToCommentResponse(c *entity.Comment) *dto.CommentResponse {
	return &dto.CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		EventID:    c.EventID,
		AuthorName: c.AuthorName,
		Created:    coredto.NewDateTime(c.Created),
	}
}

func ToCommentResponses(comments []entity.Comment) []dto.CommentResponse {
	out := make([]dto.CommentResponse, len(comments))
	for i := range comments {
		out[i] = *ToCommentResponse(&comments[i])
	}
	return out
}
