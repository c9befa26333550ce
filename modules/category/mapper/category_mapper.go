package mapper

import (
	"event-hub/modules/category/dto"
	"event-hub/modules/category/entity"
)

func ToCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:   c.ID,
		Name: c.Name,
	}
}

func ToCategoryResponses(categories []entity.Category) []dto.CategoryResponse {
	out := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		out[i] = *ToCategoryResponse(&categories[i])
	}
	return out
}
