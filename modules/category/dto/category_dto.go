package dto

import "strings"

type CategoryRequest struct {
	Name string `json:"name" validate:"required,notblank,max=50"`
}

func (r *CategoryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// UpdateCategoryRequest keeps the current name when Name is blank.
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"max=50"`
}

func (r *UpdateCategoryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
