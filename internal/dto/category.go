package dto

import (
	"github.com/yasinga/yasinga/internal/models"
)

// Category Request DTOs

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Kind  string `json:"kind" validate:"required,category_kind"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
	Icon  string `json:"icon" validate:"omitempty,max=50"`
}

// UpdateCategoryRequest represents the request payload for updating a category
type UpdateCategoryRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
	Icon  *string `json:"icon" validate:"omitempty,max=50"`
}

// Category Response DTOs

// CategoryListResponse represents the user's category set
type CategoryListResponse struct {
	Categories []models.Category `json:"categories"`
	Count      int               `json:"count"`
}

// CategoryResponse represents a single category in API responses
type CategoryResponse struct {
	Category *models.Category `json:"category"`
	Message  string           `json:"message,omitempty"`
}
