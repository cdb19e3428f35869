package dto

import (
	"github.com/yasinga/yasinga/internal/models"
)

// Supplier Request DTOs

// CreateSupplierRequest represents the request payload for creating a supplier
type CreateSupplierRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,kenyan_phone"`
	CategoryID  string `json:"category_id" validate:"omitempty,uuid"`
}

// UpdateSupplierRequest represents the request payload for updating a supplier
type UpdateSupplierRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,kenyan_phone"`
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid"`
}

// Supplier Response DTOs

// SupplierResponse represents a single supplier in API responses
type SupplierResponse struct {
	Supplier *models.Supplier `json:"supplier"`
	Message  string           `json:"message,omitempty"`
}

// SupplierListResponse represents the user's suppliers
type SupplierListResponse struct {
	Suppliers []models.Supplier `json:"suppliers"`
}
