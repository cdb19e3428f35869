package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category kinds partition spending into the two top-level buckets the
// classifier and reports operate on.
const (
	CategoryKindBusiness = "business"
	CategoryKindPersonal = "personal"
)

var (
	ErrInvalidCategoryKind = errors.New("invalid category kind")
	ErrCategoryNameEmpty   = errors.New("category name is required")
)

// Category represents a user-owned expense category.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_categories_user_name,priority:1" json:"user_id"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_user_name,priority:2" json:"name"`
	Kind      string    `gorm:"type:varchar(20);not null;default:'business'" json:"kind"`
	Color     string    `gorm:"type:varchar(20);default:'#059669'" json:"color"`
	Icon      string    `gorm:"type:varchar(50);default:'fas fa-store'" json:"icon"`
	IsDefault bool      `gorm:"default:false" json:"is_default"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Kind == "" {
		c.Kind = CategoryKindBusiness
	}
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}
	if !IsValidCategoryKind(c.Kind) {
		return ErrInvalidCategoryKind
	}
	return nil
}

// IsBusiness returns true for business categories
func (c *Category) IsBusiness() bool {
	return c.Kind == CategoryKindBusiness
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// IsValidCategoryKind checks if the category kind is valid
func IsValidCategoryKind(kind string) bool {
	switch kind {
	case CategoryKindBusiness, CategoryKindPersonal:
		return true
	default:
		return false
	}
}

// DefaultCategory describes one entry of the seeded default set. The lists
// are static configuration so the seed contents can be tested independently
// of the classifier.
type DefaultCategory struct {
	Name  string
	Kind  string
	Color string
	Icon  string
}

// DefaultCategories returns the category set seeded for users with no
// categories. The business set is restaurant-flavored to match the
// classifier's keyword groups.
func DefaultCategories() []DefaultCategory {
	return []DefaultCategory{
		{Name: "Supplier Payments", Kind: CategoryKindBusiness, Color: "#059669", Icon: "fas fa-truck"},
		{Name: "Food & Beverage Stock", Kind: CategoryKindBusiness, Color: "#16a34a", Icon: "fas fa-utensils"},
		{Name: "Equipment & Maintenance", Kind: CategoryKindBusiness, Color: "#dc2626", Icon: "fas fa-tools"},
		{Name: "Operating Expenses", Kind: CategoryKindBusiness, Color: "#ea580c", Icon: "fas fa-receipt"},
		{Name: "Staff Payments", Kind: CategoryKindBusiness, Color: "#7c2d12", Icon: "fas fa-users"},
		{Name: "Utilities & Rent", Kind: CategoryKindBusiness, Color: "#1e40af", Icon: "fas fa-home"},
		{Name: "Marketing & Advertising", Kind: CategoryKindBusiness, Color: "#7c3aed", Icon: "fas fa-megaphone"},
		{Name: "Licenses & Permits", Kind: CategoryKindBusiness, Color: "#374151", Icon: "fas fa-certificate"},
		{Name: "Business Income", Kind: CategoryKindBusiness, Color: "#059669", Icon: "fas fa-money-bill-wave"},

		{Name: "Personal Food & Dining", Kind: CategoryKindPersonal, Color: "#65a30d", Icon: "fas fa-hamburger"},
		{Name: "Personal Transportation", Kind: CategoryKindPersonal, Color: "#ca8a04", Icon: "fas fa-car"},
		{Name: "Healthcare & Medical", Kind: CategoryKindPersonal, Color: "#dc2626", Icon: "fas fa-heartbeat"},
		{Name: "Shopping & Groceries", Kind: CategoryKindPersonal, Color: "#0891b2", Icon: "fas fa-shopping-cart"},
		{Name: "Entertainment & Leisure", Kind: CategoryKindPersonal, Color: "#7c3aed", Icon: "fas fa-gamepad"},
		{Name: "Personal Miscellaneous", Kind: CategoryKindPersonal, Color: "#6b7280", Icon: "fas fa-user"},
	}
}
