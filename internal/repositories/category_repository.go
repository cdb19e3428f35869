package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yasinga/yasinga/internal/models"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category with this name already exists")
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category
func (r *categoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
			return ErrCategoryExists
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetByID retrieves a category by ID
func (r *categoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	category := &models.Category{}
	if err := r.db.Where("id = ?", id).First(category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

// GetByUserID retrieves all categories for a user, business first then
// by creation order so the seeded defaults keep a stable listing.
func (r *categoryRepository) GetByUserID(userID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Where("user_id = ?", userID).
		Order("kind ASC, created_at ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// GetByUserIDAndKind retrieves a user's categories of one kind
func (r *categoryRepository) GetByUserIDAndKind(userID uuid.UUID, kind string) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Where("user_id = ? AND kind = ?", userID, kind).
		Order("created_at ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories by kind: %w", err)
	}
	return categories, nil
}

// CountByUserID counts a user's categories
func (r *categoryRepository) CountByUserID(userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Category{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}

// SeedDefaults inserts the default category set for a user. Seeding is
// idempotent: it runs inside a transaction and bails out if the user
// already has any category, so concurrent callers cannot double-seed.
func (r *categoryRepository) SeedDefaults(userID uuid.UUID) ([]models.Category, error) {
	var seeded []models.Category

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).
			Where("user_id = ?", userID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count categories before seeding: %w", err)
		}
		if count > 0 {
			return nil
		}

		for _, def := range models.DefaultCategories() {
			category := models.Category{
				UserID:    userID,
				Name:      def.Name,
				Kind:      def.Kind,
				Color:     def.Color,
				Icon:      def.Icon,
				IsDefault: true,
			}
			if err := tx.Create(&category).Error; err != nil {
				return fmt.Errorf("failed to seed category %q: %w", def.Name, err)
			}
			seeded = append(seeded, category)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seeded, nil
}

// Update updates an existing category
func (r *categoryRepository) Update(category *models.Category) error {
	result := r.db.Save(category)
	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Delete removes a category. Transactions pointing at it fall back to
// pending via the service layer before this is called.
func (r *categoryRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
