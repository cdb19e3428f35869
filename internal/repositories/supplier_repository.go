package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yasinga/yasinga/internal/models"
)

var (
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrSupplierExists   = errors.New("supplier already exists")
)

// supplierRepository implements SupplierRepositoryInterface
type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(db *gorm.DB) SupplierRepositoryInterface {
	return &supplierRepository{
		db: db,
	}
}

// Create creates a new supplier
func (r *supplierRepository) Create(supplier *models.Supplier) error {
	if err := r.db.Create(supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
			return ErrSupplierExists
		}
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

// GetByID retrieves a supplier by ID with its category preloaded
func (r *supplierRepository) GetByID(id uuid.UUID) (*models.Supplier, error) {
	supplier := &models.Supplier{}
	if err := r.db.Preload("Category").Where("id = ?", id).First(supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	return supplier, nil
}

// GetByUserID retrieves a user's suppliers ordered by total spend
func (r *supplierRepository) GetByUserID(userID uuid.UUID) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := r.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("total_amount DESC").
		Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("failed to get suppliers: %w", err)
	}
	return suppliers, nil
}

// GetByUserIDAndName retrieves a supplier by its name for a user
func (r *supplierRepository) GetByUserIDAndName(userID uuid.UUID, name string) (*models.Supplier, error) {
	supplier := &models.Supplier{}
	if err := r.db.Where("user_id = ? AND name = ?", userID, name).First(supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to get supplier by name: %w", err)
	}
	return supplier, nil
}

// CountByUserID counts a user's suppliers
func (r *supplierRepository) CountByUserID(userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Supplier{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count suppliers: %w", err)
	}
	return count, nil
}

// Update updates an existing supplier
func (r *supplierRepository) Update(supplier *models.Supplier) error {
	result := r.db.Save(supplier)
	if result.Error != nil {
		return fmt.Errorf("failed to update supplier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSupplierNotFound
	}
	return nil
}

// Delete removes a supplier
func (r *supplierRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Supplier{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete supplier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSupplierNotFound
	}
	return nil
}
