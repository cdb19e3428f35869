package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yasinga/yasinga/internal/dto"
	"github.com/yasinga/yasinga/internal/models"
	"github.com/yasinga/yasinga/internal/repositories"
)

var ErrSupplierNotOwned = errors.New("supplier does not belong to user")

// supplierService implements SupplierServiceInterface
type supplierService struct {
	supplierRepo repositories.SupplierRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *slog.Logger
}

// NewSupplierService creates a new supplier service
func NewSupplierService(
	supplierRepo repositories.SupplierRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	logger *slog.Logger,
) SupplierServiceInterface {
	return &supplierService{
		supplierRepo: supplierRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// ListSuppliers returns the user's suppliers ordered by total spend
func (s *supplierService) ListSuppliers(userID uuid.UUID) ([]models.Supplier, error) {
	return s.supplierRepo.GetByUserID(userID)
}

// CreateSupplier registers a supplier for the user
func (s *supplierService) CreateSupplier(userID uuid.UUID, req *dto.CreateSupplierRequest) (*models.Supplier, error) {
	supplier := &models.Supplier{
		UserID:      userID,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
	}

	if req.CategoryID != "" {
		categoryID, err := s.ownedCategoryID(userID, req.CategoryID)
		if err != nil {
			return nil, err
		}
		supplier.CategoryID = &categoryID
	}

	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}

	s.logger.Info("supplier created",
		"user_id", userID,
		"supplier_id", supplier.ID,
		"name", supplier.Name)

	return supplier, nil
}

// UpdateSupplier updates a supplier's contact details and default category
func (s *supplierService) UpdateSupplier(userID, supplierID uuid.UUID, req *dto.UpdateSupplierRequest) (*models.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if supplier.UserID != userID {
		return nil, ErrSupplierNotOwned
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		supplier.PhoneNumber = *req.PhoneNumber
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			supplier.CategoryID = nil
		} else {
			categoryID, err := s.ownedCategoryID(userID, *req.CategoryID)
			if err != nil {
				return nil, err
			}
			supplier.CategoryID = &categoryID
		}
	}

	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

func (s *supplierService) ownedCategoryID(userID uuid.UUID, raw string) (uuid.UUID, error) {
	categoryID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid category id: %w", err)
	}
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return uuid.Nil, err
	}
	if category.UserID != userID {
		return uuid.Nil, ErrCategoryNotOwned
	}
	return categoryID, nil
}
