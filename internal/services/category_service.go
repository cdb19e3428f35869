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

var (
	ErrCategoryNotOwned = errors.New("category does not belong to user")
)

// categoryService implements CategoryServiceInterface
type categoryService struct {
	categoryRepo    repositories.CategoryRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	logger          *slog.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	logger *slog.Logger,
) CategoryServiceInterface {
	return &categoryService{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// ListCategories returns the user's categories, seeding the default set
// the first time a user with no categories asks for them.
func (s *categoryService) ListCategories(userID uuid.UUID) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if len(categories) == 0 {
		seeded, err := s.categoryRepo.SeedDefaults(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to seed default categories: %w", err)
		}
		s.logger.Info("seeded default categories",
			"user_id", userID,
			"count", len(seeded))

		return s.categoryRepo.GetByUserID(userID)
	}

	return categories, nil
}

// CreateCategory creates a custom category for the user
func (s *categoryService) CreateCategory(userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		UserID: userID,
		Name:   req.Name,
		Kind:   req.Kind,
	}
	if req.Color != "" {
		category.Color = req.Color
	}
	if req.Icon != "" {
		category.Icon = req.Icon
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	s.logger.Info("category created",
		"user_id", userID,
		"category_id", category.ID,
		"kind", category.Kind)

	return category, nil
}

// UpdateCategory updates a category's display fields. The kind is fixed
// at creation; flipping a category between business and personal would
// silently rewrite historical report splits.
func (s *categoryService) UpdateCategory(userID, categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.ownedCategory(userID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory removes a category. Transactions assigned to it drop
// back to the pending state so they resurface for review.
func (s *categoryService) DeleteCategory(userID, categoryID uuid.UUID) error {
	if _, err := s.ownedCategory(userID, categoryID); err != nil {
		return err
	}

	reset, err := s.transactionRepo.ResetByCategory(categoryID)
	if err != nil {
		return err
	}

	if err := s.categoryRepo.Delete(categoryID); err != nil {
		return err
	}

	s.logger.Info("category deleted",
		"user_id", userID,
		"category_id", categoryID,
		"transactions_reset", reset)

	return nil
}

func (s *categoryService) ownedCategory(userID, categoryID uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category.UserID != userID {
		return nil, ErrCategoryNotOwned
	}
	return category, nil
}
