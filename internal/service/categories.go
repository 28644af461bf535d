package service

import (
	"fmt"
	"strings"

	"growbit/internal/logger"
	"growbit/internal/models"
	"growbit/internal/validation"

	"github.com/google/uuid"
)

// CreateCategory validates the payload, normalizes the color code, rejects
// names already used by this user (case-insensitively) and persists.
// The uniqueness check is read-then-write, same caveat as Register.
func (s *Service) CreateCategory(userID uuid.UUID, req models.CategoryRequest) (*models.Category, error) {
	if err := validation.CategoryPayload(req.Name, req.ColorCode); err != nil {
		return nil, invalid(err)
	}

	existing, err := s.store.FindCategoriesByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing categories: %w", err)
	}
	for _, category := range existing {
		if strings.EqualFold(category.Name, req.Name) {
			return nil, fmt.Errorf("a category with this name already exists: %w", ErrConflict)
		}
	}

	category := &models.Category{
		UserID:    userID,
		Name:      req.Name,
		ColorCode: validation.NormalizeColorCode(req.ColorCode),
	}
	if err := s.store.InsertCategory(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	if category.ID == uuid.Nil {
		return nil, fmt.Errorf("category has no id after save: %w", ErrInternal)
	}

	logger.Info("Category created", "user_id", userID, "category_id", category.ID)
	return category, nil
}

// ListCategories returns every category owned by userID. No categories is a
// valid, empty result.
func (s *Service) ListCategories(userID uuid.UUID) ([]models.Category, error) {
	categories, err := s.store.FindCategoriesByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// DeleteCategory resolves ownership, deletes and returns a snapshot of the
// record as it was before deletion. Items under the category are removed by
// the persistence layer's cascade.
func (s *Service) DeleteCategory(userID, categoryID uuid.UUID) (*models.Category, error) {
	category, err := s.resolveCategory(userID, categoryID)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeleteCategory(category.ID); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	logger.Info("Category deleted", "user_id", userID, "category_id", category.ID)
	return category, nil
}
