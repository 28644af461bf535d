package service

import (
	"errors"
	"fmt"

	"growbit/internal/models"
	"growbit/internal/store"

	"github.com/google/uuid"
)

// resolveCategory verifies that categoryID exists and belongs to userID.
// A category owned by someone else resolves exactly like an absent one.
func (s *Service) resolveCategory(userID, categoryID uuid.UUID) (*models.Category, error) {
	category, err := s.store.FindCategoryByID(categoryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("category not found for this user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}

	if category.UserID != userID {
		return nil, fmt.Errorf("category not found for this user: %w", ErrNotFound)
	}

	return category, nil
}

// resolveItem walks the full user → category → item chain, top-down and
// short-circuiting: the category link is settled before the item is touched.
func (s *Service) resolveItem(userID, categoryID, itemID uuid.UUID) (*models.Item, error) {
	category, err := s.resolveCategory(userID, categoryID)
	if err != nil {
		return nil, err
	}

	item, err := s.store.FindItemByID(itemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("item not found in this category: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up item: %w", err)
	}

	if item.CategoryID != category.ID {
		return nil, fmt.Errorf("item not found in this category: %w", ErrNotFound)
	}

	return item, nil
}
