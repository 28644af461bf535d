package service

import (
	"fmt"

	"growbit/internal/logger"
	"growbit/internal/models"
	"growbit/internal/validation"

	"github.com/google/uuid"
)

// CreateItem validates the payload, resolves the category against the acting
// user and persists the item with its progress counters zeroed.
func (s *Service) CreateItem(userID, categoryID uuid.UUID, req models.ItemRequest) (*models.Item, error) {
	startDate, err := validation.ItemPayload(req)
	if err != nil {
		return nil, invalid(err)
	}

	category, err := s.resolveCategory(userID, categoryID)
	if err != nil {
		return nil, err
	}

	item := &models.Item{
		CategoryID:    category.ID,
		Title:         req.Title,
		Description:   req.Description,
		StartDate:     startDate,
		Frequency:     models.Frequency(req.Frequency),
		GoalDays:      req.GoalDays,
		CompletedDays: 0,
		IsCompleted:   false,
	}
	if err := s.store.InsertItem(item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	if item.ID == uuid.Nil {
		return nil, fmt.Errorf("item has no id after save: %w", ErrInternal)
	}

	logger.Info("Item created", "user_id", userID, "category_id", category.ID, "item_id", item.ID)
	return item, nil
}

// ListItems returns the items under a category after resolving that the
// category belongs to the acting user.
func (s *Service) ListItems(userID, categoryID uuid.UUID) ([]models.Item, error) {
	category, err := s.resolveCategory(userID, categoryID)
	if err != nil {
		return nil, err
	}

	items, err := s.store.FindItemsByCategory(category.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// GetItem resolves the full user → category → item chain and returns the
// item.
func (s *Service) GetItem(userID, categoryID, itemID uuid.UUID) (*models.Item, error) {
	return s.resolveItem(userID, categoryID, itemID)
}
