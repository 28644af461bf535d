// Package store is the persistence gateway. The rest of the application
// depends on the narrow Store interface only; the sqlite implementation
// lives alongside it.
package store

import (
	"errors"

	"growbit/internal/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned by every Find* method when no row matches.
var ErrNotFound = errors.New("record not found")

type Store interface {
	InsertUser(user *models.User) error
	FindUserByID(id uuid.UUID) (*models.User, error)
	FindUserByUsername(username string) (*models.User, error)

	InsertCategory(category *models.Category) error
	FindCategoryByID(id uuid.UUID) (*models.Category, error)
	FindCategoriesByUser(userID uuid.UUID) ([]models.Category, error)
	DeleteCategory(id uuid.UUID) error

	InsertItem(item *models.Item) error
	FindItemByID(id uuid.UUID) (*models.Item, error)
	FindItemsByCategory(categoryID uuid.UUID) ([]models.Item, error)
}
