package store

import (
	"database/sql"
	"fmt"
	"time"

	"growbit/internal/models"

	"github.com/google/uuid"
)

func (s *SQLite) InsertCategory(category *models.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	category.CreatedAt = time.Now()

	query := `
		INSERT INTO categories (id, user_id, name, color_code, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query, category.ID, category.UserID, category.Name, category.ColorCode, category.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	return nil
}

func (s *SQLite) FindCategoryByID(id uuid.UUID) (*models.Category, error) {
	category := &models.Category{}
	query := `
		SELECT id, user_id, name, color_code, created_at
		FROM categories
		WHERE id = ?
	`

	err := s.db.QueryRow(query, id).Scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&category.ColorCode,
		&category.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return category, nil
}

func (s *SQLite) FindCategoriesByUser(userID uuid.UUID) ([]models.Category, error) {
	query := `
		SELECT id, user_id, name, color_code, created_at
		FROM categories
		WHERE user_id = ?
		ORDER BY name
	`

	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		err := rows.Scan(
			&category.ID,
			&category.UserID,
			&category.Name,
			&category.ColorCode,
			&category.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// DeleteCategory removes a category; the items foreign key cascades, so the
// category's items go with it.
func (s *SQLite) DeleteCategory(id uuid.UUID) error {
	query := `
		DELETE FROM categories
		WHERE id = ?
	`

	result, err := s.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
