package store

import (
	"database/sql"
	"fmt"
	"time"

	"growbit/internal/models"

	"github.com/google/uuid"
)

func (s *SQLite) InsertItem(item *models.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.CreatedAt = time.Now()

	query := `
		INSERT INTO items (id, category_id, title, description, start_date, frequency, goal_days, completed_days, is_completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var description sql.NullString
	if item.Description != nil {
		description = sql.NullString{String: *item.Description, Valid: true}
	}

	_, err := s.db.Exec(query, item.ID, item.CategoryID, item.Title, description, item.StartDate,
		string(item.Frequency), item.GoalDays, item.CompletedDays, item.IsCompleted, item.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	return nil
}

func (s *SQLite) FindItemByID(id uuid.UUID) (*models.Item, error) {
	query := `
		SELECT id, category_id, title, description, start_date, frequency, goal_days, completed_days, is_completed, created_at
		FROM items
		WHERE id = ?
	`

	item, err := scanItem(s.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query item: %w", err)
	}

	return item, nil
}

func (s *SQLite) FindItemsByCategory(categoryID uuid.UUID) ([]models.Item, error) {
	query := `
		SELECT id, category_id, title, description, start_date, frequency, goal_days, completed_days, is_completed, created_at
		FROM items
		WHERE category_id = ?
		ORDER BY start_date, title
	`

	rows, err := s.db.Query(query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	item := &models.Item{}
	var description sql.NullString
	var frequency string

	err := row.Scan(
		&item.ID,
		&item.CategoryID,
		&item.Title,
		&description,
		&item.StartDate,
		&frequency,
		&item.GoalDays,
		&item.CompletedDays,
		&item.IsCompleted,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		item.Description = &description.String
	}
	item.Frequency = models.Frequency(frequency)

	return item, nil
}
