package models

import (
	"time"

	"github.com/google/uuid"
)

// Frequency is how often a habit recurs.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type Category struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	ColorCode string    `json:"color_code" db:"color_code"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Item struct {
	ID            uuid.UUID `json:"id" db:"id"`
	CategoryID    uuid.UUID `json:"category_id" db:"category_id"`
	Title         string    `json:"title" db:"title"`
	Description   *string   `json:"description,omitempty" db:"description"`
	StartDate     time.Time `json:"start_date" db:"start_date"`
	Frequency     Frequency `json:"frequency" db:"frequency"`
	GoalDays      int       `json:"goal_days" db:"goal_days"`
	CompletedDays int       `json:"completed_days" db:"completed_days"`
	IsCompleted   bool      `json:"is_completed" db:"is_completed"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
