package models

import (
	"time"

	"github.com/google/uuid"
)

// Wire types. Field names match what the mobile client encodes (camelCase),
// which is why they carry their own json tags instead of reusing the
// persisted records above.

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CategoryRequest struct {
	Name      string `json:"name"`
	ColorCode string `json:"colorCode"`
}

type ItemRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	StartDate   string  `json:"startDate"`
	Frequency   string  `json:"frequency"`
	GoalDays    int     `json:"goalDays"`
	CategoryID  string  `json:"categoryId"`
}

type RegisterResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason,omitempty"`
}

type LoginResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason,omitempty"`
	Token  string `json:"token,omitempty"`
	UserID string `json:"userId,omitempty"`
}

type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ColorCode string    `json:"colorCode"`
}

type ItemResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	StartDate     time.Time `json:"startDate"`
	Frequency     Frequency `json:"frequency"`
	GoalDays      int       `json:"goalDays"`
	CompletedDays int       `json:"completedDays"`
	IsCompleted   bool      `json:"isCompleted"`
	CategoryID    uuid.UUID `json:"categoryId"`
}

func (c *Category) Response() CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		ColorCode: c.ColorCode,
	}
}

func (i *Item) Response() ItemResponse {
	return ItemResponse{
		ID:            i.ID,
		Title:         i.Title,
		Description:   i.Description,
		StartDate:     i.StartDate,
		Frequency:     i.Frequency,
		GoalDays:      i.GoalDays,
		CompletedDays: i.CompletedDays,
		IsCompleted:   i.IsCompleted,
		CategoryID:    i.CategoryID,
	}
}
