// Package validation holds the pure payload checks that run before any
// persistence access. Checks within one payload run in a fixed order and
// the first failure wins.
package validation

import (
	"fmt"
	"regexp"
	"time"

	"growbit/internal/models"

	"github.com/google/uuid"
)

var colorCodeRegex = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

const minPasswordLength = 8

func RegisterPayload(username, password string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("password should be at least %d characters long", minPasswordLength)
	}
	return nil
}

func LoginPayload(username, password string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	return nil
}

func CategoryPayload(name, colorCode string) error {
	if name == "" {
		return fmt.Errorf("category name cannot be empty")
	}
	if !colorCodeRegex.MatchString(colorCode) {
		return fmt.Errorf("color code should be in format RRGGBB or #RRGGBB")
	}
	return nil
}

// NormalizeColorCode prefixes a bare RRGGBB value with '#'. Hex digit case
// is preserved as given. The input must already have passed CategoryPayload.
func NormalizeColorCode(colorCode string) string {
	if len(colorCode) > 0 && colorCode[0] == '#' {
		return colorCode
	}
	return "#" + colorCode
}

// ItemPayload checks an item request and returns the parsed start date.
func ItemPayload(req models.ItemRequest) (time.Time, error) {
	if req.Title == "" {
		return time.Time{}, fmt.Errorf("title cannot be empty")
	}
	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("startDate must be an RFC 3339 date")
	}
	if !models.Frequency(req.Frequency).Valid() {
		return time.Time{}, fmt.Errorf("frequency must be one of daily, weekly or monthly")
	}
	if req.GoalDays < 1 {
		return time.Time{}, fmt.Errorf("goal must be at least 1 day")
	}
	if _, err := uuid.Parse(req.CategoryID); err != nil {
		return time.Time{}, fmt.Errorf("categoryId is not a valid identifier")
	}
	return startDate, nil
}

// ParseID rejects malformed identifiers before any lookup happens, keeping
// "not a UUID" distinct from "not found".
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("malformed identifier %q", raw)
	}
	return id, nil
}
