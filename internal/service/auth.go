package service

import (
	"errors"
	"fmt"

	"growbit/internal/logger"
	"growbit/internal/models"
	"growbit/internal/store"
	"growbit/internal/token"
	"growbit/internal/validation"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new user. The username uniqueness check is
// read-then-write, not atomic; concurrent identical registrations can race.
func (s *Service) Register(req models.RegisterRequest) error {
	if err := validation.RegisterPayload(req.Username, req.Password); err != nil {
		return invalid(err)
	}

	_, err := s.store.FindUserByUsername(req.Username)
	if err == nil {
		return fmt.Errorf("username is already taken: %w", ErrConflict)
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
	}
	if err := s.store.InsertUser(user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("User registered", "user_id", user.ID)
	return nil
}

// Login verifies credentials and issues a signed session token. No token is
// ever issued on a mismatch.
func (s *Service) Login(req models.LoginRequest) (string, uuid.UUID, error) {
	if err := validation.LoginPayload(req.Username, req.Password); err != nil {
		return "", uuid.Nil, invalid(err)
	}

	user, err := s.store.FindUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", uuid.Nil, fmt.Errorf("user not found: %w", ErrNotFound)
		}
		return "", uuid.Nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", uuid.Nil, fmt.Errorf("wrong password: %w", ErrUnauthorized)
	}

	signed, err := token.Issue(user.ID, s.tokenTTL, s.tokenSecret)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Info("User logged in", "user_id", user.ID)
	return signed, user.ID, nil
}
