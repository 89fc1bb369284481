// Package service provides the business logic between the HTTP handlers and
// the repositories: credential handling, field-definition validation and the
// custom-data filtering applied to project writes.
package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/projectdesk/projectdesk/internal/auth"
	"github.com/projectdesk/projectdesk/internal/models"
)

// AuthRepository defines the persistence operations required by the
// authentication service.
type AuthRepository interface {
	// CreateUser creates a user record and returns it.
	// Returns models.ErrEmailTaken when the email is already registered.
	CreateUser(ctx context.Context, email string, passwordHash []byte) (models.User, error)
	// GetUserByEmail fetches a user by email.
	// Returns models.ErrNotFound when no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService implements registration and login.
type AuthService struct {
	repo AuthRepository
}

// NewAuthService constructs a new AuthService using the provided repository.
func NewAuthService(repo AuthRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Register creates an account for the given credentials. The password is
// stored as a bcrypt hash. Returns models.ErrValidation for empty
// credentials and models.ErrEmailTaken for a duplicate email.
func (s *AuthService) Register(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", models.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.repo.CreateUser(ctx, email, hash); err != nil {
		return err
	}
	return nil
}

// Login verifies the credentials and issues a bearer token carrying the
// user's identifier. Unknown email and wrong password both return
// models.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return "", models.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", models.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}
