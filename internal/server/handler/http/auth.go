// Package http provides the HTTP handlers and routing for the tracker API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/projectdesk/projectdesk/internal/models"
)

// AuthService defines the interface for authentication operations required
// by the HTTP handlers.
type AuthService interface {
	// Register creates an account for the given credentials.
	Register(ctx context.Context, email, password string) error
	// Login verifies the credentials and returns a bearer token.
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// CredentialsRequest represents the JSON payload for registration and login.
type CredentialsRequest struct {
	// Email is the account email.
	Email string `json:"email"`
	// Password is the account password.
	Password string `json:"password"`
}

// Register handles user registration requests.
// It expects a JSON body with "email" and "password". A duplicate email or
// an invalid body responds 400; success responds 200 with an empty body and
// issues no token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "registration failed", http.StatusBadRequest)
		return
	}

	err := h.AuthService.Register(r.Context(), req.Email, req.Password)
	if errors.Is(err, models.ErrValidation) || errors.Is(err, models.ErrEmailTaken) {
		http.Error(w, "registration failed", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Login handles login requests. On success it responds with the bearer
// token; bad credentials respond 401 without distinguishing unknown email
// from wrong password.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, models.ErrInvalidCredentials) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
}
