package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/sheets-commerce/internal/api/middleware"
	"github.com/example/sheets-commerce/internal/auth"
	"github.com/example/sheets-commerce/internal/infrastructure/store"
	"github.com/example/sheets-commerce/internal/model"
	"github.com/example/sheets-commerce/internal/validation"
)

// AuthHandlers handles registration, login, and token verification.
type AuthHandlers struct {
	users  store.UserStore
	tokens *auth.TokenService
}

func NewAuthHandlers(users store.UserStore, tokens *auth.TokenService) *AuthHandlers {
	return &AuthHandlers{
		users:  users,
		tokens: tokens,
	}
}

// RegisterRequest represents the registration request body.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents user data in responses.
type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// AuthResponse carries the user and the issued bearer token.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func toUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
	}
}

// Register handles user registration.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	name := validation.Sanitize(req.Name)
	email := strings.ToLower(validation.Sanitize(req.Email))
	password := validation.Sanitize(req.Password)

	if name == "" || email == "" || password == "" {
		respondMessage(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if !validation.ValidName(name) {
		respondMessage(w, http.StatusBadRequest,
			"Name must be 2-50 characters and contain only letters, spaces, apostrophes, and hyphens")
		return
	}
	if !validation.ValidEmail(email) {
		respondMessage(w, http.StatusBadRequest, "Please enter a valid email address")
		return
	}
	if !validation.ValidPassword(password) {
		respondMessage(w, http.StatusBadRequest, "Password must be between 6 and 128 characters")
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Printf("[API] Password hashing failed: %v", err)
		respondMessage(w, http.StatusInternalServerError, "Failed to process password")
		return
	}

	now := time.Now()
	user := &model.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.users.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			respondMessage(w, http.StatusBadRequest, "User already exists")
			return
		}
		log.Printf("[API] Failed to create user: %v", err)
		respondMessage(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, _, err := h.tokens.Generate(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		log.Printf("[API] Token generation failed: %v", err)
		respondMessage(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	respondJSON(w, http.StatusCreated, AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}

// Login handles user login. A wrong password and an unknown email return
// the same message so account existence is never disclosed.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := strings.ToLower(validation.Sanitize(req.Email))
	password := validation.Sanitize(req.Password)

	if email == "" || password == "" {
		respondMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	if !validation.ValidEmail(email) {
		respondMessage(w, http.StatusBadRequest, "Invalid email format")
		return
	}

	user, err := h.users.GetUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondMessage(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		log.Printf("[API] Failed to look up user: %v", err)
		respondMessage(w, http.StatusInternalServerError, "Database error")
		return
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		respondMessage(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, _, err := h.tokens.Generate(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		log.Printf("[API] Token generation failed: %v", err)
		respondMessage(w, http.StatusInternalServerError, "Authentication failed")
		return
	}

	respondJSON(w, http.StatusOK, AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}

// Verify resolves the bearer token to its user record.
func (h *AuthHandlers) Verify(w http.ResponseWriter, r *http.Request) {
	tokenString := middleware.ExtractToken(r)
	if tokenString == "" {
		respondMessage(w, http.StatusUnauthorized, "No token provided")
		return
	}

	claims, err := h.tokens.Validate(tokenString)
	if err != nil {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	user, err := h.users.GetUserByID(r.Context(), claims.UserID)
	if err != nil {
		respondMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	respondJSON(w, http.StatusOK, toUserResponse(user))
}
