package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Success(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret123",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp AuthResponse
	decodeBody(t, rec, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, "Jane Doe", resp.User.Name)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.False(t, resp.User.IsAdmin)

	// The issued token is immediately valid.
	claims, err := api.tokens.Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestRegister_EmailNormalized(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Name:     "Jane Doe",
		Email:    "  Jane@Example.COM  ",
		Password: "secret123",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp AuthResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "jane@example.com", resp.User.Email)
}

func TestRegister_MissingFields(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"no name", RegisterRequest{Email: "a@b.co", Password: "secret123"}},
		{"no email", RegisterRequest{Name: "Jane", Password: "secret123"}},
		{"no password", RegisterRequest{Name: "Jane", Email: "a@b.co"}},
		{"whitespace only", RegisterRequest{Name: "   ", Email: "a@b.co", Password: "secret123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(t, http.MethodPost, "/api/auth/register", "", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "All fields are required", messageOf(t, rec))
		})
	}
}

func TestRegister_InvalidInputs(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name    string
		req     RegisterRequest
		message string
	}{
		{
			"name with digits",
			RegisterRequest{Name: "Jane99", Email: "jane@example.com", Password: "secret123"},
			"Name must be 2-50 characters and contain only letters, spaces, apostrophes, and hyphens",
		},
		{
			"bad email",
			RegisterRequest{Name: "Jane", Email: "not-an-email", Password: "secret123"},
			"Please enter a valid email address",
		},
		{
			"short password",
			RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "12345"},
			"Password must be between 6 and 128 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(t, http.MethodPost, "/api/auth/register", "", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, messageOf(t, rec))
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	api := newTestAPI(t)

	first := api.do(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "firstpassword",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := api.do(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Name: "Impostor", Email: "jane@example.com", Password: "otherpassword",
	})
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.Equal(t, "User already exists", messageOf(t, second))

	// The original account still authenticates with its own password.
	login := api.do(t, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email: "jane@example.com", Password: "firstpassword",
	})
	assert.Equal(t, http.StatusOK, login.Code)
}

func TestLogin_Success(t *testing.T) {
	api := newTestAPI(t)
	api.seedUser(t, "user-1", "jane@example.com", false)

	rec := api.do(t, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email: "jane@example.com", Password: "password123",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp AuthResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "user-1", resp.User.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	api := newTestAPI(t)
	api.seedUser(t, "user-1", "jane@example.com", false)

	rec := api.do(t, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email: "jane@example.com", Password: "wrongpassword",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid credentials", messageOf(t, rec))
}

func TestLogin_UnknownEmail_SameMessage(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email: "nobody@example.com", Password: "password123",
	})

	// Indistinguishable from a wrong password.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid credentials", messageOf(t, rec))
}

func TestLogin_MissingFields(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: "jane@example.com"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email and password are required", messageOf(t, rec))
}

func TestLogin_CaseInsensitiveEmail(t *testing.T) {
	api := newTestAPI(t)
	api.seedUser(t, "user-1", "jane@example.com", false)

	rec := api.do(t, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email: "Jane@Example.COM", Password: "password123",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVerify_Success(t *testing.T) {
	api := newTestAPI(t)
	token := api.seedUser(t, "user-1", "jane@example.com", true)

	rec := api.do(t, http.MethodGet, "/api/auth/verify", token, nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var user UserResponse
	decodeBody(t, rec, &user)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.True(t, user.IsAdmin)
}

func TestVerify_NoToken(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/auth/verify", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "No token provided", messageOf(t, rec))
}

func TestVerify_InvalidToken(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/auth/verify", "garbage", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", messageOf(t, rec))
}

func TestVerify_DeletedUser(t *testing.T) {
	api := newTestAPI(t)

	// A valid token whose user no longer exists in the store.
	token, _, err := api.tokens.Generate("ghost", "ghost@example.com", false)
	require.NoError(t, err)

	rec := api.do(t, http.MethodGet, "/api/auth/verify", token, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", messageOf(t, rec))
}

func TestRegister_ResponseOmitsPasswordHash(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.NotContains(t, rec.Body.String(), "password")

	// The hash is stored, just never serialized.
	u, err := api.store.GetUserByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, u.PasswordHash)
}
