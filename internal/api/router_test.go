package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/example/sheets-commerce/internal/auth"
	"github.com/example/sheets-commerce/internal/infrastructure/store/mocks"
	"github.com/example/sheets-commerce/internal/model"
	"github.com/example/sheets-commerce/internal/order"
	"github.com/example/sheets-commerce/internal/syncdata"
)

// testAPI bundles the router with its backing fakes.
type testAPI struct {
	store  *mocks.MemStore
	tokens *auth.TokenService
	router http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	st := mocks.NewMemStore()
	tokens := auth.NewTokenService("test-secret-key-for-testing-purposes", auth.TokenExpiry)
	router := NewRouter(RouterConfig{
		Handlers:      NewHandlers(st, syncdata.NewRefresher(st, st)),
		AuthHandlers:  NewAuthHandlers(st, tokens),
		OrderHandlers: NewOrderHandlers(order.NewBuilder(st, nil), st),
		TokenService:  tokens,
	})

	return &testAPI{store: st, tokens: tokens, router: router}
}

// seedUser stores a user with a known password hash and returns a bearer
// token for them.
func (a *testAPI) seedUser(t *testing.T, id, email string, isAdmin bool) string {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	now := time.Now()
	a.store.SeedUser(model.User{
		ID:           id,
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})

	token, _, err := a.tokens.Generate(id, email, isAdmin)
	require.NoError(t, err)
	return token
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decodeBody(t, rec, &body)
	return body["message"]
}
