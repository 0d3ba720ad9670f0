package store

import (
	"context"
	"errors"

	"github.com/example/sheets-commerce/internal/model"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when registering an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("email already registered")
)

// ProductStore reads catalog products.
type ProductStore interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
}

// BlogStore reads published blog content.
type BlogStore interface {
	ListPublishedPosts(ctx context.Context) ([]model.BlogPost, error)
	GetPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	ListApprovedComments(ctx context.Context, postID string) ([]model.Comment, error)
}

// PageStore reads static pages.
type PageStore interface {
	ListPages(ctx context.Context) ([]model.Page, error)
	GetPageBySlug(ctx context.Context, slug string) (*model.Page, error)
}

// UserStore manages user accounts.
type UserStore interface {
	// CreateUser persists a new user. Returns ErrDuplicateEmail when the
	// email is already registered.
	CreateUser(ctx context.Context, u *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
}

// OrderStore persists and reads orders. CreateOrder must be atomic: a
// failed create leaves no partial record visible to subsequent reads.
type OrderStore interface {
	CreateOrder(ctx context.Context, o *model.Order) error
	ListOrdersByUser(ctx context.Context, userID string) ([]model.Order, error)
	// GetOrderForUser scopes the lookup to the owning user; an order
	// belonging to someone else reads as ErrNotFound.
	GetOrderForUser(ctx context.Context, id, userID string) (*model.Order, error)
}

// ConfigStore holds the flat site configuration map.
type ConfigStore interface {
	GetConfig(ctx context.Context) (map[string]string, error)
	SetConfigValue(ctx context.Context, key, value string) error
}

// ContentReplacer swaps the entire catalog/blog/page content in one
// all-or-nothing operation (the sync refresh).
type ContentReplacer interface {
	ReplaceContent(ctx context.Context, products []model.Product, posts []model.BlogPost, pages []model.Page) error
}

// Store is the full storefront persistence contract. Both the PostgreSQL
// and the DynamoDB backends implement it.
type Store interface {
	ProductStore
	BlogStore
	PageStore
	UserStore
	OrderStore
	ConfigStore
	ContentReplacer
}
