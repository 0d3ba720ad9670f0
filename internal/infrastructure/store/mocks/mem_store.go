// Package mocks provides in-memory test doubles for the store package.
package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/example/sheets-commerce/internal/infrastructure/store"
	"github.com/example/sheets-commerce/internal/model"
)

// MemStore is an in-memory implementation of store.Store for testing.
// Error fields, when set, are returned by the corresponding methods so
// tests can exercise failure paths.
type MemStore struct {
	mu       sync.RWMutex
	products map[string]model.Product
	posts    map[string]model.BlogPost
	pages    map[string]model.Page
	comments map[string][]model.Comment
	users    map[string]model.User
	orders   map[string]model.Order
	config   map[string]string

	ReadErr           error
	CreateUserErr     error
	CreateOrderErr    error
	SetConfigErr      error
	ReplaceContentErr error
}

func NewMemStore() *MemStore {
	return &MemStore{
		products: map[string]model.Product{},
		posts:    map[string]model.BlogPost{},
		pages:    map[string]model.Page{},
		comments: map[string][]model.Comment{},
		users:    map[string]model.User{},
		orders:   map[string]model.Order{},
		config:   map[string]string{},
	}
}

// Seed helpers

func (m *MemStore) SeedProduct(p model.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = p
}

func (m *MemStore) SeedPost(p model.BlogPost) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts[p.ID] = p
}

func (m *MemStore) SeedPage(p model.Page) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages[p.ID] = p
}

func (m *MemStore) SeedComment(c model.Comment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.comments[c.PostID] = append(m.comments[c.PostID], c)
}

func (m *MemStore) SeedUser(u model.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = u
}

func (m *MemStore) SeedConfig(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.config[key] = value
}

// Product operations

func (m *MemStore) ListProducts(ctx context.Context) ([]model.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	products := []model.Product{}
	for _, p := range m.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

func (m *MemStore) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	p, ok := m.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

// Blog operations

func (m *MemStore) ListPublishedPosts(ctx context.Context) ([]model.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	posts := []model.BlogPost{}
	for _, p := range m.posts {
		if p.PublishedAt != nil {
			posts = append(posts, p)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(*posts[j].PublishedAt)
	})
	return posts, nil
}

func (m *MemStore) GetPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	for _, p := range m.posts {
		if p.Slug == slug {
			post := p
			return &post, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *MemStore) ListApprovedComments(ctx context.Context, postID string) ([]model.Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	comments := []model.Comment{}
	for _, c := range m.comments[postID] {
		if c.Approved {
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

// Page operations

func (m *MemStore) ListPages(ctx context.Context) ([]model.Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	pages := []model.Page{}
	for _, p := range m.pages {
		pages = append(pages, p)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Title < pages[j].Title })
	return pages, nil
}

func (m *MemStore) GetPageBySlug(ctx context.Context, slug string) (*model.Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	for _, p := range m.pages {
		if p.Slug == slug {
			page := p
			return &page, nil
		}
	}
	return nil, store.ErrNotFound
}

// User operations

func (m *MemStore) CreateUser(ctx context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateUserErr != nil {
		return m.CreateUserErr
	}
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return store.ErrDuplicateEmail
		}
	}
	m.users[u.ID] = *u
	return nil
}

func (m *MemStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *MemStore) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	u, ok := m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

// Order operations

func (m *MemStore) CreateOrder(ctx context.Context, o *model.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateOrderErr != nil {
		return m.CreateOrderErr
	}
	m.orders[o.ID] = *o
	return nil
}

func (m *MemStore) ListOrdersByUser(ctx context.Context, userID string) ([]model.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	orders := []model.Order{}
	for _, o := range m.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (m *MemStore) GetOrderForUser(ctx context.Context, id, userID string) (*model.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	o, ok := m.orders[id]
	if !ok || o.UserID != userID {
		return nil, store.ErrNotFound
	}
	return &o, nil
}

// OrderCount reports how many orders have been stored.
func (m *MemStore) OrderCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.orders)
}

// Config operations

func (m *MemStore) GetConfig(ctx context.Context) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	config := map[string]string{}
	for k, v := range m.config {
		config[k] = v
	}
	return config, nil
}

func (m *MemStore) SetConfigValue(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetConfigErr != nil {
		return m.SetConfigErr
	}
	m.config[key] = value
	return nil
}

// ReplaceContent swaps all content, matching the real stores' semantics.
func (m *MemStore) ReplaceContent(ctx context.Context, products []model.Product, posts []model.BlogPost, pages []model.Page) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReplaceContentErr != nil {
		return m.ReplaceContentErr
	}
	m.products = map[string]model.Product{}
	m.posts = map[string]model.BlogPost{}
	m.pages = map[string]model.Page{}
	m.comments = map[string][]model.Comment{}
	for _, p := range products {
		m.products[p.ID] = p
	}
	for _, p := range posts {
		m.posts[p.ID] = p
	}
	for _, p := range pages {
		m.pages[p.ID] = p
	}
	return nil
}
