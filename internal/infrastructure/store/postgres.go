package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"

	"github.com/example/sheets-commerce/internal/model"
)

// PostgresStore implements Store on top of PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// ConnectPostgres opens and pings a PostgreSQL connection.
func ConnectPostgres(connStr string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// InitSchema creates the storefront tables if they do not exist.
func (s *PostgresStore) InitSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			is_admin BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT DEFAULT '',
			price DOUBLE PRECISION NOT NULL,
			category TEXT DEFAULT '',
			image TEXT DEFAULT '',
			availability TEXT DEFAULT 'in_stock',
			featured BOOLEAN DEFAULT FALSE,
			rating DOUBLE PRECISION DEFAULT 0,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS blog_posts (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			slug TEXT UNIQUE NOT NULL,
			content TEXT NOT NULL,
			excerpt TEXT DEFAULT '',
			author TEXT DEFAULT '',
			featured_image TEXT DEFAULT '',
			tags TEXT DEFAULT '',
			published_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS pages (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			slug TEXT UNIQUE NOT NULL,
			content TEXT NOT NULL,
			meta_description TEXT DEFAULT '',
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS comments (
			id TEXT PRIMARY KEY,
			post_id TEXT NOT NULL REFERENCES blog_posts (id) ON DELETE CASCADE,
			user_id TEXT NOT NULL REFERENCES users (id),
			content TEXT NOT NULL,
			approved BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users (id),
			items JSONB NOT NULL,
			total DOUBLE PRECISION NOT NULL,
			status TEXT DEFAULT 'pending',
			shipping_address JSONB NOT NULL,
			billing_address JSONB,
			payment_method TEXT DEFAULT '',
			payment_status TEXT DEFAULT 'pending',
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS site_config (
			key TEXT PRIMARY KEY,
			value TEXT DEFAULT '',
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// EnsureAdmin seeds the admin account if no user holds the given email.
func (s *PostgresStore) EnsureAdmin(ctx context.Context, id, name, email, passwordHash string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, is_admin)
		VALUES ($1, $2, $3, $4, TRUE)
		ON CONFLICT (email) DO NOTHING
	`, id, name, email, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	return nil
}

// EnsureDefaultConfig seeds missing site configuration keys.
func (s *PostgresStore) EnsureDefaultConfig(ctx context.Context, defaults map[string]string) error {
	for key, value := range defaults {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO site_config (key, value)
			VALUES ($1, $2)
			ON CONFLICT (key) DO NOTHING
		`, key, value)
		if err != nil {
			return fmt.Errorf("failed to seed config key %q: %w", key, err)
		}
	}
	return nil
}

// Product operations

func (s *PostgresStore) ListProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, price, category, image, availability, featured, rating, created_at, updated_at
		FROM products ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Image,
			&p.Availability, &p.Featured, &p.Rating, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *PostgresStore) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, price, category, image, availability, featured, rating, created_at, updated_at
		FROM products WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Image,
		&p.Availability, &p.Featured, &p.Rating, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &p, nil
}

// Blog operations

func (s *PostgresStore) ListPublishedPosts(ctx context.Context) ([]model.BlogPost, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, slug, content, excerpt, author, featured_image, tags, published_at, created_at, updated_at
		FROM blog_posts WHERE published_at IS NOT NULL ORDER BY published_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := []model.BlogPost{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func (s *PostgresStore) GetPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, slug, content, excerpt, author, featured_image, tags, published_at, created_at, updated_at
		FROM blog_posts WHERE slug = $1
	`, slug)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*model.BlogPost, error) {
	var p model.BlogPost
	var publishedAt sql.NullTime
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.Author,
		&p.FeaturedImage, &p.Tags, &publishedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if publishedAt.Valid {
		t := publishedAt.Time
		p.PublishedAt = &t
	}
	return &p, nil
}

func (s *PostgresStore) ListApprovedComments(ctx context.Context, postID string) ([]model.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.post_id, c.user_id, u.name, c.content, c.approved, c.created_at
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.post_id = $1 AND c.approved = TRUE
		ORDER BY c.created_at DESC
	`, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.UserName, &c.Content, &c.Approved, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Page operations

func (s *PostgresStore) ListPages(ctx context.Context) ([]model.Page, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, slug, content, meta_description, created_at, updated_at
		FROM pages ORDER BY title
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	defer rows.Close()

	pages := []model.Page{}
	for rows.Next() {
		var p model.Page
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.MetaDescription, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan page: %w", err)
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

func (s *PostgresStore) GetPageBySlug(ctx context.Context, slug string) (*model.Page, error) {
	var p model.Page
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, slug, content, meta_description, created_at, updated_at
		FROM pages WHERE slug = $1
	`, slug).Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.MetaDescription, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get page: %w", err)
	}
	return &p, nil
}

// User operations

func (s *PostgresStore) CreateUser(ctx context.Context, u *model.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, u.ID, u.Name, u.Email, u.PasswordHash, u.IsAdmin, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.getUser(ctx, "email", email)
}

func (s *PostgresStore) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	return s.getUser(ctx, "id", id)
}

func (s *PostgresStore) getUser(ctx context.Context, column, value string) (*model.User, error) {
	var u model.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, is_admin, created_at, updated_at
		FROM users WHERE `+column+` = $1
	`, value).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// Order operations
//
// Items and addresses are stored as JSONB columns, so an order is a single
// row and the create is atomic by construction.

func (s *PostgresStore) CreateOrder(ctx context.Context, o *model.Order) error {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}
	shippingJSON, err := json.Marshal(o.ShippingAddress)
	if err != nil {
		return fmt.Errorf("failed to marshal shipping address: %w", err)
	}
	var billingJSON []byte
	if o.BillingAddress != nil {
		billingJSON, err = json.Marshal(o.BillingAddress)
		if err != nil {
			return fmt.Errorf("failed to marshal billing address: %w", err)
		}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, items, total, status, shipping_address, billing_address, payment_method, payment_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, o.ID, o.UserID, itemsJSON, o.Total, o.Status, shippingJSON, billingJSON,
		o.PaymentMethod, o.PaymentStatus, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListOrdersByUser(ctx context.Context, userID string) ([]model.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, items, total, status, shipping_address, billing_address, payment_method, payment_status, created_at, updated_at
		FROM orders WHERE user_id = $1 ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (s *PostgresStore) GetOrderForUser(ctx context.Context, id, userID string) (*model.Order, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, items, total, status, shipping_address, billing_address, payment_method, payment_status, created_at, updated_at
		FROM orders WHERE id = $1 AND user_id = $2
	`, id, userID)
	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return o, nil
}

func scanOrder(row rowScanner) (*model.Order, error) {
	var o model.Order
	var itemsJSON, shippingJSON []byte
	var billingJSON sql.NullString
	err := row.Scan(&o.ID, &o.UserID, &itemsJSON, &o.Total, &o.Status, &shippingJSON,
		&billingJSON, &o.PaymentMethod, &o.PaymentStatus, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
	}
	if err := json.Unmarshal(shippingJSON, &o.ShippingAddress); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shipping address: %w", err)
	}
	if billingJSON.Valid && billingJSON.String != "" {
		var billing model.Address
		if err := json.Unmarshal([]byte(billingJSON.String), &billing); err != nil {
			return nil, fmt.Errorf("failed to unmarshal billing address: %w", err)
		}
		o.BillingAddress = &billing
	}
	return &o, nil
}

// Config operations

func (s *PostgresStore) GetConfig(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM site_config`)
	if err != nil {
		return nil, fmt.Errorf("failed to get config: %w", err)
	}
	defer rows.Close()

	config := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan config row: %w", err)
		}
		config[key] = value
	}
	return config, rows.Err()
}

func (s *PostgresStore) SetConfigValue(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO site_config (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`, key, value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set config key %q: %w", key, err)
	}
	return nil
}

// ReplaceContent swaps products, blog posts, and pages inside a single
// transaction so the refresh is all-or-nothing.
func (s *PostgresStore) ReplaceContent(ctx context.Context, products []model.Product, posts []model.BlogPost, pages []model.Page) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
				log.Printf("[PostgresStore] Rollback failed: %v", rbErr)
			}
		}
	}()

	for _, table := range []string{"comments", "products", "blog_posts", "pages"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, p := range products {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO products (id, name, description, price, category, image, availability, featured, rating, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, p.ID, p.Name, p.Description, p.Price, p.Category, p.Image, p.Availability, p.Featured, p.Rating, p.CreatedAt, p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert product %s: %w", p.ID, err)
		}
	}

	for _, p := range posts {
		var publishedAt sql.NullTime
		if p.PublishedAt != nil {
			publishedAt = sql.NullTime{Time: *p.PublishedAt, Valid: true}
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO blog_posts (id, title, slug, content, excerpt, author, featured_image, tags, published_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, p.ID, p.Title, p.Slug, p.Content, p.Excerpt, p.Author, p.FeaturedImage, p.Tags, publishedAt, p.CreatedAt, p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert post %s: %w", p.ID, err)
		}
	}

	for _, p := range pages {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO pages (id, title, slug, content, meta_description, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, p.ID, p.Title, p.Slug, p.Content, p.MetaDescription, p.CreatedAt, p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert page %s: %w", p.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit content replace: %w", err)
	}
	return nil
}
