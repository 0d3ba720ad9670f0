package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/example/sheets-commerce/internal/infrastructure/store"
	"github.com/example/sheets-commerce/internal/model"
	"github.com/example/sheets-commerce/internal/syncdata"
)

// Handlers serves the catalog, blog, page, config, and sync routes.
type Handlers struct {
	store     store.Store
	refresher *syncdata.Refresher
}

func NewHandlers(st store.Store, refresher *syncdata.Refresher) *Handlers {
	return &Handlers{
		store:     st,
		refresher: refresher,
	}
}

// Product handlers

func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.ListProducts(r.Context())
	if err != nil {
		respondStoreError(w, err, "Product not found")
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := extractPathParam(r.URL.Path, "/api/products/")
	product, err := h.store.GetProduct(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Product not found")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// Blog handlers

func (h *Handlers) GetBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.store.ListPublishedPosts(r.Context())
	if err != nil {
		respondStoreError(w, err, "Blog post not found")
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

// GetBlogPost returns a single post with its approved comments, newest
// first.
func (h *Handlers) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	slug := extractPathParam(r.URL.Path, "/api/blog/")
	post, err := h.store.GetPostBySlug(r.Context(), slug)
	if err != nil {
		respondStoreError(w, err, "Blog post not found")
		return
	}

	comments, err := h.store.ListApprovedComments(r.Context(), post.ID)
	if err != nil {
		respondStoreError(w, err, "Blog post not found")
		return
	}

	respondJSON(w, http.StatusOK, struct {
		model.BlogPost
		Comments []model.Comment `json:"comments"`
	}{*post, comments})
}

// Page handlers

func (h *Handlers) GetPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.store.ListPages(r.Context())
	if err != nil {
		respondStoreError(w, err, "Page not found")
		return
	}
	respondJSON(w, http.StatusOK, pages)
}

func (h *Handlers) GetPage(w http.ResponseWriter, r *http.Request) {
	slug := extractPathParam(r.URL.Path, "/api/pages/")
	page, err := h.store.GetPageBySlug(r.Context(), slug)
	if err != nil {
		respondStoreError(w, err, "Page not found")
		return
	}
	respondJSON(w, http.StatusOK, page)
}

// Config handlers

func (h *Handlers) GetConfig(w http.ResponseWriter, r *http.Request) {
	config, err := h.store.GetConfig(r.Context())
	if err != nil {
		respondStoreError(w, err, "Configuration not found")
		return
	}
	respondJSON(w, http.StatusOK, config)
}

// UpdateConfig applies each submitted key independently and confirms
// every write before reporting success.
func (h *Handlers) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var updates map[string]string
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	for key, value := range updates {
		if err := h.store.SetConfigValue(r.Context(), key, value); err != nil {
			log.Printf("[API] Failed to update config key %q: %v", key, err)
			respondMessage(w, http.StatusInternalServerError, "Failed to update configuration")
			return
		}
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Configuration updated successfully"})
}

// Sync handler

func (h *Handlers) RefreshContent(w http.ResponseWriter, r *http.Request) {
	if err := h.refresher.Refresh(r.Context()); err != nil {
		if errors.Is(err, syncdata.ErrSheetNotConfigured) {
			respondMessage(w, http.StatusBadRequest, "Google Sheet ID not configured")
			return
		}
		log.Printf("[API] Sync failed: %v", err)
		respondMessage(w, http.StatusInternalServerError, "Failed to sync data from Google Sheets")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Data refreshed successfully from Google Sheets"})
}

// Helpers

func extractPathParam(path, prefix string) string {
	return strings.TrimPrefix(path, prefix)
}
