package syncdata

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/example/sheets-commerce/internal/infrastructure/store"
)

// ErrSheetNotConfigured is returned when no sheet id has been set in the
// site configuration.
var ErrSheetNotConfigured = errors.New("google sheet id not configured")

// Refresher destructively replaces the catalog, blog, and page tables
// with the sample dataset. The operation is not idempotent beyond always
// ending in the same fixed state.
type Refresher struct {
	config  store.ConfigStore
	content store.ContentReplacer
	now     func() time.Time
}

func NewRefresher(config store.ConfigStore, content store.ContentReplacer) *Refresher {
	return &Refresher{
		config:  config,
		content: content,
		now:     time.Now,
	}
}

// Refresh checks that a sheet id is configured, then swaps in the sample
// content.
func (r *Refresher) Refresh(ctx context.Context) error {
	config, err := r.config.GetConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to read site config: %w", err)
	}
	if config["google_sheet_id"] == "" {
		return ErrSheetNotConfigured
	}

	now := r.now()
	if err := r.content.ReplaceContent(ctx, SampleProducts(now), SamplePosts(now), SamplePages(now)); err != nil {
		return fmt.Errorf("failed to replace content: %w", err)
	}

	log.Printf("[Sync] Content refreshed from sample dataset")
	return nil
}
