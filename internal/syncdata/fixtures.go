// Package syncdata implements the catalog refresh. The refresh replaces
// the content tables with a fixed sample dataset; no external spreadsheet
// is fetched.
package syncdata

import (
	"time"

	"github.com/example/sheets-commerce/internal/model"
)

// SampleProducts returns the fixed product dataset loaded by a refresh.
func SampleProducts(now time.Time) []model.Product {
	return []model.Product{
		{
			ID:           "prod-1",
			Name:         "Premium Headphones",
			Description:  "High-quality wireless headphones with noise cancellation",
			Price:        299.99,
			Category:     "Electronics",
			Image:        "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
			Availability: model.AvailabilityInStock,
			Featured:     true,
			Rating:       4.8,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "prod-2",
			Name:         "Smart Watch",
			Description:  "Feature-rich smartwatch with health monitoring",
			Price:        199.99,
			Category:     "Electronics",
			Image:        "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400",
			Availability: model.AvailabilityInStock,
			Featured:     true,
			Rating:       4.6,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}

// SamplePosts returns the fixed blog dataset loaded by a refresh.
func SamplePosts(now time.Time) []model.BlogPost {
	publishedAt := now
	return []model.BlogPost{
		{
			ID:            "post-1",
			Title:         "Welcome to Our Blog",
			Slug:          "welcome-to-our-blog",
			Content:       "This is our first blog post. We're excited to share our journey with you!",
			Excerpt:       "Welcome to our new blog where we share insights and updates.",
			Author:        "Admin",
			FeaturedImage: "https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d?w=800",
			Tags:          "welcome,blog,announcement",
			PublishedAt:   &publishedAt,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
}

// SamplePages returns the fixed page dataset loaded by a refresh.
func SamplePages(now time.Time) []model.Page {
	return []model.Page{
		{
			ID:              "page-1",
			Title:           "About Us",
			Slug:            "about",
			Content:         "We are a modern e-commerce company powered by Google Sheets. Our mission is to provide quality products with exceptional service.",
			MetaDescription: "Learn more about our company and mission",
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              "page-2",
			Title:           "Contact",
			Slug:            "contact",
			Content:         "Get in touch with us! We'd love to hear from you.",
			MetaDescription: "Contact us for any questions or support",
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}
