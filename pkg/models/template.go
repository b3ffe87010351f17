// Package models defines the core domain models for the workflow builder.
package models

import "time"

// Template represents a reusable workflow description presented in the gallery.
// Templates are immutable after catalog load; nothing outside the catalog
// mutates them.
type Template struct {
	ID          string    `json:"id"          validate:"required"`
	Title       string    `json:"title"       validate:"required"`
	Description string    `json:"description" validate:"required"`
	Category    string    `json:"category"    validate:"required"`
	IsPremium   bool      `json:"is_premium"`
	IsPopular   bool      `json:"is_popular"`
	CreatedAt   time.Time `json:"created_at"`
}

// SortMode selects the gallery ordering.
type SortMode string

const (
	SortModePopular SortMode = "popular" // Popular templates first, then by date
	SortModeRecent  SortMode = "recent"  // Most recent first, popularity ignored
)

// ValidSortMode reports whether mode is one of the supported gallery orderings.
func ValidSortMode(mode SortMode) bool {
	return mode == SortModePopular || mode == SortModeRecent
}
