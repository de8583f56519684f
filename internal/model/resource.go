// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"slices"
	"time"
)

// Resource types.
const (
	ResourceTypeArticle    = "article"
	ResourceTypeWhitepaper = "whitepaper"
	ResourceTypeCaseStudy  = "case-study"
)

// IsValidResourceType reports whether t is one of the allowed resource types.
func IsValidResourceType(t string) bool {
	return t == ResourceTypeArticle || t == ResourceTypeWhitepaper || t == ResourceTypeCaseStudy
}

// Resource represents a published marketing resource: an article, a
// whitepaper or a case study.
type Resource struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"imageUrl"`
	Categories  []string  `json:"categories"`
	Type        string    `json:"type"`
	PublishedAt time.Time `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HasCategory reports whether the resource is tagged with the given category.
func (r Resource) HasCategory(category string) bool {
	return slices.Contains(r.Categories, category)
}

// ResourcePatch holds the updatable fields of a resource. Nil fields are
// left unchanged by the store.
type ResourcePatch struct {
	Title       *string
	Slug        *string
	Description *string
	Content     *string
	ImageURL    *string
	Categories  *[]string
	Type        *string
	PublishedAt *time.Time
}
