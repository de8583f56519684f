// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"slices"
	"time"

	"github.com/avertum/consite/internal/model"
)

// NewResourceParams are the caller-supplied fields for creating a resource.
type NewResourceParams struct {
	Title       string
	Slug        string
	Description string
	Content     string
	ImageURL    string
	Categories  []string
	Type        string
	PublishedAt time.Time
}

// ResourceFilter narrows ListResources. Zero values match everything.
type ResourceFilter struct {
	Type     string
	Category string
}

// CreateResource stores a new resource. Returns ErrInvalidResourceType,
// ErrEmptyCategories or ErrDuplicateSlug on business-rule violations.
func (s *Store) CreateResource(p NewResourceParams) (model.Resource, error) {
	if !model.IsValidResourceType(p.Type) {
		return model.Resource{}, ErrInvalidResourceType
	}
	if len(p.Categories) == 0 {
		return model.Resource{}, ErrEmptyCategories
	}

	return s.resources.create(
		func(existing model.Resource) error {
			if existing.Slug == p.Slug {
				return ErrDuplicateSlug
			}
			return nil
		},
		func(id int64) model.Resource {
			now := time.Now()
			return model.Resource{
				ID:          id,
				Title:       p.Title,
				Slug:        p.Slug,
				Description: p.Description,
				Content:     p.Content,
				ImageURL:    p.ImageURL,
				Categories:  slices.Clone(p.Categories),
				Type:        p.Type,
				PublishedAt: p.PublishedAt,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
		},
	)
}

// Resource returns the resource with the given id.
func (s *Store) Resource(id int64) (model.Resource, bool) {
	return s.resources.get(id)
}

// ResourceBySlug returns the first resource with the given slug.
func (s *Store) ResourceBySlug(slug string) (model.Resource, bool) {
	return s.resources.find(func(r model.Resource) bool { return r.Slug == slug })
}

// ListResources returns resources in insertion order, narrowed by the
// filter: exact type match and category containment.
func (s *Store) ListResources(f ResourceFilter) []model.Resource {
	return s.resources.list(func(r model.Resource) bool {
		if f.Type != "" && r.Type != f.Type {
			return false
		}
		if f.Category != "" && !r.HasCategory(f.Category) {
			return false
		}
		return true
	})
}

// UpdateResource merges patch into the stored resource and refreshes
// UpdatedAt. Patched type, categories and slug are re-validated against the
// same rules as create. Returns false if the id is absent; absence takes
// precedence over patch validation.
func (s *Store) UpdateResource(id int64, patch model.ResourcePatch) (model.Resource, bool, error) {
	var conflict func(model.Resource) error
	if patch.Slug != nil {
		conflict = func(other model.Resource) error {
			if other.Slug == *patch.Slug {
				return ErrDuplicateSlug
			}
			return nil
		}
	}

	return s.resources.update(id, conflict, func(r model.Resource) (model.Resource, error) {
		if patch.Type != nil && !model.IsValidResourceType(*patch.Type) {
			return model.Resource{}, ErrInvalidResourceType
		}
		if patch.Categories != nil && len(*patch.Categories) == 0 {
			return model.Resource{}, ErrEmptyCategories
		}
		if patch.Title != nil {
			r.Title = *patch.Title
		}
		if patch.Slug != nil {
			r.Slug = *patch.Slug
		}
		if patch.Description != nil {
			r.Description = *patch.Description
		}
		if patch.Content != nil {
			r.Content = *patch.Content
		}
		if patch.ImageURL != nil {
			r.ImageURL = *patch.ImageURL
		}
		if patch.Categories != nil {
			r.Categories = slices.Clone(*patch.Categories)
		}
		if patch.Type != nil {
			r.Type = *patch.Type
		}
		if patch.PublishedAt != nil {
			r.PublishedAt = *patch.PublishedAt
		}
		r.UpdatedAt = time.Now()
		return r, nil
	})
}

// DeleteResource removes a resource, reporting whether it existed.
func (s *Store) DeleteResource(id int64) bool {
	return s.resources.delete(id)
}
