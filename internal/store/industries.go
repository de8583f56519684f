// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/avertum/consite/internal/model"
)

// NewIndustryPageParams are the caller-supplied fields for creating an
// industry page.
type NewIndustryPageParams struct {
	Title       string
	Slug        string
	Headline    string
	Description string
	ImageURL    string
	Content     json.RawMessage
	IsPublished bool
}

// IndustryPageFilter narrows ListIndustryPages. A nil Published matches
// everything.
type IndustryPageFilter struct {
	Published *bool
}

// CreateIndustryPage stores a new industry page. Returns ErrDuplicateSlug
// if the slug is taken.
func (s *Store) CreateIndustryPage(p NewIndustryPageParams) (model.IndustryPage, error) {
	return s.industries.create(
		func(existing model.IndustryPage) error {
			if existing.Slug == p.Slug {
				return ErrDuplicateSlug
			}
			return nil
		},
		func(id int64) model.IndustryPage {
			now := time.Now()
			return model.IndustryPage{
				ID:          id,
				Title:       p.Title,
				Slug:        p.Slug,
				Headline:    p.Headline,
				Description: p.Description,
				ImageURL:    p.ImageURL,
				Content:     slices.Clone(p.Content),
				IsPublished: p.IsPublished,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
		},
	)
}

// IndustryPage returns the page with the given id.
func (s *Store) IndustryPage(id int64) (model.IndustryPage, bool) {
	return s.industries.get(id)
}

// IndustryPageBySlug returns the first page with the given slug.
func (s *Store) IndustryPageBySlug(slug string) (model.IndustryPage, bool) {
	return s.industries.find(func(p model.IndustryPage) bool { return p.Slug == slug })
}

// ListIndustryPages returns pages in insertion order, optionally narrowed
// by published state.
func (s *Store) ListIndustryPages(f IndustryPageFilter) []model.IndustryPage {
	return s.industries.list(func(p model.IndustryPage) bool {
		return f.Published == nil || p.IsPublished == *f.Published
	})
}

// UpdateIndustryPage merges patch into the stored page and refreshes
// UpdatedAt. A patched slug is checked for uniqueness. Returns false if the
// id is absent.
func (s *Store) UpdateIndustryPage(id int64, patch model.IndustryPagePatch) (model.IndustryPage, bool, error) {
	var conflict func(model.IndustryPage) error
	if patch.Slug != nil {
		conflict = func(other model.IndustryPage) error {
			if other.Slug == *patch.Slug {
				return ErrDuplicateSlug
			}
			return nil
		}
	}

	return s.industries.update(id, conflict, func(p model.IndustryPage) (model.IndustryPage, error) {
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Slug != nil {
			p.Slug = *patch.Slug
		}
		if patch.Headline != nil {
			p.Headline = *patch.Headline
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.ImageURL != nil {
			p.ImageURL = *patch.ImageURL
		}
		if patch.Content != nil {
			p.Content = slices.Clone(*patch.Content)
		}
		if patch.IsPublished != nil {
			p.IsPublished = *patch.IsPublished
		}
		p.UpdatedAt = time.Now()
		return p, nil
	})
}

// DeleteIndustryPage removes a page, reporting whether it existed.
func (s *Store) DeleteIndustryPage(id int64) bool {
	return s.industries.delete(id)
}
