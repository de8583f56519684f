// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"time"

	"github.com/avertum/consite/internal/model"
)

// NewTestimonialParams are the caller-supplied fields for creating a
// testimonial.
type NewTestimonialParams struct {
	Name        string
	Position    string
	Company     string
	Testimonial string
	Metric      string
	MetricTitle string
	ImageURL    string
	IsActive    bool
}

// TestimonialFilter narrows ListTestimonials. A nil Active matches
// everything.
type TestimonialFilter struct {
	Active *bool
}

// CreateTestimonial stores a new testimonial.
func (s *Store) CreateTestimonial(p NewTestimonialParams) model.Testimonial {
	t, _ := s.testimonials.create(nil, func(id int64) model.Testimonial {
		return model.Testimonial{
			ID:          id,
			Name:        p.Name,
			Position:    p.Position,
			Company:     p.Company,
			Testimonial: p.Testimonial,
			Metric:      p.Metric,
			MetricTitle: p.MetricTitle,
			ImageURL:    p.ImageURL,
			IsActive:    p.IsActive,
			CreatedAt:   time.Now(),
		}
	})
	return t
}

// Testimonial returns the testimonial with the given id.
func (s *Store) Testimonial(id int64) (model.Testimonial, bool) {
	return s.testimonials.get(id)
}

// ListTestimonials returns testimonials in insertion order, optionally
// narrowed by active state.
func (s *Store) ListTestimonials(f TestimonialFilter) []model.Testimonial {
	return s.testimonials.list(func(t model.Testimonial) bool {
		return f.Active == nil || t.IsActive == *f.Active
	})
}

// UpdateTestimonial merges patch into the stored testimonial. Returns false
// if the id is absent.
func (s *Store) UpdateTestimonial(id int64, patch model.TestimonialPatch) (model.Testimonial, bool) {
	t, ok, _ := s.testimonials.update(id, nil, func(t model.Testimonial) (model.Testimonial, error) {
		if patch.Name != nil {
			t.Name = *patch.Name
		}
		if patch.Position != nil {
			t.Position = *patch.Position
		}
		if patch.Company != nil {
			t.Company = *patch.Company
		}
		if patch.Testimonial != nil {
			t.Testimonial = *patch.Testimonial
		}
		if patch.Metric != nil {
			t.Metric = *patch.Metric
		}
		if patch.MetricTitle != nil {
			t.MetricTitle = *patch.MetricTitle
		}
		if patch.ImageURL != nil {
			t.ImageURL = *patch.ImageURL
		}
		if patch.IsActive != nil {
			t.IsActive = *patch.IsActive
		}
		return t, nil
	})
	return t, ok
}

// DeleteTestimonial removes a testimonial, reporting whether it existed.
func (s *Store) DeleteTestimonial(id int64) bool {
	return s.testimonials.delete(id)
}
