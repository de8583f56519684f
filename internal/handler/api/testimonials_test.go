// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avertum/consite/internal/model"
	"github.com/avertum/consite/internal/store"
)

func TestCreateTestimonial(t *testing.T) {
	t.Run("valid testimonial is listed as active", func(t *testing.T) {
		_, h := testSetup(t)

		body := `{"name":"Jane Doe","position":"CTO","company":"Acme","testimonial":"Great partner, saved us 40% on cloud costs.","isActive":true}`
		w := httptest.NewRecorder()
		h.CreateTestimonial(w, newJSONRequest(t, http.MethodPost, "/api/admin/testimonials", body, nil))

		assertStatusCode(t, w, http.StatusCreated)

		var created model.Testimonial
		decodeData(t, w, &created)
		if created.ID == 0 {
			t.Error("expected an assigned id")
		}
		if !created.IsActive {
			t.Error("expected active testimonial")
		}

		// Active filter includes it, inactive filter excludes it
		w = httptest.NewRecorder()
		h.ListTestimonials(w, httptest.NewRequest(http.MethodGet, "/api/testimonials?active=true", nil))
		var active []model.Testimonial
		decodeData(t, w, &active)
		if len(active) != 1 || active[0].ID != created.ID {
			t.Errorf("expected active list to include the testimonial, got %v", active)
		}

		w = httptest.NewRecorder()
		h.ListTestimonials(w, httptest.NewRequest(http.MethodGet, "/api/testimonials?active=false", nil))
		var inactive []model.Testimonial
		decodeData(t, w, &inactive)
		if len(inactive) != 0 {
			t.Errorf("expected inactive list to be empty, got %v", inactive)
		}
	})

	t.Run("isActive defaults to true", func(t *testing.T) {
		_, h := testSetup(t)

		body := `{"name":"Jane","position":"CTO","company":"Acme","testimonial":"Solid work."}`
		w := httptest.NewRecorder()
		h.CreateTestimonial(w, newJSONRequest(t, http.MethodPost, "/api/admin/testimonials", body, nil))

		assertStatusCode(t, w, http.StatusCreated)

		var created model.Testimonial
		decodeData(t, w, &created)
		if !created.IsActive {
			t.Error("expected isActive to default to true")
		}
	})

	t.Run("unparseable active filter is ignored", func(t *testing.T) {
		s, h := testSetup(t)
		s.CreateTestimonial(testimonialParams("Jane"))

		w := httptest.NewRecorder()
		h.ListTestimonials(w, httptest.NewRequest(http.MethodGet, "/api/testimonials?active=banana", nil))

		assertStatusCode(t, w, http.StatusOK)

		var all []model.Testimonial
		decodeData(t, w, &all)
		if len(all) != 1 {
			t.Errorf("expected the full list for an unparseable filter, got %d", len(all))
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		_, h := testSetup(t)

		w := httptest.NewRecorder()
		h.CreateTestimonial(w, newJSONRequest(t, http.MethodPost, "/api/admin/testimonials", `{"name":"Jane"}`, nil))

		assertStatusCode(t, w, http.StatusBadRequest)
		assertFieldError(t, w, "position")
		assertFieldError(t, w, "company")
		assertFieldError(t, w, "testimonial")
	})
}

func TestUpdateTestimonial(t *testing.T) {
	t.Run("deactivate", func(t *testing.T) {
		s, h := testSetup(t)
		s.CreateTestimonial(testimonialParams("Jane"))

		w := httptest.NewRecorder()
		req := newJSONRequest(t, http.MethodPatch, "/api/admin/testimonials/1",
			`{"isActive":false}`, map[string]string{"id": "1"})
		h.UpdateTestimonial(w, req)

		assertStatusCode(t, w, http.StatusOK)

		var updated model.Testimonial
		decodeData(t, w, &updated)
		if updated.IsActive {
			t.Error("expected testimonial to be inactive")
		}
		if updated.Name != "Jane" {
			t.Error("expected unpatched fields to be unchanged")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, h := testSetup(t)

		w := httptest.NewRecorder()
		req := newJSONRequest(t, http.MethodPatch, "/api/admin/testimonials/9999",
			`{"isActive":false}`, map[string]string{"id": "9999"})
		h.UpdateTestimonial(w, req)

		assertStatusCode(t, w, http.StatusNotFound)
	})
}

func TestDeleteTestimonial(t *testing.T) {
	s, h := testSetup(t)
	s.CreateTestimonial(testimonialParams("Jane"))

	w := httptest.NewRecorder()
	req := requestWithURLParams(
		httptest.NewRequest(http.MethodDelete, "/api/admin/testimonials/1", nil),
		map[string]string{"id": "1"})
	h.DeleteTestimonial(w, req)

	assertStatusCode(t, w, http.StatusOK)
	if _, ok := s.Testimonial(1); ok {
		t.Error("expected testimonial to be removed")
	}
}

func testimonialParams(name string) store.NewTestimonialParams {
	return store.NewTestimonialParams{
		Name:        name,
		Position:    "CTO",
		Company:     "Acme",
		Testimonial: "Great partner.",
		IsActive:    true,
	}
}
