// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/avertum/consite/internal/model"
	"github.com/avertum/consite/internal/store"
)

// CreateTestimonialRequest represents the request body for creating a
// testimonial. IsActive defaults to true when omitted.
type CreateTestimonialRequest struct {
	Name        string `json:"name"`
	Position    string `json:"position"`
	Company     string `json:"company"`
	Testimonial string `json:"testimonial"`
	Metric      string `json:"metric,omitempty"`
	MetricTitle string `json:"metricTitle,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// UpdateTestimonialRequest represents the request body for a partial
// testimonial update. Absent fields are left unchanged.
type UpdateTestimonialRequest struct {
	Name        *string `json:"name,omitempty"`
	Position    *string `json:"position,omitempty"`
	Company     *string `json:"company,omitempty"`
	Testimonial *string `json:"testimonial,omitempty"`
	Metric      *string `json:"metric,omitempty"`
	MetricTitle *string `json:"metricTitle,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// ListTestimonials handles GET /api/testimonials?active=
func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	WriteData(w, h.store.ListTestimonials(store.TestimonialFilter{
		Active: parseBoolFilter(r, "active"),
	}))
}

// CreateTestimonial handles POST /api/admin/testimonials
func (h *Handler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req CreateTestimonialRequest
	if !decodeBody(w, r, &req) {
		return
	}

	validationErrors := make(map[string]string)
	if req.Name == "" {
		validationErrors["name"] = "Name is required"
	}
	if req.Position == "" {
		validationErrors["position"] = "Position is required"
	}
	if req.Company == "" {
		validationErrors["company"] = "Company is required"
	}
	if req.Testimonial == "" {
		validationErrors["testimonial"] = "Testimonial is required"
	}
	if len(validationErrors) > 0 {
		WriteValidationError(w, validationErrors)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	t := h.store.CreateTestimonial(store.NewTestimonialParams{
		Name:        req.Name,
		Position:    req.Position,
		Company:     req.Company,
		Testimonial: req.Testimonial,
		Metric:      req.Metric,
		MetricTitle: req.MetricTitle,
		ImageURL:    req.ImageURL,
		IsActive:    isActive,
	})
	WriteCreated(w, "", t)
}

// UpdateTestimonial handles PATCH /api/admin/testimonials/{id}
func (h *Handler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid testimonial ID")
		return
	}

	var req UpdateTestimonialRequest
	if !decodeBody(w, r, &req) {
		return
	}

	t, ok := h.store.UpdateTestimonial(id, model.TestimonialPatch{
		Name:        req.Name,
		Position:    req.Position,
		Company:     req.Company,
		Testimonial: req.Testimonial,
		Metric:      req.Metric,
		MetricTitle: req.MetricTitle,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	})
	if !ok {
		WriteNotFound(w, "Testimonial not found")
		return
	}
	WriteData(w, t)
}

// DeleteTestimonial handles DELETE /api/admin/testimonials/{id}
func (h *Handler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid testimonial ID")
		return
	}
	if !h.store.DeleteTestimonial(id) {
		WriteNotFound(w, "Testimonial not found")
		return
	}
	WriteMessage(w, http.StatusOK, "Testimonial deleted")
}
