// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avertum/consite/internal/model"
	"github.com/avertum/consite/internal/store"
	"github.com/avertum/consite/internal/util"
)

// CreateIndustryPageRequest represents the request body for creating an
// industry page.
type CreateIndustryPageRequest struct {
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Headline    string          `json:"headline"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
	Content     json.RawMessage `json:"content,omitempty"`
	IsPublished *bool           `json:"isPublished,omitempty"`
}

// UpdateIndustryPageRequest represents the request body for a partial
// industry page update. Absent fields are left unchanged.
type UpdateIndustryPageRequest struct {
	Title       *string         `json:"title,omitempty"`
	Slug        *string         `json:"slug,omitempty"`
	Headline    *string         `json:"headline,omitempty"`
	Description *string         `json:"description,omitempty"`
	ImageURL    *string         `json:"imageUrl,omitempty"`
	Content     json.RawMessage `json:"content,omitempty"`
	IsPublished *bool           `json:"isPublished,omitempty"`
}

// ListIndustryPages handles GET /api/industry-pages?published=
func (h *Handler) ListIndustryPages(w http.ResponseWriter, r *http.Request) {
	WriteData(w, h.store.ListIndustryPages(store.IndustryPageFilter{
		Published: parseBoolFilter(r, "published"),
	}))
}

// GetIndustryPageBySlug handles GET /api/industry-pages/{slug}
func (h *Handler) GetIndustryPageBySlug(w http.ResponseWriter, r *http.Request) {
	page, ok := h.store.IndustryPageBySlug(chi.URLParam(r, "slug"))
	if !ok {
		WriteNotFound(w, "Industry page not found")
		return
	}
	WriteData(w, page)
}

// CreateIndustryPage handles POST /api/admin/industry-pages
func (h *Handler) CreateIndustryPage(w http.ResponseWriter, r *http.Request) {
	var req CreateIndustryPageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	validationErrors := make(map[string]string)
	if req.Title == "" {
		validationErrors["title"] = "Title is required"
	}
	if req.Headline == "" {
		validationErrors["headline"] = "Headline is required"
	}
	if req.Description == "" {
		validationErrors["description"] = "Description is required"
	}
	if req.ImageURL == "" {
		validationErrors["imageUrl"] = "Image URL is required"
	}

	if req.Slug == "" && req.Title != "" {
		req.Slug = util.Slugify(req.Title)
	}
	if !util.IsValidSlug(req.Slug) {
		validationErrors["slug"] = "Invalid slug format (use lowercase letters, numbers, and hyphens)"
	}

	if len(validationErrors) > 0 {
		WriteValidationError(w, validationErrors)
		return
	}

	isPublished := false
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	content := req.Content
	if isJSONNull(content) {
		content = nil
	}

	page, err := h.store.CreateIndustryPage(store.NewIndustryPageParams{
		Title:       req.Title,
		Slug:        req.Slug,
		Headline:    req.Headline,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Content:     content,
		IsPublished: isPublished,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateSlug) {
			WriteValidationError(w, map[string]string{"slug": "Slug already exists"})
			return
		}
		WriteInternalError(w)
		return
	}
	WriteCreated(w, "", page)
}

// UpdateIndustryPage handles PATCH /api/admin/industry-pages/{id}
func (h *Handler) UpdateIndustryPage(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid industry page ID")
		return
	}

	var req UpdateIndustryPageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Slug != nil && !util.IsValidSlug(*req.Slug) {
		WriteValidationError(w, map[string]string{"slug": "Invalid slug format (use lowercase letters, numbers, and hyphens)"})
		return
	}

	// An absent content field leaves the stored payload unchanged; an
	// explicit null clears it.
	var content *json.RawMessage
	if req.Content != nil {
		c := req.Content
		if isJSONNull(c) {
			c = nil
		}
		content = &c
	}

	page, ok, err := h.store.UpdateIndustryPage(id, model.IndustryPagePatch{
		Title:       req.Title,
		Slug:        req.Slug,
		Headline:    req.Headline,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Content:     content,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateSlug) {
			WriteValidationError(w, map[string]string{"slug": "Slug already exists"})
			return
		}
		WriteInternalError(w)
		return
	}
	if !ok {
		WriteNotFound(w, "Industry page not found")
		return
	}
	WriteData(w, page)
}

// isJSONNull reports whether raw is the JSON null token. encoding/json keeps
// an explicit null as a non-nil RawMessage, so it has to be told apart from
// an absent field by inspecting the token.
func isJSONNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// DeleteIndustryPage handles DELETE /api/admin/industry-pages/{id}
func (h *Handler) DeleteIndustryPage(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid industry page ID")
		return
	}
	if !h.store.DeleteIndustryPage(id) {
		WriteNotFound(w, "Industry page not found")
		return
	}
	WriteMessage(w, http.StatusOK, "Industry page deleted")
}
