// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avertum/consite/internal/model"
	"github.com/avertum/consite/internal/render"
	"github.com/avertum/consite/internal/store"
	"github.com/avertum/consite/internal/util"
)

// ResourceDetail is the single-resource response shape: the stored resource
// plus its content rendered to sanitized HTML.
type ResourceDetail struct {
	model.Resource
	ContentHTML string `json:"contentHtml,omitempty"`
}

// CreateResourceRequest represents the request body for creating a resource.
type CreateResourceRequest struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	ImageURL    string   `json:"imageUrl"`
	Categories  []string `json:"categories"`
	Type        string   `json:"type"`
	PublishedAt string   `json:"publishedAt"`
}

// UpdateResourceRequest represents the request body for a partial resource
// update. Absent fields are left unchanged.
type UpdateResourceRequest struct {
	Title       *string   `json:"title,omitempty"`
	Slug        *string   `json:"slug,omitempty"`
	Description *string   `json:"description,omitempty"`
	Content     *string   `json:"content,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Categories  *[]string `json:"categories,omitempty"`
	Type        *string   `json:"type,omitempty"`
	PublishedAt *string   `json:"publishedAt,omitempty"`
}

// ListResources handles GET /api/resources?type=&category=
// An unrecognized type is a filter matching nothing; listing always succeeds.
func (h *Handler) ListResources(w http.ResponseWriter, r *http.Request) {
	WriteData(w, h.store.ListResources(store.ResourceFilter{
		Type:     r.URL.Query().Get("type"),
		Category: r.URL.Query().Get("category"),
	}))
}

// GetResourceBySlug handles GET /api/resources/{slug}
func (h *Handler) GetResourceBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	res, ok := h.store.ResourceBySlug(slug)
	if !ok {
		WriteNotFound(w, "Resource not found")
		return
	}
	WriteData(w, ResourceDetail{
		Resource:    res,
		ContentHTML: render.Markdown(res.Content),
	})
}

// CreateResource handles POST /api/admin/resources
func (h *Handler) CreateResource(w http.ResponseWriter, r *http.Request) {
	var req CreateResourceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	validationErrors := make(map[string]string)
	if req.Title == "" {
		validationErrors["title"] = "Title is required"
	}
	if req.Description == "" {
		validationErrors["description"] = "Description is required"
	}
	if req.Content == "" {
		validationErrors["content"] = "Content is required"
	}
	if req.ImageURL == "" {
		validationErrors["imageUrl"] = "Image URL is required"
	}
	if len(req.Categories) == 0 {
		validationErrors["categories"] = "At least one category is required"
	}
	if !model.IsValidResourceType(req.Type) {
		validationErrors["type"] = "Type must be 'article', 'whitepaper' or 'case-study'"
	}

	// Derive the slug from the title when omitted
	if req.Slug == "" && req.Title != "" {
		req.Slug = util.Slugify(req.Title)
	}
	if !util.IsValidSlug(req.Slug) {
		validationErrors["slug"] = "Invalid slug format (use lowercase letters, numbers, and hyphens)"
	}

	publishedAt, err := time.Parse(time.RFC3339, req.PublishedAt)
	if err != nil {
		validationErrors["publishedAt"] = "Invalid date format. Use RFC3339 (e.g., 2024-01-01T00:00:00Z)"
	}

	if len(validationErrors) > 0 {
		WriteValidationError(w, validationErrors)
		return
	}

	res, err := h.store.CreateResource(store.NewResourceParams{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		Categories:  req.Categories,
		Type:        req.Type,
		PublishedAt: publishedAt,
	})
	if err != nil {
		writeResourceStoreError(w, err)
		return
	}
	WriteCreated(w, "", res)
}

// UpdateResource handles PATCH /api/admin/resources/{id}
func (h *Handler) UpdateResource(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid resource ID")
		return
	}

	var req UpdateResourceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	patch := model.ResourcePatch{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		Categories:  req.Categories,
		Type:        req.Type,
	}
	if req.Slug != nil && !util.IsValidSlug(*req.Slug) {
		WriteValidationError(w, map[string]string{"slug": "Invalid slug format (use lowercase letters, numbers, and hyphens)"})
		return
	}
	if req.PublishedAt != nil {
		t, parseErr := time.Parse(time.RFC3339, *req.PublishedAt)
		if parseErr != nil {
			WriteValidationError(w, map[string]string{"publishedAt": "Invalid date format. Use RFC3339"})
			return
		}
		patch.PublishedAt = &t
	}

	res, ok, err := h.store.UpdateResource(id, patch)
	if err != nil {
		writeResourceStoreError(w, err)
		return
	}
	if !ok {
		WriteNotFound(w, "Resource not found")
		return
	}
	WriteData(w, res)
}

// DeleteResource handles DELETE /api/admin/resources/{id}
func (h *Handler) DeleteResource(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid resource ID")
		return
	}
	if !h.store.DeleteResource(id) {
		WriteNotFound(w, "Resource not found")
		return
	}
	WriteMessage(w, http.StatusOK, "Resource deleted")
}

// writeResourceStoreError maps resource store errors onto the envelope.
func writeResourceStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrDuplicateSlug):
		WriteValidationError(w, map[string]string{"slug": "Slug already exists"})
	case errors.Is(err, store.ErrInvalidResourceType):
		WriteValidationError(w, map[string]string{"type": "Type must be 'article', 'whitepaper' or 'case-study'"})
	case errors.Is(err, store.ErrEmptyCategories):
		WriteValidationError(w, map[string]string{"categories": "At least one category is required"})
	default:
		WriteInternalError(w)
	}
}
