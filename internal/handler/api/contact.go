// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/avertum/consite/internal/store"
)

// ContactRequest represents the request body for a contact form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// UpdateContactStatusRequest represents the request body for a status update.
type UpdateContactStatusRequest struct {
	Status string `json:"status"`
}

// SubmitContact handles POST /api/contact
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !decodeBody(w, r, &req) {
		return
	}

	validationErrors := make(map[string]string)
	if req.Name == "" {
		validationErrors["name"] = "Name is required"
	}
	if req.Email == "" {
		validationErrors["email"] = "Email is required"
	}
	if req.Company == "" {
		validationErrors["company"] = "Company is required"
	}
	if req.Message == "" {
		validationErrors["message"] = "Message is required"
	}
	if len(validationErrors) > 0 {
		WriteValidationError(w, validationErrors)
		return
	}

	sub := h.store.CreateContactSubmission(store.NewContactSubmissionParams{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
	})

	WriteCreated(w, "Thank you for contacting us", sub)
}

// ListContactSubmissions handles GET /api/admin/contact-submissions
func (h *Handler) ListContactSubmissions(w http.ResponseWriter, _ *http.Request) {
	WriteData(w, h.store.ListContactSubmissions())
}

// UpdateContactStatus handles PATCH /api/admin/contact-submissions/{id}
func (h *Handler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid contact submission ID")
		return
	}

	var req UpdateContactStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Status == "" {
		WriteValidationError(w, map[string]string{"status": "Status is required"})
		return
	}

	sub, ok := h.store.UpdateContactStatus(id, req.Status)
	if !ok {
		WriteNotFound(w, "Contact submission not found")
		return
	}
	WriteData(w, sub)
}
