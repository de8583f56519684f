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

func TestSubmitContact(t *testing.T) {
	t.Run("valid submission", func(t *testing.T) {
		_, h := testSetup(t)

		body := `{"name":"Jane Doe","email":"jane@acme.example","company":"Acme","message":"We need help with a migration."}`
		w := httptest.NewRecorder()
		h.SubmitContact(w, newJSONRequest(t, http.MethodPost, "/api/contact", body, nil))

		assertStatusCode(t, w, http.StatusCreated)

		var sub model.ContactSubmission
		resp := decodeData(t, w, &sub)
		if resp.Message == "" {
			t.Error("expected a confirmation message")
		}
		if sub.ID == 0 {
			t.Error("expected an assigned id")
		}
		if sub.Status != model.ContactStatusNew {
			t.Errorf("expected status %q, got %q", model.ContactStatusNew, sub.Status)
		}
		if sub.Reference == "" {
			t.Error("expected a reference code")
		}
	})

	t.Run("missing email leaves store unchanged", func(t *testing.T) {
		s, h := testSetup(t)

		body := `{"name":"Jane Doe","company":"Acme","message":"Hello"}`
		w := httptest.NewRecorder()
		h.SubmitContact(w, newJSONRequest(t, http.MethodPost, "/api/contact", body, nil))

		assertStatusCode(t, w, http.StatusBadRequest)
		assertFieldError(t, w, "email")

		if n := len(s.ListContactSubmissions()); n != 0 {
			t.Errorf("expected no submissions stored, got %d", n)
		}
	})

	t.Run("invalid JSON body", func(t *testing.T) {
		_, h := testSetup(t)

		w := httptest.NewRecorder()
		h.SubmitContact(w, newJSONRequest(t, http.MethodPost, "/api/contact", `{not json`, nil))

		assertStatusCode(t, w, http.StatusBadRequest)
	})
}

func TestListContactSubmissions(t *testing.T) {
	s, h := testSetup(t)

	s.CreateContactSubmission(contactParams("One"))
	s.CreateContactSubmission(contactParams("Two"))

	w := httptest.NewRecorder()
	h.ListContactSubmissions(w, httptest.NewRequest(http.MethodGet, "/api/admin/contact-submissions", nil))

	assertStatusCode(t, w, http.StatusOK)

	var subs []model.ContactSubmission
	decodeData(t, w, &subs)
	if len(subs) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(subs))
	}
	if subs[0].Name != "One" || subs[1].Name != "Two" {
		t.Errorf("expected insertion order, got %q then %q", subs[0].Name, subs[1].Name)
	}
}

func TestUpdateContactStatus(t *testing.T) {
	t.Run("transitions to caller-supplied status", func(t *testing.T) {
		s, h := testSetup(t)
		created := s.CreateContactSubmission(contactParams("Jane"))

		w := httptest.NewRecorder()
		req := newJSONRequest(t, http.MethodPatch, "/api/admin/contact-submissions/1",
			`{"status":"contacted"}`, map[string]string{"id": "1"})
		h.UpdateContactStatus(w, req)

		assertStatusCode(t, w, http.StatusOK)

		var sub model.ContactSubmission
		decodeData(t, w, &sub)
		if sub.Status != "contacted" {
			t.Errorf("expected status 'contacted', got %q", sub.Status)
		}
		if sub.ID != created.ID {
			t.Errorf("expected id %d, got %d", created.ID, sub.ID)
		}
		if !sub.CreatedAt.Equal(created.CreatedAt) {
			t.Error("expected createdAt to be unchanged")
		}
	})

	t.Run("missing status", func(t *testing.T) {
		s, h := testSetup(t)
		s.CreateContactSubmission(contactParams("Jane"))

		w := httptest.NewRecorder()
		req := newJSONRequest(t, http.MethodPatch, "/api/admin/contact-submissions/1",
			`{}`, map[string]string{"id": "1"})
		h.UpdateContactStatus(w, req)

		assertStatusCode(t, w, http.StatusBadRequest)
		assertFieldError(t, w, "status")
	})

	t.Run("unknown id", func(t *testing.T) {
		_, h := testSetup(t)

		w := httptest.NewRecorder()
		req := newJSONRequest(t, http.MethodPatch, "/api/admin/contact-submissions/9999",
			`{"status":"contacted"}`, map[string]string{"id": "9999"})
		h.UpdateContactStatus(w, req)

		assertStatusCode(t, w, http.StatusNotFound)
	})
}

func contactParams(name string) store.NewContactSubmissionParams {
	return store.NewContactSubmissionParams{
		Name:    name,
		Email:   "test@example.com",
		Company: "Acme",
		Message: "Hello",
	}
}
