// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSON(w, http.StatusOK, map[string]string{"key": "value"})

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got %s", ct)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp["key"] != "value" {
		t.Errorf("expected key 'value', got %s", resp["key"])
	}
}

func TestWriteData(t *testing.T) {
	w := httptest.NewRecorder()

	WriteData(w, []string{"a", "b"})

	assertStatusCode(t, w, http.StatusOK)
	resp := decodeResponse(t, w)
	if resp.Data == nil {
		t.Fatal("expected data to be present")
	}
	if resp.Message != "" {
		t.Errorf("expected no message, got %q", resp.Message)
	}
}

func TestWriteValidationError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteValidationError(w, map[string]string{"email": "Email is required"})

	assertStatusCode(t, w, http.StatusBadRequest)
	resp := decodeResponse(t, w)
	if resp.Message != "Validation failed" {
		t.Errorf("expected message 'Validation failed', got %q", resp.Message)
	}
	if resp.Errors["email"] != "Email is required" {
		t.Errorf("expected email error, got %v", resp.Errors)
	}
}

func TestWriteNotFound(t *testing.T) {
	w := httptest.NewRecorder()

	WriteNotFound(w, "Resource not found")

	assertStatusCode(t, w, http.StatusNotFound)
	resp := decodeResponse(t, w)
	if resp.Message != "Resource not found" {
		t.Errorf("expected message 'Resource not found', got %q", resp.Message)
	}
}

func TestWriteInternalError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteInternalError(w)

	assertStatusCode(t, w, http.StatusInternalServerError)
	resp := decodeResponse(t, w)
	if resp.Message != "Internal server error" {
		t.Errorf("expected generic message, got %q", resp.Message)
	}
}

func TestParseBoolFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  *bool
	}{
		{name: "absent", query: "", want: nil},
		{name: "true", query: "?active=true", want: boolPtr(true)},
		{name: "false", query: "?active=false", want: boolPtr(false)},
		{name: "unparseable is treated as absent", query: "?active=banana", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/testimonials"+tt.query, nil)
			got := parseBoolFilter(req, "active")
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("got %v, want %v", *got, *tt.want)
			}
		})
	}
}

func boolPtr(v bool) *bool { return &v }
