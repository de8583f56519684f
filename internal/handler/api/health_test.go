// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealth(t *testing.T) {
	h := NewHealthHandler()

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var status HealthStatus
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if status.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", status.Status)
	}
}

func TestLivenessAndReadiness(t *testing.T) {
	h := NewHealthHandler()

	for _, tt := range []struct {
		name    string
		handler http.HandlerFunc
	}{
		{name: "liveness", handler: h.Liveness},
		{name: "readiness", handler: h.Readiness},
	} {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.handler(w, httptest.NewRequest(http.MethodGet, "/api/health/live", nil))

			if w.Code != http.StatusOK {
				t.Errorf("expected status 200, got %d", w.Code)
			}
		})
	}
}

func TestListEvents(t *testing.T) {
	s, h := testSetup(t)
	s.AppendEvent("warning", "something looked off", "")

	w := httptest.NewRecorder()
	h.ListEvents(w, httptest.NewRequest(http.MethodGet, "/api/admin/events", nil))

	assertStatusCode(t, w, http.StatusOK)
	resp := decodeResponse(t, w)
	if resp.Data == nil {
		t.Error("expected events in data")
	}
}
