// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avertum/consite/internal/model"
	"github.com/avertum/consite/internal/store"
)

// testSetup creates a fresh store and API handler for testing.
func testSetup(t *testing.T) (*store.Store, *Handler) {
	t.Helper()
	s := store.New(store.DefaultEventCapacity)
	return s, NewHandler(s)
}

// requestWithURLParams adds chi URL parameters to a request.
func requestWithURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// newJSONRequest creates an HTTP request with a JSON body and optional URL params.
func newJSONRequest(t *testing.T, method, path, body string, params map[string]string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if len(params) > 0 {
		req = requestWithURLParams(req, params)
	}
	return req
}

// assertStatusCode checks that the response has the expected status code.
func assertStatusCode(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("expected status %d, got %d (body: %s)", expected, w.Code, w.Body.String())
	}
}

// decodeResponse unmarshals the response body into a Response envelope.
func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return resp
}

// decodeData re-marshals the envelope's data field into dst.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, dst any) Response {
	t.Helper()
	resp := decodeResponse(t, w)
	raw, err := json.Marshal(resp.Data)
	if err != nil {
		t.Fatalf("failed to re-marshal data: %v", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		t.Fatalf("failed to unmarshal data: %v", err)
	}
	return resp
}

// assertFieldError checks that a validation response names the given field.
func assertFieldError(t *testing.T, w *httptest.ResponseRecorder, field string) {
	t.Helper()
	resp := decodeResponse(t, w)
	if resp.Errors == nil {
		t.Fatalf("expected field errors, got none (body: %s)", w.Body.String())
	}
	if _, ok := resp.Errors[field]; !ok {
		t.Errorf("expected error for field %q, got %v", field, resp.Errors)
	}
}

// createTestResource stores a resource directly, bypassing the handler.
func createTestResource(t *testing.T, s *store.Store, title, slug, resType string, categories []string) model.Resource {
	t.Helper()
	res, err := s.CreateResource(store.NewResourceParams{
		Title:       title,
		Slug:        slug,
		Description: "test description",
		Content:     "test content",
		ImageURL:    "/images/test.jpg",
		Categories:  categories,
		Type:        resType,
		PublishedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("failed to create test resource: %v", err)
	}
	return res
}

// createTestIndustryPage stores an industry page directly.
func createTestIndustryPage(t *testing.T, s *store.Store, title, slug string, published bool) model.IndustryPage {
	t.Helper()
	page, err := s.CreateIndustryPage(store.NewIndustryPageParams{
		Title:       title,
		Slug:        slug,
		Headline:    "test headline",
		Description: "test description",
		ImageURL:    "/images/test.jpg",
		IsPublished: published,
	})
	if err != nil {
		t.Fatalf("failed to create test industry page: %v", err)
	}
	return page
}
