// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"
	"time"
)

// IndustryPage represents a per-industry landing page. Content is an opaque
// structured payload assembled by the editing tooling; the store does not
// interpret it.
type IndustryPage struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Headline    string          `json:"headline"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
	Content     json.RawMessage `json:"content,omitempty"`
	IsPublished bool            `json:"isPublished"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// IndustryPagePatch holds the updatable fields of an industry page. Nil
// fields are left unchanged by the store; a non-nil Content pointing at an
// empty payload clears the stored content.
type IndustryPagePatch struct {
	Title       *string
	Slug        *string
	Headline    *string
	Description *string
	ImageURL    *string
	Content     *json.RawMessage
	IsPublished *bool
}
