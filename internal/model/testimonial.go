// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Testimonial represents a client quote shown on the marketing site.
// Metric and MetricTitle carry an optional headline figure such as
// "37%" / "reduction in cloud spend".
type Testimonial struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Position    string    `json:"position"`
	Company     string    `json:"company"`
	Testimonial string    `json:"testimonial"`
	Metric      string    `json:"metric,omitempty"`
	MetricTitle string    `json:"metricTitle,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TestimonialPatch holds the updatable fields of a testimonial. Nil fields
// are left unchanged by the store.
type TestimonialPatch struct {
	Name        *string
	Position    *string
	Company     *string
	Testimonial *string
	Metric      *string
	MetricTitle *string
	ImageURL    *string
	IsActive    *bool
}
