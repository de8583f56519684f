// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Event levels
const (
	EventLevelWarning = "warning"
	EventLevelError   = "error"
)

// Event represents an entry in the in-memory event log. Events are produced
// by the logging handler for records at WARN level and above.
type Event struct {
	ID        int64     `json:"id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Metadata  string    `json:"metadata,omitempty"` // JSON string
	CreatedAt time.Time `json:"createdAt"`
}
