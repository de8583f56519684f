// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the domain entities managed by the content store:
// users, contact submissions, resources, industry pages and testimonials.
package model

import "time"

// User represents an internal account. Users are not exposed over the API.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserPatch holds the updatable fields of a user. Nil fields are left
// unchanged by the store.
type UserPatch struct {
	Username *string
	Password *string
	IsAdmin  *bool
}
