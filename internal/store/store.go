// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store implements the in-memory entity store backing the API:
// five independently locked collections (users, contact submissions,
// resources, industry pages, testimonials) plus a bounded event log.
// Storage is volatile; a process restart discards all data.
package store

import (
	"errors"

	"github.com/avertum/consite/internal/model"
)

// Business-rule violations reported by store operations. Absence of a record
// is not an error; it is signaled by a false ok result.
var (
	ErrDuplicateSlug       = errors.New("slug already exists")
	ErrDuplicateUsername   = errors.New("username already exists")
	ErrInvalidResourceType = errors.New("invalid resource type")
	ErrEmptyCategories     = errors.New("categories must not be empty")
)

// DefaultEventCapacity is the event log size used when none is configured.
const DefaultEventCapacity = 500

// Store owns the five entity collections and the event log. A single Store
// is constructed at process start and passed to handlers; there is no
// ambient global state.
type Store struct {
	users        *collection[model.User]
	contacts     *collection[model.ContactSubmission]
	resources    *collection[model.Resource]
	industries   *collection[model.IndustryPage]
	testimonials *collection[model.Testimonial]
	events       *eventLog
}

// New creates an empty store. eventCapacity bounds the event log; values
// below 1 fall back to DefaultEventCapacity.
func New(eventCapacity int) *Store {
	if eventCapacity < 1 {
		eventCapacity = DefaultEventCapacity
	}
	return &Store{
		users:        newCollection[model.User](),
		contacts:     newCollection[model.ContactSubmission](),
		resources:    newCollection[model.Resource](),
		industries:   newCollection[model.IndustryPage](),
		testimonials: newCollection[model.Testimonial](),
		events:       newEventLog(eventCapacity),
	}
}
