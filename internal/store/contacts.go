// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/avertum/consite/internal/model"
)

// NewContactSubmissionParams are the caller-supplied fields of a contact
// form submission.
type NewContactSubmissionParams struct {
	Name    string
	Email   string
	Company string
	Message string
}

// CreateContactSubmission stores a new submission with status "new" and a
// generated reference code.
func (s *Store) CreateContactSubmission(p NewContactSubmissionParams) model.ContactSubmission {
	sub, _ := s.contacts.create(nil, func(id int64) model.ContactSubmission {
		return model.ContactSubmission{
			ID:        id,
			Reference: uuid.NewString(),
			Name:      p.Name,
			Email:     p.Email,
			Company:   p.Company,
			Message:   p.Message,
			Status:    model.ContactStatusNew,
			CreatedAt: time.Now(),
		}
	})
	return sub
}

// ContactSubmission returns the submission with the given id.
func (s *Store) ContactSubmission(id int64) (model.ContactSubmission, bool) {
	return s.contacts.get(id)
}

// ListContactSubmissions returns all submissions in insertion order.
func (s *Store) ListContactSubmissions() []model.ContactSubmission {
	return s.contacts.list(nil)
}

// UpdateContactStatus sets the status of a submission. Any non-empty string
// is accepted; no transition set is enforced. Returns false if the id is
// absent.
func (s *Store) UpdateContactStatus(id int64, status string) (model.ContactSubmission, bool) {
	sub, ok, _ := s.contacts.update(id, nil, func(c model.ContactSubmission) (model.ContactSubmission, error) {
		c.Status = status
		return c, nil
	})
	return sub, ok
}

// DeleteContactSubmission removes a submission, reporting whether it existed.
func (s *Store) DeleteContactSubmission(id int64) bool {
	return s.contacts.delete(id)
}
