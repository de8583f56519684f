// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"time"

	"github.com/avertum/consite/internal/auth"
	"github.com/avertum/consite/internal/model"
)

// NewUserParams are the caller-supplied fields for creating a user.
type NewUserParams struct {
	Username string
	Password string
	IsAdmin  bool
}

// CreateUser stores a new user with a hashed password. Returns
// ErrDuplicateUsername if the username is taken.
func (s *Store) CreateUser(p NewUserParams) (model.User, error) {
	hash, err := auth.HashPassword(p.Password)
	if err != nil {
		return model.User{}, err
	}

	return s.users.create(
		func(existing model.User) error {
			if existing.Username == p.Username {
				return ErrDuplicateUsername
			}
			return nil
		},
		func(id int64) model.User {
			return model.User{
				ID:           id,
				Username:     p.Username,
				PasswordHash: hash,
				IsAdmin:      p.IsAdmin,
				CreatedAt:    time.Now(),
			}
		},
	)
}

// User returns the user with the given id.
func (s *Store) User(id int64) (model.User, bool) {
	return s.users.get(id)
}

// UserByUsername returns the first user with the given username.
func (s *Store) UserByUsername(username string) (model.User, bool) {
	return s.users.find(func(u model.User) bool { return u.Username == username })
}

// ListUsers returns all users in insertion order.
func (s *Store) ListUsers() []model.User {
	return s.users.list(nil)
}

// UpdateUser merges patch into the stored user. A supplied password is
// re-hashed. Returns false if the id is absent, ErrDuplicateUsername if the
// new username is taken by another user.
func (s *Store) UpdateUser(id int64, patch model.UserPatch) (model.User, bool, error) {
	var conflict func(model.User) error
	if patch.Username != nil {
		conflict = func(other model.User) error {
			if other.Username == *patch.Username {
				return ErrDuplicateUsername
			}
			return nil
		}
	}

	return s.users.update(id, conflict, func(u model.User) (model.User, error) {
		if patch.Username != nil {
			u.Username = *patch.Username
		}
		if patch.Password != nil {
			hash, err := auth.HashPassword(*patch.Password)
			if err != nil {
				return model.User{}, err
			}
			u.PasswordHash = hash
		}
		if patch.IsAdmin != nil {
			u.IsAdmin = *patch.IsAdmin
		}
		return u, nil
	})
}

// DeleteUser removes a user, reporting whether it existed.
func (s *Store) DeleteUser(id int64) bool {
	return s.users.delete(id)
}

// Authenticate verifies a username/password pair against the stored hash.
func (s *Store) Authenticate(username, password string) (model.User, bool) {
	u, ok := s.UserByUsername(username)
	if !ok {
		return model.User{}, false
	}
	match, err := auth.CheckPassword(password, u.PasswordHash)
	if err != nil || !match {
		return model.User{}, false
	}
	return u, true
}
