// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"sync"
	"time"

	"github.com/avertum/consite/internal/model"
)

// eventLog is a bounded in-memory ring of events. When full, appending
// evicts the oldest entry.
type eventLog struct {
	mu       sync.RWMutex
	nextID   int64
	capacity int
	entries  []model.Event
}

func newEventLog(capacity int) *eventLog {
	return &eventLog{nextID: 1, capacity: capacity}
}

func (l *eventLog) append(level, message, metadata string) model.Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	ev := model.Event{
		ID:        l.nextID,
		Level:     level,
		Message:   message,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	}
	l.nextID++

	l.entries = append(l.entries, ev)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
	return ev
}

func (l *eventLog) recent() []model.Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Event, len(l.entries))
	for i, ev := range l.entries {
		out[len(l.entries)-1-i] = ev
	}
	return out
}

// AppendEvent records an event in the bounded event log.
func (s *Store) AppendEvent(level, message, metadata string) model.Event {
	return s.events.append(level, message, metadata)
}

// RecentEvents returns retained events, newest first.
func (s *Store) RecentEvents() []model.Event {
	return s.events.recent()
}
