// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import "net/http"

// ListEvents handles GET /api/admin/events. Returns retained WARN+ events,
// newest first.
func (h *Handler) ListEvents(w http.ResponseWriter, _ *http.Request) {
	WriteData(w, h.store.RecentEvents())
}
