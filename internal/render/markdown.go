// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render converts resource markdown content to sanitized HTML for
// the public API.
package render

import (
	"bytes"
	"log/slog"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// htmlSanitizer strips unsafe markup from rendered content. UGCPolicy allows
// the tags expected in user-authored articles.
var htmlSanitizer = bluemonday.UGCPolicy()

// Markdown renders markdown content to sanitized HTML. On render failure it
// logs and returns an empty string rather than propagating the error; the
// raw content is still served alongside.
func Markdown(content string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		slog.Warn("failed to render markdown", "error", err)
		return ""
	}
	return htmlSanitizer.Sanitize(buf.String())
}
