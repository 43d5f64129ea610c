// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package animation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/curioswitch/dietmate/internal/file"
)

type opener interface {
	Open(ctx context.Context, path string) (io.ReadCloser, string, error)
}

func NewHandler(files opener, path string) *Handler {
	return &Handler{
		files: files,
		path:  path,
	}
}

// Handler serves the Lottie animation shown in the page header.
type Handler struct {
	files opener
	path  string
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rc, contentType, err := h.files.Open(ctx, h.path)
	if errors.Is(err, file.ErrNotExist) {
		slog.WarnContext(ctx, "animation: animation missing", "path", h.path)
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "animation: opening animation", "error", err)
		http.Error(w, "animation unavailable", http.StatusBadGateway)
		return
	}
	defer func() {
		_ = rc.Close()
	}()

	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := io.Copy(w, rc); err != nil {
		slog.ErrorContext(ctx, "animation: writing animation", "error", err)
	}
}
