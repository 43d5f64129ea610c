// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package getplan

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"

	"github.com/curioswitch/dietmate/internal/auth"
	"github.com/curioswitch/dietmate/internal/plan"
)

func NewHandler(plans plan.Fetcher) *Handler {
	return &Handler{
		plans:  plans,
		userID: auth.FirebaseUID,
	}
}

// Handler returns the plan of the user authenticated by a Firebase ID token as
// JSON. The date is the URL parameter "date".
type Handler struct {
	plans  plan.Fetcher
	userID func(ctx context.Context) string
}

// Response is the JSON body returned by Handler. Exactly one of Message and
// Weeks is set.
type Response struct {
	Date    string      `json:"date"`
	Warning string      `json:"warning,omitempty"`
	Message string      `json:"message,omitempty"`
	Weeks   []plan.Week `json:"weeks,omitempty"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := h.userID(ctx)
	if userID == "" {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	date, err := civil.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	view, warning, err := plan.Load(ctx, h.plans, userID, date)
	if err != nil {
		slog.ErrorContext(ctx, "getplan: loading plan", "error", err, "user", userID)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	res := Response{Date: date.String()}
	if warning != nil {
		res.Warning = warning.Message
	}
	switch v := view.(type) {
	case *plan.NoData:
		res.Message = v.Message
	case *plan.Plan:
		res.Weeks = v.Weeks
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		slog.ErrorContext(ctx, "getplan: writing response", "error", err)
	}
}
