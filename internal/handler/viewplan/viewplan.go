// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package viewplan

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"cloud.google.com/go/civil"

	"github.com/curioswitch/dietmate/internal/auth"
	"github.com/curioswitch/dietmate/internal/plan"
	"github.com/curioswitch/dietmate/internal/render"
)

const (
	// StatusLoggedIn is the status query parameter after logging in.
	StatusLoggedIn = "loggedin"
	// StatusLoggedOut is the status query parameter after logging out.
	StatusLoggedOut = "loggedout"
)

func NewHandler(plans plan.Fetcher, sessions *auth.Sessions, loc *time.Location, animationURL string) *Handler {
	return &Handler{
		plans:        plans,
		sessions:     sessions,
		loc:          loc,
		animationURL: animationURL,
		now:          time.Now,
	}
}

// Handler serves the diet plan page of the logged in user, or the login form.
type Handler struct {
	plans        plan.Fetcher
	sessions     *auth.Sessions
	loc          *time.Location
	animationURL string
	now          func() time.Time
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := render.Page{
		AnimationURL: h.animationURL,
	}

	session, err := h.sessions.Get(r)
	if err != nil {
		if !errors.Is(err, auth.ErrNoSession) {
			slog.InfoContext(ctx, "viewplan: dropping invalid session", "error", err)
			h.sessions.End(w)
		}
		if r.URL.Query().Get("status") == StatusLoggedOut {
			page.Notice = "You have been logged out!"
		}
		WritePage(w, r, http.StatusOK, page)
		return
	}

	page.Email = session.Email
	if r.URL.Query().Get("status") == StatusLoggedIn {
		page.Notice = "Logged in as " + session.Email
	}

	page.Date = civil.DateOf(h.now().In(h.loc))
	if d := r.URL.Query().Get("date"); d != "" {
		date, err := civil.ParseDate(d)
		if err != nil {
			page.Warnings = append(page.Warnings, fmt.Sprintf("Invalid date %q, showing %s instead.", d, page.Date))
		} else {
			page.Date = date
		}
	}
	page.Week = r.URL.Query().Get("week")

	view, warning, err := plan.Load(ctx, h.plans, session.UserID, page.Date)
	if err != nil {
		slog.ErrorContext(ctx, "viewplan: loading plan", "error", err, "user", session.UserID)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if warning != nil {
		page.Warnings = append(page.Warnings, warning.Message)
	}
	page.View = view

	WritePage(w, r, http.StatusOK, page)
}

// WritePage renders the page with the status code.
func WritePage(w http.ResponseWriter, r *http.Request, code int, page render.Page) {
	var buf bytes.Buffer
	if err := render.HTML(&buf, page); err != nil {
		slog.ErrorContext(r.Context(), "viewplan: rendering page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}
