// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package login

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/curioswitch/dietmate/internal/auth"
	"github.com/curioswitch/dietmate/internal/handler/viewplan"
	"github.com/curioswitch/dietmate/internal/render"
)

func NewHandler(users auth.UserLookup, sessions *auth.Sessions, animationURL string) *Handler {
	return &Handler{
		users:        users,
		sessions:     sessions,
		animationURL: animationURL,
		origin:       http.NewCrossOriginProtection(),
	}
}

// Handler logs in the user with the email posted in the login form.
type Handler struct {
	users        auth.UserLookup
	sessions     *auth.Sessions
	animationURL string
	origin       *http.CrossOriginProtection
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.origin.Check(r); err != nil {
		slog.WarnContext(ctx, "login: rejecting cross-origin login", "error", err, "origin", r.Header.Get("Origin"))
		http.Error(w, "cross-origin request rejected", http.StatusForbidden)
		return
	}

	email := strings.TrimSpace(r.PostFormValue("email"))

	userID, err := auth.LookupUser(ctx, h.users, email)
	if err != nil {
		page := render.Page{AnimationURL: h.animationURL}
		code := http.StatusUnauthorized
		switch {
		case errors.Is(err, auth.ErrEmptyEmail):
			page.LoginError = "email is required"
		case errors.Is(err, auth.ErrUserNotFound):
			page.LoginError = "no user with email " + email
		default:
			slog.ErrorContext(ctx, "login: looking up user", "error", err)
			page.LoginError = "could not look up the user, please try again"
			code = http.StatusServiceUnavailable
		}
		viewplan.WritePage(w, r, code, page)
		return
	}

	if err := h.sessions.Start(w, userID, email); err != nil {
		slog.ErrorContext(ctx, "login: starting session", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/?status="+viewplan.StatusLoggedIn, http.StatusSeeOther)
}
