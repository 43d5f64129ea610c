// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package logout

import (
	"log/slog"
	"net/http"

	"github.com/curioswitch/dietmate/internal/auth"
	"github.com/curioswitch/dietmate/internal/handler/viewplan"
)

func NewHandler(sessions *auth.Sessions) *Handler {
	return &Handler{
		sessions: sessions,
		origin:   http.NewCrossOriginProtection(),
	}
}

type Handler struct {
	sessions *auth.Sessions
	origin   *http.CrossOriginProtection
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.origin.Check(r); err != nil {
		slog.WarnContext(r.Context(), "logout: rejecting cross-origin logout", "error", err)
		http.Error(w, "cross-origin request rejected", http.StatusForbidden)
		return
	}

	h.sessions.End(w)
	http.Redirect(w, r, "/?status="+viewplan.StatusLoggedOut, http.StatusSeeOther)
}
