// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package auth

import (
	"context"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
)

// FirebaseUID returns the user ID of the Firebase ID token verified for the
// request, or an empty string if there is none.
func FirebaseUID(ctx context.Context) string {
	tok := firebaseauth.TokenFromContext(ctx)
	if tok == nil {
		return ""
	}
	return tok.UID
}
