// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
)

var (
	ErrEmptyEmail   = errors.New("auth: email is required")
	ErrUserNotFound = errors.New("auth: no user with that email")
)

// UserLookup finds Firebase users, implemented by *auth.Client.
type UserLookup interface {
	GetUserByEmail(ctx context.Context, email string) (*fbauth.UserRecord, error)
}

// LookupUser returns the user ID registered for the email.
func LookupUser(ctx context.Context, users UserLookup, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmptyEmail
	}

	user, err := users.GetUserByEmail(ctx, email)
	if err != nil {
		if fbauth.IsUserNotFound(err) {
			return "", fmt.Errorf("%w: %s", ErrUserNotFound, email)
		}
		return "", fmt.Errorf("auth: looking up user: %w", err)
	}
	return user.UID, nil
}
