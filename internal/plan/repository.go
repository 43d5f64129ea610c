// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cloud.google.com/go/civil"
	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/curioswitch/dietmate/internal/dietdb"
)

var (
	ErrEmptyUserID   = errors.New("plan: empty user ID")
	ErrInvalidDate   = errors.New("plan: invalid date")
	ErrMalformedWeek = errors.New("plan: malformed week")
)

type WarningKind int

const (
	// WarningNotFound means there is no plan for the date.
	WarningNotFound WarningKind = iota + 1
	// WarningNoWeeks means the plan for the date has no weeks.
	WarningNoWeeks
	// WarningFetchFailed means the store could not be read.
	WarningFetchFailed
)

// Warning is a non-fatal problem fetching a plan, shown to the user.
type Warning struct {
	Kind    WarningKind
	Message string
}

// Fetched is the result of Repository.Fetch. Weeks is empty whenever Warning
// is set.
type Fetched struct {
	Weeks   RawPlan
	Warning *Warning
}

// Fetcher fetches the raw plan of a user for a date.
type Fetcher interface {
	Fetch(ctx context.Context, userID string, date civil.Date) (Fetched, error)
}

func NewRepository(store *firestore.Client) *Repository {
	return &Repository{
		store: store,
	}
}

// Repository reads plans from diet_plans/{user}/plans/{date}/weeks.
type Repository struct {
	store *firestore.Client
}

// Fetch returns the weeks of the plan for the user and date. A missing plan
// and failures reading the store return no weeks with a Warning, not an error.
// An error is only returned for invalid arguments or stored weeks that cannot
// be decoded.
func (r *Repository) Fetch(ctx context.Context, userID string, date civil.Date) (Fetched, error) {
	if userID == "" {
		return Fetched{}, ErrEmptyUserID
	}
	if !date.IsValid() {
		return Fetched{}, fmt.Errorf("%w: %v", ErrInvalidDate, date)
	}
	dateID := date.String()

	planRef := r.store.Collection(dietdb.CollectionDietPlans).Doc(userID).Collection(dietdb.CollectionPlans).Doc(dateID)
	if _, err := planRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return warn(ctx, userID, WarningNotFound, fmt.Sprintf("No diet plan found for %s.", dateID)), nil
		}
		slog.ErrorContext(ctx, "plan: fetching plan", "error", err, "user", userID, "date", dateID)
		return warn(ctx, userID, WarningFetchFailed, fmt.Sprintf("Error fetching diet plans for %s.", dateID)), nil
	}

	iter := planRef.Collection(dietdb.CollectionWeeks).Documents(ctx)
	defer iter.Stop()

	var weeks RawPlan
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			slog.ErrorContext(ctx, "plan: fetching weeks", "error", err, "user", userID, "date", dateID)
			return warn(ctx, userID, WarningFetchFailed, fmt.Sprintf("Error fetching diet plans for %s.", dateID)), nil
		}

		var week dietdb.Week
		if err := doc.DataTo(&week); err != nil {
			return Fetched{}, fmt.Errorf("%w: decoding week %q of %s: %w", ErrMalformedWeek, doc.Ref.ID, dateID, err)
		}
		weeks = append(weeks, RawWeek{Label: doc.Ref.ID, Week: week})
	}

	if len(weeks) == 0 {
		return warn(ctx, userID, WarningNoWeeks, fmt.Sprintf("No weeks found for the selected date: %s.", dateID)), nil
	}
	return Fetched{Weeks: weeks}, nil
}

func warn(ctx context.Context, userID string, kind WarningKind, msg string) Fetched {
	slog.WarnContext(ctx, "plan: no plan to show", "reason", msg, "user", userID)
	return Fetched{
		Warning: &Warning{Kind: kind, Message: msg},
	}
}

// Load fetches the plan of the user for the date and transforms it for display.
// The warning, if any, should be shown alongside the view.
func Load(ctx context.Context, plans Fetcher, userID string, date civil.Date) (View, *Warning, error) {
	fetched, err := plans.Fetch(ctx, userID, date)
	if err != nil {
		return nil, nil, err
	}
	return Transform(fetched.Weeks), fetched.Warning, nil
}
