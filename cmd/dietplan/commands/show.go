// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	firebase "firebase.google.com/go/v4"
	"github.com/spf13/cobra"

	"github.com/curioswitch/dietmate/internal/auth"
	"github.com/curioswitch/dietmate/internal/plan"
	"github.com/curioswitch/dietmate/internal/render"
)

type planClients struct {
	users auth.UserLookup
	plans plan.Fetcher
	close func() error
}

type connectPlansFunc func(ctx context.Context, project string) (*planClients, error)

func connectFirebase(ctx context.Context, project string) (*planClients, error) {
	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: project})
	if err != nil {
		return nil, fmt.Errorf("dietplan: create firebase app: %w", err)
	}

	fbAuth, err := fbApp.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("dietplan: create firebase auth client: %w", err)
	}

	firestore, err := fbApp.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("dietplan: create firestore client: %w", err)
	}

	return &planClients{
		users: fbAuth,
		plans: plan.NewRepository(firestore),
		close: firestore.Close,
	}, nil
}

type showOptions struct {
	project  string
	email    string
	user     string
	date     string
	week     string
	timezone string
}

func newShowCmd(deps dependencies) *cobra.Command {
	var o showOptions

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the diet plan of a user for a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := o.planDate(deps.now())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			clients, err := deps.connectPlans(ctx, o.project)
			if err != nil {
				return err
			}
			defer func() {
				if err := clients.close(); err != nil {
					slog.ErrorContext(ctx, "dietplan: close clients", "error", err)
				}
			}()

			return o.run(ctx, cmd.OutOrStdout(), clients, date)
		},
	}

	cmd.Flags().StringVar(&o.project, "project", "", "Google Cloud project of the Firebase app")
	cmd.Flags().StringVar(&o.email, "email", "", "Email of the user")
	cmd.Flags().StringVar(&o.user, "user", "", "Firebase user ID of the user")
	cmd.Flags().StringVar(&o.date, "date", "", "Date of the plan as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&o.week, "week", "", "Week to print (default the first week)")
	cmd.Flags().StringVar(&o.timezone, "timezone", "Local", "Time zone used to find today's date")
	_ = cmd.MarkFlagRequired("project")
	cmd.MarkFlagsOneRequired("email", "user")
	cmd.MarkFlagsMutuallyExclusive("email", "user")

	return cmd
}

func (o *showOptions) planDate(now time.Time) (civil.Date, error) {
	if o.date != "" {
		date, err := civil.ParseDate(o.date)
		if err != nil {
			return civil.Date{}, fmt.Errorf("invalid --date %q, must be YYYY-MM-DD", o.date)
		}
		return date, nil
	}

	loc, err := time.LoadLocation(o.timezone)
	if err != nil {
		return civil.Date{}, fmt.Errorf("invalid --timezone %q: %w", o.timezone, err)
	}
	return civil.DateOf(now.In(loc)), nil
}

func (o *showOptions) run(ctx context.Context, out io.Writer, clients *planClients, date civil.Date) error {
	userID := strings.TrimSpace(o.user)
	if o.email != "" {
		id, err := auth.LookupUser(ctx, clients.users, o.email)
		if err != nil {
			return fmt.Errorf("dietplan: finding user: %w", err)
		}
		userID = id
	}

	view, warning, err := plan.Load(ctx, clients.plans, userID, date)
	if err != nil {
		return fmt.Errorf("dietplan: loading plan: %w", err)
	}

	var warnings []string
	if warning != nil {
		warnings = append(warnings, warning.Message)
	}
	if _, err := fmt.Fprintf(out, "Diet plan for %s\n", date); err != nil {
		return fmt.Errorf("dietplan: writing output: %w", err)
	}
	return render.Text(out, view, o.week, warnings...)
}
