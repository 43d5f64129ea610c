// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package commands implements the dietplan command line tool.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/curioswitch/dietmate/internal/logging"
)

var errorLabel = color.New(color.FgRed, color.Bold)

type dependencies struct {
	connectPlans  connectPlansFunc
	connectAssets connectAssetsFunc
	now           func() time.Time
}

// Execute runs the command line tool with os.Args, printing any error to stderr.
func Execute(ctx context.Context) error {
	root := newRootCmd(dependencies{
		connectPlans:  connectFirebase,
		connectAssets: connectStorage,
		now:           time.Now,
	})
	if err := root.ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		return err
	}
	return nil
}

func newRootCmd(deps dependencies) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "dietplan",
		Short: "Inspect and maintain Diet Mate diet plans",
		Long: `dietplan reads the diet plans stored for Diet Mate users and prints them
the same way the web page shows them.

Examples:
  # Today's plan of a user
  dietplan show --project diet-planning-e62ca --email shreya@example.com

  # A specific week of a plan
  dietplan show --project diet-planning-e62ca --user u1 --date 2024-01-01 --week "Week 2"`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logging.Setup(cmd.ErrOrStderr(), level)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")

	root.AddCommand(newShowCmd(deps), newAnimationCmd(deps))
	return root
}

func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "%s %v\n", errorLabel.Sprint("Error:"), err)
}
