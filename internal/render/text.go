// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/curioswitch/dietmate/internal/plan"
)

var (
	yellow = color.New(color.FgYellow)
	header = color.New(color.FgCyan, color.Bold)
	bold   = color.New(color.Bold)
)

// Text writes the view for a terminal, showing only the selected week.
func Text(w io.Writer, view plan.View, week string, warnings ...string) error {
	for _, warning := range warnings {
		if _, err := yellow.Fprintf(w, "⚠️  %s\n", warning); err != nil {
			return fmt.Errorf("render: writing warning: %w", err)
		}
	}

	switch v := view.(type) {
	case *plan.NoData:
		if _, err := yellow.Fprintf(w, "⚠️  %s\n", v.Message); err != nil {
			return fmt.Errorf("render: writing message: %w", err)
		}
	case *plan.Plan:
		selected, ok := v.SelectWeek(week)
		if !ok {
			return nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Weeks: %s\n\n", strings.Join(v.WeekLabels(), ", "))
		header.Fprintf(&sb, "%s Diet Plan\n", selected.Label)
		for _, day := range selected.Days {
			sb.WriteString("\n")
			bold.Fprintf(&sb, "%s\n", day.Label)
			for _, meal := range day.Meals {
				fmt.Fprintf(&sb, "  %s: %s\n", meal.Type, meal.Suggestion)
			}
		}
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return fmt.Errorf("render: writing plan: %w", err)
		}
	}
	return nil
}
