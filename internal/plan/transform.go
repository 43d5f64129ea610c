// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package plan

import (
	"github.com/curioswitch/dietmate/internal/dietdb"
)

// Transform reshapes raw weeks into days with all four meals filled in. Meals
// missing from the raw week are NoSuggestion. An empty plan returns *NoData.
func Transform(raw RawPlan) View {
	if len(raw) == 0 {
		return &NoData{Message: NoDataMessage}
	}

	p := &Plan{
		Weeks: make([]Week, len(raw)),
	}
	for i, rw := range raw {
		week := Week{
			Label: rw.Label,
			Days:  make([]Day, len(rw.Day)),
		}
		for idx, label := range rw.Day {
			day := Day{Label: label}
			for j, mt := range dietdb.MealTypes {
				suggestion := NoSuggestion
				if meals := rw.Meals(mt); idx < len(meals) {
					suggestion = meals[idx]
				}
				day.Meals[j] = Meal{Type: mt, Suggestion: suggestion}
			}
			week.Days[idx] = day
		}
		p.Weeks[i] = week
	}
	return p
}
