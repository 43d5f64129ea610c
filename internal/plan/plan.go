// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package plan fetches a user's diet plan for a date and reshapes it from
// per-week meal lists into per-day meals for display.
package plan

import (
	"github.com/curioswitch/dietmate/internal/dietdb"
)

const (
	// NoSuggestion is the suggestion for a meal that has no entry in the plan.
	NoSuggestion = "No suggestion"

	// NoDataMessage is the message of NoData.
	NoDataMessage = "No data available for the selected date."
)

// RawWeek is a week as stored, labeled with its document ID.
type RawWeek struct {
	Label string
	dietdb.Week
}

// RawPlan is the weeks of a plan in the order returned by the store.
type RawPlan []RawWeek

// View is the result of Transform, either *Plan or *NoData.
type View interface {
	isView()
}

// NoData is returned by Transform when there is no plan to show.
type NoData struct {
	Message string `json:"message"`
}

func (*NoData) isView() {}

// Meal is the suggestion for one meal of a day.
type Meal struct {
	Type       dietdb.MealType `json:"type"`
	Suggestion string          `json:"suggestion"`
}

// Day is the meals of one day, always one per meal type in the order of
// dietdb.MealTypes.
type Day struct {
	Label string                      `json:"label"`
	Meals [len(dietdb.MealTypes)]Meal `json:"meals"`
}

// Suggestion returns the suggestion for the meal type, or NoSuggestion for an
// unknown type.
func (d *Day) Suggestion(t dietdb.MealType) string {
	for _, m := range d.Meals {
		if m.Type == t {
			return m.Suggestion
		}
	}
	return NoSuggestion
}

// Week is the days of one week in the order of the stored Day list.
type Week struct {
	Label string `json:"label"`
	Days  []Day  `json:"days"`
}

// Plan is a diet plan ready for display.
type Plan struct {
	Weeks []Week `json:"weeks"`
}

func (*Plan) isView() {}

// WeekLabels returns the labels of the weeks in the plan, in order.
func (p *Plan) WeekLabels() []string {
	labels := make([]string, len(p.Weeks))
	for i, w := range p.Weeks {
		labels[i] = w.Label
	}
	return labels
}

// Week returns the week with the label.
func (p *Plan) Week(label string) (Week, bool) {
	for _, w := range p.Weeks {
		if w.Label == label {
			return w, true
		}
	}
	return Week{}, false
}

// SelectWeek returns the week with the label, or the first week if there is
// none. It returns false only if the plan has no weeks.
func (p *Plan) SelectWeek(label string) (Week, bool) {
	if w, ok := p.Week(label); ok {
		return w, true
	}
	if len(p.Weeks) == 0 {
		return Week{}, false
	}
	return p.Weeks[0], true
}
