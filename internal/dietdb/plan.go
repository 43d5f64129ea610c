// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package dietdb

const (
	// CollectionDietPlans is the top-level collection with one document per user.
	CollectionDietPlans = "diet_plans"

	// CollectionPlans is the subcollection of a user document with one plan per
	// date, with the ID YYYY-mm-dd.
	CollectionPlans = "plans"

	// CollectionWeeks is the subcollection of a plan with one document per week.
	// The document ID is the week label, e.g. "Week 1".
	CollectionWeeks = "weeks"
)

type MealType string

const (
	MealTypeBreakfast MealType = "Breakfast"
	MealTypeLunch     MealType = "Lunch"
	MealTypeDinner    MealType = "Dinner"
	MealTypeSnack     MealType = "Snack"
)

// MealTypes are all the meal types of a day, in display order.
var MealTypes = [...]MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack}

// Week is a week of a diet plan. The meal lists are aligned by index with Day
// but may be shorter or longer than it.
type Week struct {
	// Day is the label of each day of the week, e.g. Monday.
	Day []string `firestore:"Day"`

	// Breakfast is the suggestion for breakfast on each day.
	Breakfast []string `firestore:"Breakfast"`

	// Lunch is the suggestion for lunch on each day.
	Lunch []string `firestore:"Lunch"`

	// Dinner is the suggestion for dinner on each day.
	Dinner []string `firestore:"Dinner"`

	// Snack is the suggestion for a snack on each day.
	Snack []string `firestore:"Snack"`
}

// Meals returns the suggestions of the week for the meal type. It is nil if
// the week has no entry for it.
func (w *Week) Meals(t MealType) []string {
	switch t {
	case MealTypeBreakfast:
		return w.Breakfast
	case MealTypeLunch:
		return w.Lunch
	case MealTypeDinner:
		return w.Dinner
	case MealTypeSnack:
		return w.Snack
	}
	return nil
}
