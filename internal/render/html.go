// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package render presents diet plans to users.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"cloud.google.com/go/civil"

	"github.com/curioswitch/dietmate/internal/plan"
)

//go:embed templates/*.html.tmpl
var templateFiles embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFiles, "templates/page.html.tmpl"))

// Page is the content of the diet plan page.
type Page struct {
	// Email is the email of the logged in user. The login form is shown when empty.
	Email string

	// LoginError is the reason the last login attempt failed.
	LoginError string

	// Notice is a success message, e.g. after logging in or out.
	Notice string

	// AnimationURL is the URL of the Lottie animation in the header.
	AnimationURL string

	// Date is the date of the plan.
	Date civil.Date

	// Warnings are shown above the plan.
	Warnings []string

	// View is the plan to show.
	View plan.View

	// Week is the label of the week to show. The first week is shown if it is
	// empty or not in the plan.
	Week string
}

type pageData struct {
	Page

	NoData   *plan.NoData
	Weeks    []string
	Selected *plan.Week
}

// HTML writes the page as an HTML document.
func HTML(w io.Writer, page Page) error {
	data := pageData{Page: page}
	switch v := page.View.(type) {
	case *plan.NoData:
		data.NoData = v
	case *plan.Plan:
		data.Weeks = v.WeekLabels()
		if week, ok := v.SelectWeek(page.Week); ok {
			data.Selected = &week
		}
	}

	if err := pageTemplate.ExecuteTemplate(w, "page.html.tmpl", data); err != nil {
		return fmt.Errorf("render: executing page template: %w", err)
	}
	return nil
}
