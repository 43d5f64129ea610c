// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package commands

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/curioswitch/dietmate/internal/dietdb"
	"github.com/curioswitch/dietmate/internal/plan"
)

type lookupFunc func(ctx context.Context, email string) (*fbauth.UserRecord, error)

func (f lookupFunc) GetUserByEmail(ctx context.Context, email string) (*fbauth.UserRecord, error) {
	return f(ctx, email)
}

type fakePlans struct {
	fetched plan.Fetched
	err     error

	userID string
	date   civil.Date
}

func (f *fakePlans) Fetch(_ context.Context, userID string, date civil.Date) (plan.Fetched, error) {
	f.userID = userID
	f.date = date
	return f.fetched, f.err
}

type fakeAssets struct {
	bucket      string
	path        string
	contentType string
	data        []byte
	closed      bool
}

func (f *fakeAssets) WriteFile(_ context.Context, path string, contentType string, data []byte) (string, error) {
	f.path = path
	f.contentType = contentType
	f.data = data
	return "https://storage.googleapis.com/" + f.bucket + "/" + path, nil
}

type fixture struct {
	plans     *fakePlans
	assets    *fakeAssets
	project   string
	connected bool
	closed    bool
}

func newFixture() *fixture {
	return &fixture{
		plans: &fakePlans{
			fetched: plan.Fetched{
				Weeks: plan.RawPlan{
					{Label: "Week 1", Week: dietdb.Week{Day: []string{"Mon"}, Breakfast: []string{"Oats"}}},
					{Label: "Week 2", Week: dietdb.Week{Day: []string{"Tue"}, Lunch: []string{"Rajma rice"}}},
				},
			},
		},
		assets: &fakeAssets{},
	}
}

func (f *fixture) execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	users := lookupFunc(func(_ context.Context, email string) (*fbauth.UserRecord, error) {
		if email != "shreya@example.com" {
			return nil, errors.New("lookup failed")
		}
		return &fbauth.UserRecord{UserInfo: &fbauth.UserInfo{UID: "u1", Email: email}}, nil
	})

	root := newRootCmd(dependencies{
		connectPlans: func(_ context.Context, project string) (*planClients, error) {
			f.connected = true
			f.project = project
			return &planClients{
				users: users,
				plans: f.plans,
				close: func() error {
					f.closed = true
					return nil
				},
			}, nil
		},
		connectAssets: func(_ context.Context, bucket string) (assetWriter, func() error, error) {
			f.connected = true
			f.assets.bucket = bucket
			return f.assets, func() error {
				f.assets.closed = true
				return nil
			}, nil
		},
		now: func() time.Time {
			return time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
		},
	})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot(t *testing.T) {
	t.Run("help", func(t *testing.T) {
		out, err := newFixture().execute(t)
		require.NoError(t, err)
		require.Contains(t, out, "Usage:")
		require.Contains(t, out, "show")
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := newFixture().execute(t, "--email", "shreya@example.com")
		require.ErrorContains(t, err, "unknown flag: --email")
	})

	t.Run("bad log level", func(t *testing.T) {
		f := newFixture()
		_, err := f.execute(t, "show", "--log-level", "loud", "--project", "p", "--user", "u1")
		require.ErrorContains(t, err, "unknown level")
		require.False(t, f.connected)
	})
}

func TestShow(t *testing.T) {
	color.NoColor = true

	t.Run("by email", func(t *testing.T) {
		f := newFixture()
		out, err := f.execute(t, "show", "--project", "diet-planning", "--email", "shreya@example.com", "--date", "2024-01-01", "--week", "Week 2")
		require.NoError(t, err)

		require.Equal(t, "diet-planning", f.project)
		require.Equal(t, "u1", f.plans.userID)
		require.Equal(t, civil.Date{Year: 2024, Month: time.January, Day: 1}, f.plans.date)
		require.True(t, f.closed)
		require.Equal(t, `Diet plan for 2024-01-01
Weeks: Week 1, Week 2

Week 2 Diet Plan

Tue
  Breakfast: No suggestion
  Lunch: Rajma rice
  Dinner: No suggestion
  Snack: No suggestion
`, out)
	})

	t.Run("by user today", func(t *testing.T) {
		f := newFixture()
		f.plans.fetched = plan.Fetched{
			Warning: &plan.Warning{Kind: plan.WarningNoWeeks, Message: "No weeks found for the selected date: 2024-03-05."},
		}
		out, err := f.execute(t, "show", "--project", "diet-planning", "--user", "u2", "--timezone", "UTC")
		require.NoError(t, err)

		require.Equal(t, "u2", f.plans.userID)
		require.Equal(t, civil.Date{Year: 2024, Month: time.March, Day: 5}, f.plans.date)
		require.Equal(t, `Diet plan for 2024-03-05
⚠️  No weeks found for the selected date: 2024-03-05.
⚠️  No data available for the selected date.
`, out)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newFixture()
		_, err := f.execute(t, "show", "--project", "diet-planning", "--email", "nobody@example.com")
		require.ErrorContains(t, err, "finding user")
		require.Empty(t, f.plans.userID)
		require.True(t, f.closed)
	})

	t.Run("malformed plan", func(t *testing.T) {
		f := newFixture()
		f.plans.err = plan.ErrMalformedWeek
		_, err := f.execute(t, "show", "--project", "diet-planning", "--user", "u1")
		require.ErrorIs(t, err, plan.ErrMalformedWeek)
	})

	invalid := []struct {
		name string
		args []string
		err  string
	}{
		{
			name: "missing project",
			args: []string{"show", "--user", "u1"},
			err:  `"project"`,
		},
		{
			name: "missing user",
			args: []string{"show", "--project", "p"},
			err:  "[email user]",
		},
		{
			name: "email and user",
			args: []string{"show", "--project", "p", "--user", "u1", "--email", "shreya@example.com"},
			err:  "[email user]",
		},
		{
			name: "bad date",
			args: []string{"show", "--project", "p", "--user", "u1", "--date", "01/02/2024"},
			err:  "invalid --date",
		},
		{
			name: "bad timezone",
			args: []string{"show", "--project", "p", "--user", "u1", "--timezone", "Mars/Olympus"},
			err:  "invalid --timezone",
		},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.execute(t, tc.args...)
			require.ErrorContains(t, err, tc.err)
			require.False(t, f.connected)
		})
	}
}

func TestAnimationUpload(t *testing.T) {
	animation := filepath.Join(t.TempDir(), "diet.json")
	require.NoError(t, os.WriteFile(animation, []byte(`{"v":"5.7.4","layers":[]}`), 0o600))

	t.Run("default bucket", func(t *testing.T) {
		f := newFixture()
		out, err := f.execute(t, "animation", "upload", "--project", "diet-planning", animation)
		require.NoError(t, err)

		require.Equal(t, "diet-planning-public", f.assets.bucket)
		require.Equal(t, "lottie/diet.json", f.assets.path)
		require.Equal(t, "application/json", f.assets.contentType)
		require.JSONEq(t, `{"v":"5.7.4","layers":[]}`, string(f.assets.data))
		require.True(t, f.assets.closed)
		require.Equal(t, "https://storage.googleapis.com/diet-planning-public/lottie/diet.json\n", out)
	})

	t.Run("bucket and path", func(t *testing.T) {
		f := newFixture()
		_, err := f.execute(t, "animation", "upload", "--bucket", "assets", "--path", "lottie/v2.json", animation)
		require.NoError(t, err)

		require.Equal(t, "assets", f.assets.bucket)
		require.Equal(t, "lottie/v2.json", f.assets.path)
	})

	t.Run("no bucket", func(t *testing.T) {
		f := newFixture()
		_, err := f.execute(t, "animation", "upload", animation)
		require.ErrorContains(t, err, "--bucket or --project")
		require.False(t, f.connected)
	})

	t.Run("not json", func(t *testing.T) {
		notJSON := filepath.Join(t.TempDir(), "diet.txt")
		require.NoError(t, os.WriteFile(notJSON, []byte("hello"), 0o600))

		f := newFixture()
		_, err := f.execute(t, "animation", "upload", "--project", "diet-planning", notJSON)
		require.ErrorContains(t, err, "not a Lottie JSON file")
		require.False(t, f.connected)
	})

	t.Run("missing file", func(t *testing.T) {
		f := newFixture()
		_, err := f.execute(t, "animation", "upload", "--project", "diet-planning", filepath.Join(t.TempDir(), "missing.json"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestPrintError(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	printError(&buf, errors.New("boom"))
	require.Equal(t, "Error: boom\n", buf.String())
}
