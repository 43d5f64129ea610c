// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"
	_ "time/tzdata"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/curioswitch/go-curiostack/server"
	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/curioswitch/dietmate/internal/auth"
	"github.com/curioswitch/dietmate/internal/config"
	"github.com/curioswitch/dietmate/internal/file"
	"github.com/curioswitch/dietmate/internal/handler/animation"
	"github.com/curioswitch/dietmate/internal/handler/getplan"
	"github.com/curioswitch/dietmate/internal/handler/login"
	"github.com/curioswitch/dietmate/internal/handler/logout"
	"github.com/curioswitch/dietmate/internal/handler/viewplan"
	"github.com/curioswitch/dietmate/internal/plan"
)

//go:embed conf/*.yaml
var confFiles embed.FS

const animationPath = "/assets/diet.json"

func main() {
	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	mux := server.Mux(s)

	loc, err := conf.Location()
	if err != nil {
		return fmt.Errorf("main: loading display time zone: %w", err)
	}

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: conf.Google.Project})
	if err != nil {
		return fmt.Errorf("main: create firebase app: %w", err)
	}

	fbAuth, err := fbApp.Auth(ctx)
	if err != nil {
		return fmt.Errorf("main: create firebase auth client: %w", err)
	}

	firestore, err := fbApp.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("main: create firestore client: %w", err)
	}
	defer func() {
		if err := firestore.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close firestore client", "error", err)
		}
	}()

	storage, err := storage.NewGRPCClient(ctx)
	if err != nil {
		return fmt.Errorf("main: create storage client: %w", err)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close storage client", "error", err)
		}
	}()

	plans := plan.NewRepository(firestore)
	sessions, err := auth.NewSessions(conf.Session.Secret, conf.Session.TTL)
	if err != nil {
		return fmt.Errorf("main: session.secret: %w", err)
	}
	assets := file.NewIO(storage, conf.AssetsBucket())

	fbMW := firebaseauth.NewMiddleware(fbAuth)
	mux.Use(middleware.Maybe(fbMW, func(r *http.Request) bool {
		return strings.HasPrefix(r.URL.Path, "/api/")
	}))

	mux.Method(http.MethodGet, "/", viewplan.NewHandler(plans, sessions, loc, animationPath))
	mux.Method(http.MethodPost, "/login", login.NewHandler(fbAuth, sessions, animationPath))
	mux.Method(http.MethodPost, "/logout", logout.NewHandler(sessions))
	mux.Method(http.MethodGet, "/api/plans/{date}", getplan.NewHandler(plans))
	mux.Method(http.MethodGet, animationPath, animation.NewHandler(assets, conf.Assets.Animation))

	if err := server.Start(ctx, s); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	return nil
}
