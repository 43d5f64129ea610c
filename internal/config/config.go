// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"time"

	"github.com/curioswitch/go-curiostack/config"
)

// Session is the configuration for browser sessions.
type Session struct {
	// Secret is the key to sign session cookies with.
	Secret string `koanf:"secret"`

	// TTL is how long a login lasts.
	TTL time.Duration `koanf:"ttl"`
}

// Assets is the configuration for static assets in Cloud Storage.
type Assets struct {
	// Bucket is the bucket with the assets. Defaults to <project>-public.
	Bucket string `koanf:"bucket"`

	// Animation is the path of the Lottie animation in the page header, e.g. lottie/diet.json.
	Animation string `koanf:"animation"`
}

// Display is the configuration for rendering plans.
type Display struct {
	// Timezone is the IANA time zone used to find today's date, e.g. Asia/Kolkata.
	Timezone string `koanf:"timezone"`
}

type Config struct {
	config.Common

	Session Session `koanf:"session"`

	Assets Assets `koanf:"assets"`

	Display Display `koanf:"display"`
}

// AssetsBucket returns the bucket with static assets.
func (c *Config) AssetsBucket() string {
	if c.Assets.Bucket != "" {
		return c.Assets.Bucket
	}
	return c.Google.Project + "-public"
}

// Location returns the time zone for today's date, UTC if unset.
func (c *Config) Location() (*time.Location, error) {
	if c.Display.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Display.Timezone)
}
