// Package config resolves the catalog's runtime configuration. The only
// externally configurable input of consequence is the feed source, with
// precedence: explicit value, environment override, built-in default.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultFeedSource is the relative path used when nothing overrides it,
// mirroring the feed file published next to the page.
const DefaultFeedSource = "data/events.json"

// Config holds the resolved runtime settings.
type Config struct {
	// FeedSource is an http(s) URL or a local file path.
	FeedSource string

	// LoadTimeout bounds the single feed fetch; expiry is a load error.
	LoadTimeout time.Duration

	// LogLevel is a logrus level name. Defaults to "info".
	LogLevel string
}

// Load resolves configuration. explicitSource, when non-empty, wins over
// the CATALOG_FEED_URL environment variable, which wins over the
// default. A .env file is honored when present.
func Load(explicitSource string) (Config, error) {
	_ = godotenv.Load() // .env is optional

	v := viper.New()
	v.SetEnvPrefix("CATALOG")
	v.AutomaticEnv()

	v.SetDefault("feed_url", DefaultFeedSource)
	v.SetDefault("load_timeout", "15s")
	v.SetDefault("log_level", "info")

	cfg := Config{
		FeedSource: v.GetString("feed_url"),
		LogLevel:   v.GetString("log_level"),
	}

	if explicitSource != "" {
		cfg.FeedSource = explicitSource
	}

	timeout := v.GetDuration("load_timeout")
	if timeout <= 0 {
		return Config{}, fmt.Errorf("invalid CATALOG_LOAD_TIMEOUT %q", v.GetString("load_timeout"))
	}
	cfg.LoadTimeout = timeout

	return cfg, nil
}
