package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/shared/errors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

type Config struct {
	ListingURL         string `koanf:"listing_url"`
	SiteOrigin         string `koanf:"site_origin"`
	ListingPathPrefix  string `koanf:"listing_path_prefix"`
	FallbackFeedURL    string `koanf:"fallback_feed_url"`
	OutputPath         string `koanf:"output_path"`
	ChannelTitle       string `koanf:"channel_title"`
	ChannelLink        string `koanf:"channel_link"`
	ChannelDescription string `koanf:"channel_description"`
	GUIDNamespace      string `koanf:"guid_namespace"`
	HTTPPort           string `koanf:"http_port"`
	UpdateInterval     int    `koanf:"update_interval"`
	EmptyIsFailure     bool   `koanf:"empty_is_failure"`
	AppEnv             AppEnv `koanf:"app_env"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try to load config file from various formats
	configFiles := []string{
		"config.yaml",
		"config.yml",
		"config.json",
		"config.toml",
	}

	// Use lo.Find to find the first existing config file
	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Load environment variables (they override config file values)
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	// Set defaults
	if !k.Exists("listing_url") {
		k.Set("listing_url", "https://www.childsafetyawarenesswa.org.au/news")
	}
	if !k.Exists("output_path") {
		k.Set("output_path", "./public/feed.xml")
	}
	if !k.Exists("channel_title") {
		k.Set("channel_title", "Child Safety Awareness WA News")
	}
	if !k.Exists("guid_namespace") {
		k.Set("guid_namespace", "childsafetyawarenesswa")
	}
	if !k.Exists("http_port") {
		k.Set("http_port", "8080")
	}
	if !k.Exists("update_interval") {
		k.Set("update_interval", 3600)
	}
	if !k.Exists("app_env") {
		k.Set("app_env", "production")
	}

	// Unmarshal into struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	// Parse AppEnv from string if needed
	if appEnvStr := k.String("app_env"); appEnvStr != "" {
		if env, err := ParseAppEnv(appEnvStr); err == nil {
			cfg.AppEnv = env
		} else {
			cfg.AppEnv = AppEnvProduction
		}
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	// Validate required fields
	if cfg.ListingURL == "" {
		return nil, errors.ErrMissingListingURL
	}
	if cfg.OutputPath == "" {
		return nil, errors.ErrMissingOutputPath
	}

	listing, err := url.Parse(cfg.ListingURL)
	if err != nil || listing.Scheme == "" || listing.Host == "" {
		return nil, oops.With("listing_url", cfg.ListingURL).Errorf("listing_url must be an absolute URL")
	}

	// Derive the site identity from the listing URL unless set explicitly
	if cfg.SiteOrigin == "" {
		cfg.SiteOrigin = listing.Scheme + "://" + listing.Host
	}
	if cfg.ListingPathPrefix == "" {
		cfg.ListingPathPrefix = strings.TrimRight(listing.Path, "/")
	}
	if cfg.ChannelLink == "" {
		cfg.ChannelLink = cfg.ListingURL
	}
	if cfg.ChannelDescription == "" {
		cfg.ChannelDescription = cfg.ChannelTitle
	}

	return &cfg, nil
}
