package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}

	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Errorf("unexpected base defaults: %+v", cfg)
	}
	if cfg.AdminCookieName != "admin_token" {
		t.Errorf("unexpected cookie name: %q", cfg.AdminCookieName)
	}
	if cfg.TagNormalize {
		t.Errorf("tag normalization must be off by default")
	}
	if cfg.Mongo.Database != "study_portal" {
		t.Errorf("unexpected mongo db: %q", cfg.Mongo.Database)
	}
	if cfg.ServerInfo.AppName != "PW Quantum" || cfg.ServerInfo.CacheTTL != 5*time.Minute {
		t.Errorf("unexpected server info defaults: %+v", cfg.ServerInfo)
	}
	if cfg.ServerInfo.IsDirectLoginOpen != nil || cfg.ServerInfo.Defaults().IsDirectLoginOpen != nil {
		t.Errorf("direct login flag must stay unset")
	}
}

func TestLoad_RequiresSecret(t *testing.T) {
	if _, err := load(context.Background(), envconfig.MapLookuper(map[string]string{})); err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}
}

func TestLoad_InvalidDirectLoginFlag(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":        "s3cret",
		"DIRECT_LOGIN_OPEN": "maybe",
	}))
	if err == nil {
		t.Fatalf("expected error for invalid DIRECT_LOGIN_OPEN")
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":            "s3cret",
		"ENV":                   "production",
		"TAG_NORMALIZE":         "true",
		"TG_CHANNEL":            "@news",
		"DIRECT_LOGIN_OPEN":     "false",
		"SERVER_INFO_CACHE_TTL": "30s",
	}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}

	if !cfg.IsProduction() || !cfg.TagNormalize {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.ServerInfo.CacheTTL != 30*time.Second {
		t.Errorf("unexpected ttl: %v", cfg.ServerInfo.CacheTTL)
	}

	defaults := cfg.ServerInfo.Defaults()
	if defaults.TgChannel != "@news" {
		t.Errorf("unexpected channel: %q", defaults.TgChannel)
	}
	if defaults.IsDirectLoginOpen == nil || *defaults.IsDirectLoginOpen {
		t.Errorf("expected explicit false direct-login flag")
	}
	if defaults.WebName != "" {
		t.Errorf("webName must not come from env")
	}
}

func TestLoad_DirectLoginFlagTrue(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":        "s3cret",
		"DIRECT_LOGIN_OPEN": "true",
	}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if open := cfg.ServerInfo.Defaults().IsDirectLoginOpen; open == nil || !*open {
		t.Fatalf("expected direct login enabled, got %v", open)
	}
}
