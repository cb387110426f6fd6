package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/quantumstudy/study-api/internal/core/domain"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs admin credentials. There is no fallback: startup fails
	// when it is unset.
	JWTSecret       string `env:"JWT_SECRET, required"`
	AdminCookieName string `env:"ADMIN_COOKIE_NAME, default=admin_token"`
	TagNormalize    bool   `env:"TAG_NORMALIZE, default=false"`
	SwaggerEnabled  bool   `env:"SWAGGER_ENABLED, default=false"`

	Mongo      MongoConfig
	Redis      RedisConfig
	ServerInfo ServerInfoConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=study_portal"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// ServerInfoConfig holds the branding defaults used when no settings document
// has been stored.
type ServerInfoConfig struct {
	AppName        string        `env:"APP_NAME, default=PW Quantum"`
	TgChannel      string        `env:"TG_CHANNEL"`
	TgUsername     string        `env:"TG_USERNAME"`
	TgBot          string        `env:"TG_BOT"`
	SidebarLogoURL string        `env:"SIDEBAR_LOGO_URL"`
	SidebarTitle   string        `env:"SIDEBAR_TITLE"`
	CacheTTL       time.Duration `env:"SERVER_INFO_CACHE_TTL, default=5m"`

	// Left nil when unset so the login mode is reported as unknown.
	IsDirectLoginOpen *bool `env:"DIRECT_LOGIN_OPEN, noinit"`
}

// Defaults converts the env values into a ServerInfo. WebName stays empty so
// that only an operator-stored name is reported as webName.
func (c ServerInfoConfig) Defaults() domain.ServerInfo {
	return domain.ServerInfo{
		TgChannel:         c.TgChannel,
		TgUsername:        c.TgUsername,
		TgBot:             c.TgBot,
		SidebarLogoURL:    c.SidebarLogoURL,
		SidebarTitle:      c.SidebarTitle,
		IsDirectLoginOpen: c.IsDirectLoginOpen,
	}
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
