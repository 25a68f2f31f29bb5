package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Jishu admin gateway specifics
	Upstream  UpstreamConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Resource  ResourceConfig
	CORS      CORSConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// UpstreamConfig points at the Jishu backend REST API.
type UpstreamConfig struct {
	URL         string
	AccessToken string
	Timeout     time.Duration
}

// AuthConfig guards the admin endpoints.
type AuthConfig struct {
	AdminToken string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// ResourceConfig tunes the paginated resource managers.
type ResourceConfig struct {
	PerPage             int
	CacheSize           int
	CacheTTL            time.Duration
	StepBackOnEmptyPage bool
	ReloadAfterCreate   bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Upstream API
	cfg.Upstream.URL = viper.GetString("upstream.url")
	cfg.Upstream.AccessToken = viper.GetString("upstream.access_token")
	cfg.Upstream.Timeout = viper.GetDuration("upstream.timeout")
	if upstreamURL := viper.GetString("upstream_url"); upstreamURL != "" {
		cfg.Upstream.URL = upstreamURL
	}
	if upstreamToken := viper.GetString("upstream_access_token"); upstreamToken != "" {
		cfg.Upstream.AccessToken = upstreamToken
	}
	if cfg.Upstream.URL == "" {
		return nil, fmt.Errorf("upstream.url is required - set it in config.yaml or UPSTREAM_URL")
	}

	// Admin auth
	cfg.Auth.AdminToken = viper.GetString("auth.admin_token")
	if adminToken := viper.GetString("admin_token"); adminToken != "" {
		cfg.Auth.AdminToken = adminToken
	}

	// Rate limiting
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Resource managers
	cfg.Resource.PerPage = viper.GetInt("resource.per_page")
	cfg.Resource.CacheSize = viper.GetInt("resource.cache_size")
	cfg.Resource.CacheTTL = viper.GetDuration("resource.cache_ttl")
	cfg.Resource.StepBackOnEmptyPage = viper.GetBool("resource.step_back_on_empty_page")
	cfg.Resource.ReloadAfterCreate = viper.GetBool("resource.reload_after_create")

	// Split allowed origins since viper might not parse array seamlessly from env
	var origins []string
	if rawOrigins := viper.GetString("cors.allowed_origins"); rawOrigins != "" {
		for _, origin := range strings.Split(rawOrigins, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	cfg.CORS.AllowedOrigins = origins

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("upstream.timeout", "30s")
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 300)
	viper.SetDefault("resource.per_page", 20)
	viper.SetDefault("resource.cache_size", 64)
	viper.SetDefault("resource.cache_ttl", "30s")
	viper.SetDefault("resource.step_back_on_empty_page", true)
	viper.SetDefault("resource.reload_after_create", false)
}
