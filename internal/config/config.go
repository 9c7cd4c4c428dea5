package config

import (
	"strings"
	"time"

	"github.com/op/go-logging"
	"github.com/sangkips/confreg-invoicing/pkg/fira"
	"github.com/spf13/viper"
)

var log = logging.MustGetLogger("config")

type Config struct {
	App       AppConfig
	Fira      FiraConfig
	Log       LogConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port string
}

// FiraConfig configures the FIRA webshop integration. An empty APIKey
// disables all outbound calls.
type FiraConfig struct {
	BaseURL    string
	APIKey     string
	AuthScheme string
	AuthHeader string
	Currency   string
	Timeout    time.Duration
}

// Enabled reports whether a credential is present.
func (f FiraConfig) Enabled() bool {
	return f.APIKey != ""
}

// ClientConfig returns the settings for fira.NewClient
func (f FiraConfig) ClientConfig() fira.Config {
	return fira.Config{
		BaseURL:    f.BaseURL,
		APIKey:     f.APIKey,
		AuthScheme: f.AuthScheme,
		AuthHeader: f.AuthHeader,
		Timeout:    f.Timeout,
	}
}

type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warningf(".env file not found, using environment variables: %v", err)
	}

	setDefaults()

	return fromViper()
}

func setDefaults() {
	viper.SetDefault("APP_NAME", "confreg-invoicing")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("PORT", "3005")
	viper.SetDefault("FIRA_API_URL", fira.DefaultBaseURL)
	viper.SetDefault("FIRA_API_KEY", "")
	viper.SetDefault("FIRA_AUTH_SCHEME", fira.AuthSchemeHeader)
	viper.SetDefault("FIRA_AUTH_HEADER", fira.DefaultAuthHeader)
	viper.SetDefault("FIRA_CURRENCY", "EUR")
	viper.SetDefault("FIRA_TIMEOUT_SECONDS", 0)
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("LOG_MAX_SIZE_MB", 10)
	viper.SetDefault("LOG_MAX_BACKUPS", 3)
	viper.SetDefault("LOG_MAX_AGE_DAYS", 30)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("RATE_LIMIT_REQUESTS", 30)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
}

func fromViper() *Config {
	return &Config{
		App: AppConfig{
			Name: viper.GetString("APP_NAME"),
			Env:  viper.GetString("APP_ENV"),
			Port: viper.GetString("PORT"),
		},
		Fira: FiraConfig{
			BaseURL:    viper.GetString("FIRA_API_URL"),
			APIKey:     viper.GetString("FIRA_API_KEY"),
			AuthScheme: viper.GetString("FIRA_AUTH_SCHEME"),
			AuthHeader: viper.GetString("FIRA_AUTH_HEADER"),
			Currency:   viper.GetString("FIRA_CURRENCY"),
			Timeout:    time.Duration(viper.GetInt("FIRA_TIMEOUT_SECONDS")) * time.Second,
		},
		Log: LogConfig{
			Level:      viper.GetString("LOG_LEVEL"),
			File:       viper.GetString("LOG_FILE"),
			MaxSizeMB:  viper.GetInt("LOG_MAX_SIZE_MB"),
			MaxBackups: viper.GetInt("LOG_MAX_BACKUPS"),
			MaxAgeDays: viper.GetInt("LOG_MAX_AGE_DAYS"),
		},
		CORS: CORSConfig{
			AllowedOrigins: stringList("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: stringList("CORS_ALLOWED_METHODS"),
			AllowedHeaders: stringList("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

// stringList reads a comma separated list
func stringList(key string) []string {
	var out []string
	for _, part := range strings.Split(viper.GetString(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
