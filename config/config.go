package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig

	// Chatbot specifics
	Classifier ClassifierConfig
	Responder  ResponderConfig
	Chat       ChatConfig

	// External data APIs (weather / news / crypto intents)
	Weather WeatherConfig
	News    NewsConfig
	Crypto  CryptoConfig

	// Delivery channels
	Telegram TelegramConfig

	// Internal API protection
	InternalKey string
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

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN builds the lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

type ClassifierConfig struct {
	// ConfidenceThreshold: predictions with confidence <= threshold get the
	// fallback response (boundary is inclusive into fallback).
	ConfidenceThreshold float64
}

type ResponderConfig struct {
	FallbackText string
	// Seed for the response picker; fixed so selections are reproducible.
	Seed int64
}

type ChatConfig struct {
	// RateLimitPerMin throttles the public chat endpoint per client IP.
	RateLimitPerMin int
	// EnrichCacheTTLSeconds is how long live API payloads stay cached.
	EnrichCacheTTLSeconds int
}

type WeatherConfig struct {
	APIKey      string
	BaseURL     string
	DefaultCity string
}

type NewsConfig struct {
	APIKey  string
	BaseURL string
}

type CryptoConfig struct {
	BaseURL     string
	DefaultCoin string
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
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

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		// DATABASE_URL wins over the individual fields when set
		cfg.Postgres = parseDatabaseURL(dbURL, cfg.Postgres)
	}

	// Classifier & Responder
	cfg.Classifier.ConfidenceThreshold = viper.GetFloat64("classifier.confidence_threshold")
	cfg.Responder.FallbackText = viper.GetString("responder.fallback_text")
	cfg.Responder.Seed = viper.GetInt64("responder.seed")
	if cfg.Classifier.ConfidenceThreshold < 0 || cfg.Classifier.ConfidenceThreshold >= 1 {
		return nil, fmt.Errorf("classifier.confidence_threshold must be in [0,1), got %v",
			cfg.Classifier.ConfidenceThreshold)
	}

	// Chat
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")
	cfg.Chat.EnrichCacheTTLSeconds = viper.GetInt("chat.enrich_cache_ttl_seconds")

	// External data APIs
	cfg.Weather.APIKey = viper.GetString("weather.api_key")
	cfg.Weather.BaseURL = viper.GetString("weather.base_url")
	cfg.Weather.DefaultCity = viper.GetString("weather.default_city")
	if weatherKey := viper.GetString("weather_api_key"); weatherKey != "" {
		cfg.Weather.APIKey = weatherKey
	}

	cfg.News.APIKey = viper.GetString("news.api_key")
	cfg.News.BaseURL = viper.GetString("news.base_url")
	if newsKey := viper.GetString("news_api_key"); newsKey != "" {
		cfg.News.APIKey = newsKey
	}

	cfg.Crypto.BaseURL = viper.GetString("crypto.base_url")
	cfg.Crypto.DefaultCoin = viper.GetString("crypto.default_coin")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Internal key
	cfg.InternalKey = viper.GetString("internal_key")

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

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.database", "chatbot_db")
	viper.SetDefault("postgres.sslmode", "disable")

	viper.SetDefault("classifier.confidence_threshold", 0.5)
	viper.SetDefault("responder.fallback_text", "I'm not sure how to help with that.")
	viper.SetDefault("responder.seed", 1)

	viper.SetDefault("chat.rate_limit_per_min", 60)
	viper.SetDefault("chat.enrich_cache_ttl_seconds", 300)

	viper.SetDefault("weather.base_url", "https://api.openweathermap.org/data/2.5")
	viper.SetDefault("weather.default_city", "London")
	viper.SetDefault("news.base_url", "https://newsapi.org/v2")
	viper.SetDefault("crypto.base_url", "https://api.coingecko.com/api/v3")
	viper.SetDefault("crypto.default_coin", "bitcoin")
}

// parseDatabaseURL extracts connection parts from a postgres:// URL,
// falling back to the provided config for anything it cannot parse.
func parseDatabaseURL(raw string, fallback PostgresConfig) PostgresConfig {
	cfg := fallback

	rest, ok := strings.CutPrefix(raw, "postgres://")
	if !ok {
		rest, ok = strings.CutPrefix(raw, "postgresql://")
		if !ok {
			return fallback
		}
	}

	// user:pass@host:port/dbname?sslmode=...
	if creds, hostPart, found := strings.Cut(rest, "@"); found {
		if user, pass, hasPass := strings.Cut(creds, ":"); hasPass {
			cfg.User, cfg.Password = user, pass
		} else {
			cfg.User = creds
		}
		rest = hostPart
	}

	if qIdx := strings.Index(rest, "?"); qIdx >= 0 {
		for _, kv := range strings.Split(rest[qIdx+1:], "&") {
			if k, v, found := strings.Cut(kv, "="); found && k == "sslmode" {
				cfg.SSLMode = v
			}
		}
		rest = rest[:qIdx]
	}

	if hostPort, db, found := strings.Cut(rest, "/"); found {
		cfg.Database = db
		rest = hostPort
	}

	if host, port, found := strings.Cut(rest, ":"); found {
		cfg.Host = host
		fmt.Sscanf(port, "%d", &cfg.Port)
	} else if rest != "" {
		cfg.Host = rest
	}

	return cfg
}
