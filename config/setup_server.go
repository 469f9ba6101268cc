package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultStravaAuthorizationEndpoint = "https://www.strava.com/oauth/authorize"
	DefaultStravaTokenEndpoint         = "https://www.strava.com/oauth/token"
	DefaultStravaRevokeEndpoint        = "https://www.strava.com/oauth/deauthorize"
	DefaultStravaAPIBaseURL            = "https://www.strava.com/api/v3"
	DefaultGeminiModel                 = "gemini-2.0-flash-exp"
)

type AppConfig struct {
	Server     ServerConfig     `yaml:"server"`
	Strava     StravaConfig     `yaml:"strava"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	State      StateConfig      `yaml:"state"`
	TokenStore TokenStoreConfig `yaml:"tokenStore"`
	Redis      RedisConfig      `yaml:"redis"`
	Mongo      MongoConfig      `yaml:"mongo"`
	Archive    ArchiveConfig    `yaml:"archive"`
	RateLimit  RateLimitConfig  `yaml:"rateLimit"`
}

// DefaultConfig : значения по умолчанию, совпадающие с мобильным клиентом
func DefaultConfig() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Port:        "3000",
			Env:         "development",
			APIVersion:  "v1",
			CORSOrigin:  "http://localhost:8081",
			HTTPTimeout: 15 * time.Second,
		},
		Strava: StravaConfig{
			AuthorizationEndpoint: DefaultStravaAuthorizationEndpoint,
			TokenEndpoint:         DefaultStravaTokenEndpoint,
			RevokeEndpoint:        DefaultStravaRevokeEndpoint,
			Scopes:                []string{"read", "activity:read_all"},
			APIBaseURL:            DefaultStravaAPIBaseURL,
		},
		Gemini: GeminiConfig{
			Model:       DefaultGeminiModel,
			Temperature: 0.7,
			Timeout:     90 * time.Second,
		},
		State: StateConfig{
			TTL: 10 * time.Minute,
		},
		TokenStore: TokenStoreConfig{
			Driver: "memory",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Mongo: MongoConfig{
			Database:   "training",
			Collection: "strava_tokens",
		},
		RateLimit: RateLimitConfig{
			RPS:   0.2,
			Burst: 3,
		},
	}
}

// LoadConfig : читает yaml (если файл есть), затем переменные окружения и .env
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	if path != "" {
		file, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
		default:
			if err := yaml.Unmarshal(file, &cfg); err != nil {
				return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("ошибка чтения .env: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyEnv(cfg *AppConfig) error {
	setString(&cfg.Server.Port, "PORT")
	setString(&cfg.Server.Env, "NODE_ENV")
	setString(&cfg.Server.Env, "ENV")
	setString(&cfg.Server.APIVersion, "API_VERSION")
	setString(&cfg.Server.CORSOrigin, "CORS_ORIGIN")

	setString(&cfg.Strava.ClientID, "STRAVA_CLIENT_ID")
	setString(&cfg.Strava.ClientSecret, "STRAVA_CLIENT_SECRET")
	setString(&cfg.Strava.AuthorizationEndpoint, "STRAVA_AUTHORIZE_URL")
	setString(&cfg.Strava.TokenEndpoint, "STRAVA_TOKEN_URL")
	setString(&cfg.Strava.RevokeEndpoint, "STRAVA_REVOKE_URL")
	setString(&cfg.Strava.APIBaseURL, "STRAVA_API_BASE_URL")
	if v, ok := os.LookupEnv("STRAVA_SCOPES"); ok && v != "" {
		cfg.Strava.Scopes = splitList(v)
	}

	setString(&cfg.Gemini.APIKey, "GEMINI_API_KEY")
	setString(&cfg.Gemini.Model, "GEMINI_MODEL")
	setString(&cfg.Gemini.BaseURL, "GEMINI_BASE_URL")

	setString(&cfg.State.Secret, "STATE_SECRET")

	setString(&cfg.TokenStore.Driver, "TOKEN_STORE_DRIVER")
	setString(&cfg.TokenStore.DSN, "TOKEN_STORE_DSN")
	setString(&cfg.TokenStore.EncryptionKey, "TOKEN_ENCRYPTION_KEY")

	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")

	setString(&cfg.Mongo.URI, "MONGO_URI")
	setString(&cfg.Mongo.Database, "MONGO_DATABASE")

	setString(&cfg.Archive.Bucket, "ARCHIVE_BUCKET")
	setString(&cfg.Archive.Region, "ARCHIVE_REGION")
	setString(&cfg.Archive.Endpoint, "ARCHIVE_ENDPOINT")

	if v, ok := os.LookupEnv("GEMINI_TEMPERATURE"); ok && v != "" {
		temperature, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return fmt.Errorf("GEMINI_TEMPERATURE: %w", err)
		}
		cfg.Gemini.Temperature = float32(temperature)
	}
	if v, ok := os.LookupEnv("REDIS_DB"); ok && v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("REDIS_DB: %w", err)
		}
		cfg.Redis.DB = db
	}
	if v, ok := os.LookupEnv("HTTP_TIMEOUT"); ok && v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("HTTP_TIMEOUT: %w", err)
		}
		cfg.Server.HTTPTimeout = timeout
	}
	if v, ok := os.LookupEnv("RATE_LIMIT_RPS"); ok && v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT_RPS: %w", err)
		}
		cfg.RateLimit.RPS = rps
	}
	if v, ok := os.LookupEnv("RATE_LIMIT_BURST"); ok && v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT_BURST: %w", err)
		}
		cfg.RateLimit.Burst = burst
	}

	return nil
}

// Validate : проверяет обязательные секреты
func (c *AppConfig) Validate() error {
	var missing []string
	if c.Strava.ClientID == "" {
		missing = append(missing, "STRAVA_CLIENT_ID")
	}
	if c.Strava.ClientSecret == "" {
		missing = append(missing, "STRAVA_CLIENT_SECRET")
	}
	if c.Gemini.APIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("не заданы обязательные параметры: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c *AppConfig) IsProduction() bool {
	return c.Server.Env == "production"
}

// APIPrefix : версионированный префикс маршрутов, например /api/v1
func (c *AppConfig) APIPrefix() string {
	return "/api/" + c.Server.APIVersion
}

func SetupServer(port string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server, router
}

func setString(target *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*target = v
	}
}

func splitList(v string) []string {
	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
