package config

import "time"

type ServerConfig struct {
	Port        string        `yaml:"port"`
	Env         string        `yaml:"env"`
	APIVersion  string        `yaml:"api_version"`
	CORSOrigin  string        `yaml:"cors_origin"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
}

type StravaConfig struct {
	ClientID              string   `yaml:"client_id"`
	ClientSecret          string   `yaml:"client_secret"`
	AuthorizationEndpoint string   `yaml:"authorization_endpoint"`
	TokenEndpoint         string   `yaml:"token_endpoint"`
	RevokeEndpoint        string   `yaml:"revoke_endpoint"`
	Scopes                []string `yaml:"scopes"`
	APIBaseURL            string   `yaml:"api_base_url"`
}

type GeminiConfig struct {
	APIKey      string        `yaml:"api_key"`
	Model       string        `yaml:"model"`
	BaseURL     string        `yaml:"base_url"`
	Temperature float32       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
}

// StateConfig : подпись параметра state для OAuth redirect
type StateConfig struct {
	Secret string        `yaml:"secret"`
	TTL    time.Duration `yaml:"ttl"`
}

// TokenStoreConfig : выбор хранилища токенов Strava
// driver: memory | redis | postgres | sqlite | mongo
type TokenStoreConfig struct {
	Driver        string `yaml:"driver"`
	DSN           string `yaml:"dsn"`
	EncryptionKey string `yaml:"encryption_key"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

type MongoConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

// ArchiveConfig : S3 архив сгенерированных планов, пустой bucket выключает архив
type ArchiveConfig struct {
	Bucket   string `yaml:"bucket"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
	Local    bool   `yaml:"local"`
}

type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}
