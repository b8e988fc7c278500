package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Backend selection values for CMS_BACKEND.
const (
	BackendLocal = "local"
	BackendMongo = "mongo"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	CMS       CMSConfig
	MongoDB   MongoDBConfig
	Redis     RedisConfig
	Admin     AdminConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// CMSConfig selects and parameterizes the content-store backend. Backend
// choice is explicit configuration; call sites never know which one they got.
type CMSConfig struct {
	Backend   string
	LocalPath string
	Seed      bool
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// AdminConfig is the placeholder admin credential pair. Not a security
// design; a real deployment fronts the admin area with an identity provider.
type AdminConfig struct {
	Email      string
	Password   string
	SessionTTL time.Duration
}

type JWTConfig struct {
	Secret         string
	AccessTokenTTL time.Duration
}

type RateLimitConfig struct {
	Enabled       bool
	UseRedis      bool
	RPS           float64
	Burst         int
	WindowSeconds int
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "5080")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("CMS_BACKEND", BackendLocal)
	viper.SetDefault("CMS_LOCAL_PATH", "leadcore-cms.db")
	viper.SetDefault("CMS_SEED", true)
	viper.SetDefault("MONGODB_DATABASE", "leadcore")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("ADMIN_SESSION_TTL", 10080)
	viper.SetDefault("JWT_ACCESS_TOKEN_TTL", 15)
	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_RPS", 10.0)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		CMS: CMSConfig{
			Backend:   viper.GetString("CMS_BACKEND"),
			LocalPath: viper.GetString("CMS_LOCAL_PATH"),
			Seed:      viper.GetBool("CMS_SEED"),
		},
		MongoDB: MongoDBConfig{
			URI:      viper.GetString("MONGODB_URI"),
			Database: viper.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		},
		Admin: AdminConfig{
			Email:      viper.GetString("ADMIN_EMAIL"),
			Password:   os.Getenv("ADMIN_PASSWORD"),
			SessionTTL: time.Duration(viper.GetInt("ADMIN_SESSION_TTL")) * time.Minute,
		},
		JWT: JWTConfig{
			Secret:         os.Getenv("JWT_SECRET"),
			AccessTokenTTL: time.Duration(viper.GetInt("JWT_ACCESS_TOKEN_TTL")) * time.Minute,
		},
		RateLimit: RateLimitConfig{
			Enabled:       viper.GetBool("RATE_LIMIT_ENABLED"),
			UseRedis:      viper.GetBool("RATE_LIMIT_USE_REDIS"),
			RPS:           viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         viper.GetInt("RATE_LIMIT_BURST"),
			WindowSeconds: viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
	}

	switch cfg.CMS.Backend {
	case BackendLocal, BackendMongo:
	default:
		return nil, fmt.Errorf("unknown CMS_BACKEND %q (expected %q or %q)", cfg.CMS.Backend, BackendLocal, BackendMongo)
	}
	if cfg.CMS.Backend == BackendMongo && cfg.MongoDB.URI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required when CMS_BACKEND=%s", BackendMongo)
	}

	return cfg, nil
}
