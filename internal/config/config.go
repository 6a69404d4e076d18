package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Server
	Env  string
	Port string

	// Database
	DBDriver   string // postgres or sqlite
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string // sqlite file path

	// JWT
	JWTSecret                 string
	JWTExpirationDur          time.Duration
	RefreshTokenExpirationDur time.Duration

	// Redis-backed read cache
	RedisEnabled  bool
	RedisHost     string
	RedisPort     int
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	// Pipeline (scheduled snapshot job)
	PipelineAPIKey string

	// Demo data
	SeedDemoData      bool
	SeedAdminPassword string
}

var appConfig *Config

// defaults mirrors the values a local developer gets without any .env file.
var defaults = map[string]any{
	"env":                 "development",
	"port":                "8080",
	"db_driver":           "postgres",
	"db_host":             "localhost",
	"db_port":             "5432",
	"db_user":             "armory",
	"db_password":         "armory",
	"db_name":             "armory",
	"db_sslmode":          "disable",
	"db_path":             "data/armory.db",
	"jwt_secret":          "fallback-secret-key-for-dev-only",
	"jwt_expires_in":      "15m",
	"refresh_expires_in":  "168h",
	"redis_enabled":       false,
	"redis_host":          "localhost",
	"redis_port":          6379,
	"redis_password":      "",
	"redis_db":            0,
	"cache_ttl":           "5m",
	"pipeline_api_key":    "",
	"seed_demo_data":      false,
	"seed_admin_password": "admin123",
}

// Load loads configuration from an optional config.yaml, the .env file and
// environment variables. Precedence, highest first: ARMORY_-prefixed env,
// bare env (PORT, DB_HOST, ...), config.yaml, built-in defaults.
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	v := newViper()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	config := &Config{
		// Server
		Env:  v.GetString("env"),
		Port: v.GetString("port"),

		// Database
		DBDriver:   strings.ToLower(v.GetString("db_driver")),
		DBHost:     v.GetString("db_host"),
		DBPort:     v.GetString("db_port"),
		DBUser:     v.GetString("db_user"),
		DBPassword: v.GetString("db_password"),
		DBName:     v.GetString("db_name"),
		DBSSLMode:  v.GetString("db_sslmode"),
		DBPath:     v.GetString("db_path"),

		// JWT
		JWTSecret: v.GetString("jwt_secret"),

		// Redis
		RedisEnabled:  v.GetBool("redis_enabled"),
		RedisHost:     v.GetString("redis_host"),
		RedisPort:     v.GetInt("redis_port"),
		RedisPassword: v.GetString("redis_password"),
		RedisDB:       v.GetInt("redis_db"),

		PipelineAPIKey:    v.GetString("pipeline_api_key"),
		SeedDemoData:      v.GetBool("seed_demo_data"),
		SeedAdminPassword: v.GetString("seed_admin_password"),
	}

	config.JWTExpirationDur = parseDuration(v, "jwt_expires_in", 15*time.Minute)
	config.RefreshTokenExpirationDur = parseDuration(v, "refresh_expires_in", 7*24*time.Hour)
	config.CacheTTL = parseDuration(v, "cache_ttl", 5*time.Minute)

	appConfig = config
	return config, nil
}

// newViper builds a viper instance with defaults, the optional config file
// and both env naming schemes bound for every known key.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	for key, value := range defaults {
		v.SetDefault(key, value)
		// ARMORY_DB_HOST wins over DB_HOST.
		_ = v.BindEnv(key, "ARMORY_"+strings.ToUpper(key), strings.ToUpper(key))
	}
	return v
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// Set replaces the process-wide configuration. Intended for tests.
func Set(cfg *Config) {
	appConfig = cfg
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", strings.ToUpper(key), raw, fallback)
		return fallback
	}
	return d
}
