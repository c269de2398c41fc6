package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Log      LogConfig
	HTTP     HTTPConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Upload   UploadConfig
	Storage  StorageConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	MaxHeaderBytes   int
	MaxBodySize      int64
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
	TrustedProxies   []string
}

// StoreConfig selects the key-value store backend
type StoreConfig struct {
	Driver     string // memory, sqlite, postgres, redis
	SQLitePath string // path of the embedded database file
}

// DatabaseConfig holds PostgreSQL connection settings for the postgres
// store driver
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // in minutes
	ConnMaxIdleTime int // in minutes
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig holds Redis connection settings for the redis store driver
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// UploadConfig holds file upload limits for the document and playlist
// modules
type UploadConfig struct {
	MaxFileBytes      int64
	AllowedExtensions []string
}

// StorageConfig holds object storage settings for offloading large
// document files
type StorageConfig struct {
	Enabled         bool
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
	// Files larger than this stay in object storage instead of being
	// embedded as a data URL
	OffloadThresholdBytes int64
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with BRIDAL_ prefix (e.g., BRIDAL_DATABASE_PASSWORD)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./backend")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("BRIDAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			IdleTimeout:      v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:   v.GetInt("http.max_header_bytes"),
			MaxBodySize:      v.GetInt64("http.max_body_size"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods: v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders: v.GetStringSlice("http.cors_allow_headers"),
			TrustedProxies:   v.GetStringSlice("http.trusted_proxies"),
		},
		Store: StoreConfig{
			Driver:     v.GetString("store.driver"),
			SQLitePath: v.GetString("store.sqlite_path"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			DBName:          v.GetString("database.dbname"),
			SSLMode:         v.GetString("database.sslmode"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetInt("database.conn_max_lifetime"),
			ConnMaxIdleTime: v.GetInt("database.conn_max_idle_time"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Upload: UploadConfig{
			MaxFileBytes:      v.GetInt64("upload.max_file_bytes"),
			AllowedExtensions: v.GetStringSlice("upload.allowed_extensions"),
		},
		Storage: StorageConfig{
			Enabled:               v.GetBool("storage.enabled"),
			Endpoint:              v.GetString("storage.endpoint"),
			Region:                v.GetString("storage.region"),
			Bucket:                v.GetString("storage.bucket"),
			AccessKeyID:           v.GetString("storage.access_key_id"),
			SecretAccessKey:       v.GetString("storage.secret_access_key"),
			UsePathStyle:          v.GetBool("storage.use_path_style"),
			OffloadThresholdBytes: v.GetInt64("storage.offload_threshold_bytes"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "bridallink-backend"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		if cfg.App.Env == "production" {
			cfg.Log.Format = "json"
		} else {
			cfg.Log.Format = "console"
		}
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20
	}
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 10 << 20
	}
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "X-Request-ID", "Accept", "Origin"}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "sqlite"
	}
	if cfg.Store.SQLitePath == "" {
		cfg.Store.SQLitePath = "bridallink.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "postgres"
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = "bridallink"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 60
	}
	if cfg.Database.ConnMaxIdleTime == 0 {
		cfg.Database.ConnMaxIdleTime = 30
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Upload.MaxFileBytes == 0 {
		cfg.Upload.MaxFileBytes = 5 << 20
	}
	if len(cfg.Upload.AllowedExtensions) == 0 {
		cfg.Upload.AllowedExtensions = []string{".pdf", ".doc", ".docx", ".jpg", ".jpeg", ".png", ".txt", ".csv"}
	}
	if cfg.Storage.Region == "" {
		cfg.Storage.Region = "us-east-1"
	}
	if cfg.Storage.OffloadThresholdBytes == 0 {
		cfg.Storage.OffloadThresholdBytes = 1 << 20
	}
}

// validate checks the configuration for invalid combinations
func (cfg *Config) validate() error {
	switch cfg.Store.Driver {
	case "memory", "sqlite", "postgres", "redis":
	default:
		return fmt.Errorf("invalid store driver %q: must be memory, sqlite, postgres or redis", cfg.Store.Driver)
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("invalid log level %q", cfg.Log.Level)
	}

	switch cfg.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q: must be json or console", cfg.Log.Format)
	}

	if cfg.Storage.Enabled && cfg.Storage.Bucket == "" {
		return fmt.Errorf("storage.bucket is required when object storage is enabled")
	}

	return nil
}

// IsProduction reports whether the app runs in production mode
func (cfg *Config) IsProduction() bool {
	return cfg.App.Env == "production"
}
