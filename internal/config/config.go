package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host    string `yaml:"host" env:"SERVER_HOST"`
		Port    int    `yaml:"port" env:"SERVER_PORT"`
		Env     string `yaml:"env" env:"SERVER_ENV"`
		BaseURL string `yaml:"base_url" env:"BASE_URL"` // Public origin used in verification links
	} `yaml:"server"`

	Database struct {
		Driver       string `yaml:"driver" env:"DATABASE_DRIVER"` // postgres, mysql
		DSN          string `yaml:"url" env:"DATABASE_URL"`
		MaxOpenConns int    `yaml:"max_open_conns" env:"DATABASE_MAX_OPEN_CONNS"`
		MaxIdleConns int    `yaml:"max_idle_conns" env:"DATABASE_MAX_IDLE_CONNS"`
		AutoMigrate  bool   `yaml:"auto_migrate" env:"DATABASE_AUTO_MIGRATE"`
	} `yaml:"database"`

	JWT struct {
		Secret     string `yaml:"secret" env:"JWT_SECRET"`
		TTLMinutes int    `yaml:"ttl_minutes" env:"JWT_TTL_MINUTES"`
	} `yaml:"jwt"`

	Email struct {
		Enabled      bool   `yaml:"enabled" env:"EMAIL_ENABLED"` // Turns email verification on
		SMTPHost     string `yaml:"smtp_host" env:"SMTP_HOST"`
		SMTPPort     int    `yaml:"smtp_port" env:"SMTP_PORT"`
		SMTPUsername string `yaml:"smtp_user" env:"SMTP_USER"`
		SMTPPassword string `yaml:"smtp_password" env:"SMTP_PASSWORD"`
		FromEmail    string `yaml:"from_email" env:"EMAIL_FROM"`
		FromName     string `yaml:"from_name" env:"EMAIL_FROM_NAME"`

		// SMTPTimeoutSeconds caps one delivery, dial to QUIT
		SMTPTimeoutSeconds int `yaml:"smtp_timeout_seconds" env:"SMTP_TIMEOUT_SECONDS"`
	} `yaml:"email"`

	Storage struct {
		Type      string `yaml:"type" env:"STORAGE_TYPE"`           // local, s3
		BasePath  string `yaml:"base_path" env:"STORAGE_BASE_PATH"` // For local storage
		BaseURL   string `yaml:"base_url" env:"STORAGE_BASE_URL"`   // Public URL base
		Bucket    string `yaml:"bucket" env:"STORAGE_BUCKET"`
		Region    string `yaml:"region" env:"STORAGE_REGION"`
		AccessKey string `yaml:"access_key" env:"STORAGE_ACCESS_KEY"`
		SecretKey string `yaml:"secret_key" env:"STORAGE_SECRET_KEY"`
		Endpoint  string `yaml:"endpoint" env:"STORAGE_ENDPOINT"` // Custom S3 endpoint (MinIO, R2)
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64 `yaml:"max_size" env:"UPLOAD_MAX_SIZE"`
		ImageQuality int   `yaml:"image_quality" env:"UPLOAD_IMAGE_QUALITY"`
		AvatarSize   int   `yaml:"avatar_size" env:"UPLOAD_AVATAR_SIZE"`
	} `yaml:"upload"`
}

var AppConfig *Config

// Load reads the YAML file at path (a missing file is not an error),
// applies environment overrides and fills defaults.
func Load(path string) (*Config, error) {
	var cfg Config

	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file at %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// env-only configuration
	default:
		return nil, fmt.Errorf("failed to open config file at %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("jwt secret is required (JWT_SECRET)")
	}
	switch c.Database.Driver {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("database url is required (DATABASE_URL)")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = fmt.Sprintf("http://localhost:%d", c.Server.Port)
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.JWT.TTLMinutes <= 0 {
		c.JWT.TTLMinutes = 60
	}
	if c.Email.SMTPPort == 0 {
		c.Email.SMTPPort = 587
	}
	if c.Email.SMTPTimeoutSeconds <= 0 {
		c.Email.SMTPTimeoutSeconds = 30
	}
	if c.Storage.Type == "" {
		c.Storage.Type = "local"
	}
	if c.Storage.BasePath == "" {
		c.Storage.BasePath = "./public"
	}
	if c.Upload.MaxSize <= 0 {
		c.Upload.MaxSize = 5 * 1024 * 1024 // 5MB
	}
	if c.Upload.ImageQuality <= 0 || c.Upload.ImageQuality > 100 {
		c.Upload.ImageQuality = 85
	}
	if c.Upload.AvatarSize <= 0 {
		c.Upload.AvatarSize = 250
	}
}

// LoadConfig loads from CONFIG_PATH (default config/config.yaml) into AppConfig.
func LoadConfig() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := Load(configPath)
	if err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

func GetConfig() *Config {
	return AppConfig
}
