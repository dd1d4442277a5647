// Package config предоставляет структуры и функции для загрузки конфигурации сервиса
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env                     string `yaml:"env" env:"ENV" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING" env-required:"true"`
	MigrationsPath          string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"./migrations"`
	HTTPServer              `yaml:"http_server"`
	JWTToken                `yaml:"jwttoken"`
	RateLimit               `yaml:"rate_limit"`
	AuthRateLimit           `yaml:"auth_rate_limit"`
	CORS                    `yaml:"cors"`
	Media                   `yaml:"media"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// JWTToken структура для работы с jwt-токеном
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET_KEY" env-required:"true"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"24h"`
}

// RateLimit общий лимит запросов к API (token bucket)
type RateLimit struct {
	RPS   float64 `yaml:"rps" env-default:"50"`
	Burst int     `yaml:"burst" env-default:"100"`
}

// AuthRateLimit лимит запросов к регистрации и входу с одного IP
type AuthRateLimit struct {
	Requests int           `yaml:"requests" env-default:"10"`
	Window   time.Duration `yaml:"window" env-default:"1m"`
}

// CORS разрешённые источники запросов
type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
}

// Media настройки хранилища изображений рецептов
type Media struct {
	Backend string `yaml:"backend" env:"MEDIA_BACKEND" env-default:"file"`
	Dir     string `yaml:"dir" env-default:"./media"`
	BaseURL string `yaml:"base_url" env-default:"/media"`
	S3      S3     `yaml:"s3"`
}

// S3 подключение к S3-совместимому хранилищу
type S3 struct {
	Endpoint  string `yaml:"endpoint" env:"S3_ENDPOINT"`
	Region    string `yaml:"region" env:"S3_REGION" env-default:"us-east-1"`
	Bucket    string `yaml:"bucket" env:"S3_BUCKET"`
	AccessKey string `yaml:"access_key" env:"S3_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"S3_SECRET_KEY"`
	PublicURL string `yaml:"public_url" env:"S3_PUBLIC_URL"`
}

// Load читает конфиг из файла path; переменные окружения переопределяют значения из файла.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: file %s does not exist", op, path)
	}
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// Validate проверяет согласованность настроек.
func (c *Config) Validate() error {
	switch c.Env {
	case "local", "dev", "prod":
	default:
		return fmt.Errorf("unknown env %q", c.Env)
	}
	switch c.Media.Backend {
	case "file":
	case "s3":
		if c.Media.S3.Bucket == "" {
			return errors.New("media.s3.bucket is required for s3 backend")
		}
	default:
		return fmt.Errorf("unknown media backend %q", c.Media.Backend)
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("rate_limit.rps and rate_limit.burst must be positive")
	}
	return nil
}

// MustLoad загружает конфиг по пути из CONFIG_PATH и завершает процесс при ошибке
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"MigrationsPath: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"JWTToken:\n"+
			"  TokenTTL: %s\n"+
			"RateLimit: %.1f rps, burst %d\n"+
			"AuthRateLimit: %d per %s\n"+
			"CORS: %v\n"+
			"Media: %s\n",
		c.Env,
		c.MigrationsPath,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.TokenTTL,
		c.RateLimit.RPS,
		c.RateLimit.Burst,
		c.AuthRateLimit.Requests,
		c.AuthRateLimit.Window,
		c.AllowedOrigins,
		c.Media.Backend,
	)
}
