package config

import (
	"context"
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const EnvProduction = "production"

type Config struct {
	AppEnv     string `env:"APP_ENV, default=development"`
	ServerPort string `env:"SERVER_PORT, default=8080"`
	LogLevel   string `env:"LOG_LEVEL, default=info"`

	// TrustedProxies lists the IPs or CIDRs whose X-Forwarded-For header is
	// believed. Empty means the socket peer is always the client.
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	DatabaseURL string `env:"DATABASE_URL, required"`

	JWT       JWTConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Minio     MinioConfig
	Upload    UploadConfig
	Audit     AuditConfig
}

type JWTConfig struct {
	Secret   string        `env:"JWT_SECRET, required"`
	Issuer   string        `env:"JWT_ISSUER, default=property-portal"`
	TokenTTL time.Duration `env:"TOKEN_TTL, default=24h"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type RateLimitConfig struct {
	Requests int           `env:"RATE_LIMIT_REQUESTS, default=100"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW, default=15m"`
}

type MinioConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	Bucket    string `env:"MINIO_BUCKET, default=property-portal"`
	UseSSL    bool   `env:"MINIO_USE_SSL, default=false"`
	PublicURL string `env:"MINIO_PUBLIC_URL"`
}

type UploadConfig struct {
	MaxBytes int64 `env:"UPLOAD_MAX_BYTES, default=5242880"`
}

type AuditConfig struct {
	RetentionDays int `env:"AUDIT_RETENTION_DAYS, default=30"`
}

// Load reads an optional .env file and then the process environment.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom populates a Config from lookuper.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.RateLimit.Requests <= 0 {
		return nil, fmt.Errorf("load config: RATE_LIMIT_REQUESTS must be positive")
	}
	if cfg.RateLimit.Window <= 0 {
		return nil, fmt.Errorf("load config: RATE_LIMIT_WINDOW must be positive")
	}
	for _, proxy := range cfg.TrustedProxies {
		if !validProxy(proxy) {
			return nil, fmt.Errorf("load config: TRUSTED_PROXIES entry %q is not an IP or CIDR", proxy)
		}
	}
	return &cfg, nil
}

func validProxy(v string) bool {
	if strings.Contains(v, "/") {
		_, _, err := net.ParseCIDR(v)
		return err == nil
	}
	return net.ParseIP(v) != nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

func (c *Config) MinioEnabled() bool {
	return c.Minio.Endpoint != ""
}

func (c *Config) RedisEnabled() bool {
	return c.Redis.Addr != ""
}
