package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
	BaseURL string `yaml:"base_url"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret    string `yaml:"secret"`
	Issuer    string `yaml:"issuer"`
	AccessTTL string `yaml:"access_ttl"`
}

type CacheConfig struct {
	TTL string `yaml:"ttl"`
}

type MailConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	From       string `yaml:"from"`
	FromName   string `yaml:"from_name"`
	TimeoutSec int    `yaml:"timeout_seconds"`
}

type S3Config struct {
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	PublicURL string `yaml:"public_url"`
}

type CORSConfig struct {
	Origins []string `yaml:"origins"`
}

type RateLimitConfig struct {
	Requests int    `yaml:"requests"`
	Window   string `yaml:"window"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App       AppConfig       `yaml:"app"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	JWT       JWTConfig       `yaml:"jwt"`
	Cache     CacheConfig     `yaml:"cache"`
	Mail      MailConfig      `yaml:"mail"`
	S3        S3Config        `yaml:"s3"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Casbin    CasbinConfig    `yaml:"casbin"`
}

// Config is the immutable runtime configuration, built once at startup and
// passed explicitly to every component that needs it.
type Config struct {
	Port            string
	GinMode         string
	BaseURL         string
	DSN             string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	JWTSecret       string
	JWTIssuer       string
	AccessTTL       time.Duration
	CacheTTL        time.Duration
	MailHost        string
	MailPort        int
	MailUsername    string
	MailPassword    string
	MailFrom        string
	MailFromName    string
	MailTimeout     time.Duration
	S3Region        string
	S3Bucket        string
	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicURL     string
	CORSOrigins     []string
	RateLimit       int
	RateLimitWindow time.Duration
	CasbinModelPath string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	path := env("CONFIG_PATH", "config/config.yml")
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accTTL, err := time.ParseDuration(configFile.JWT.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	cacheTTL, err := time.ParseDuration(configFile.Cache.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid cache TTL: %w", err)
	}

	rlWindow, err := time.ParseDuration(configFile.RateLimit.Window)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit window: %w", err)
	}

	mailTimeout := time.Duration(configFile.Mail.TimeoutSec) * time.Second
	if mailTimeout == 0 {
		mailTimeout = 10 * time.Second
	}

	return &Config{
		Port:            fmt.Sprintf("%d", configFile.App.Port),
		GinMode:         configFile.App.GinMode,
		BaseURL:         env("BASE_URL", configFile.App.BaseURL),
		DSN:             env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:       env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:   configFile.Redis.Password,
		RedisDB:         configFile.Redis.DB,
		JWTSecret:       env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:       configFile.JWT.Issuer,
		AccessTTL:       accTTL,
		CacheTTL:        cacheTTL,
		MailHost:        configFile.Mail.Host,
		MailPort:        configFile.Mail.Port,
		MailUsername:    env("MAIL_USERNAME", configFile.Mail.Username),
		MailPassword:    env("MAIL_PASSWORD", configFile.Mail.Password),
		MailFrom:        configFile.Mail.From,
		MailFromName:    configFile.Mail.FromName,
		MailTimeout:     mailTimeout,
		S3Region:        configFile.S3.Region,
		S3Bucket:        configFile.S3.Bucket,
		S3Endpoint:      configFile.S3.Endpoint,
		S3AccessKey:     env("S3_ACCESS_KEY", configFile.S3.AccessKey),
		S3SecretKey:     env("S3_SECRET_KEY", configFile.S3.SecretKey),
		S3PublicURL:     configFile.S3.PublicURL,
		CORSOrigins:     configFile.CORS.Origins,
		RateLimit:       configFile.RateLimit.Requests,
		RateLimitWindow: rlWindow,
		CasbinModelPath: configFile.Casbin.ModelPath,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
