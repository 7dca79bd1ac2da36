package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"

	MediaBackendDatabase = "database"
	MediaBackendMinio    = "minio"
)

type Config struct {
	Port        string `yaml:"port"`
	LogLevel    string `yaml:"logLevel"`
	FrontendURL string `yaml:"frontendURL"`
	// Primary store
	DBDriver      string `yaml:"dbDriver"`
	DBUrl         string `yaml:"databaseURL"`
	MongoURI      string `yaml:"mongoURI"`
	MongoDatabase string `yaml:"mongoDatabase"`
	// Media payloads
	MediaBackend      string `yaml:"mediaBackend"`
	MinioEndpoint     string `yaml:"minioEndpoint"`
	MinioAccessKey    string `yaml:"minioAccessKey"`
	MinioSecretKey    string `yaml:"minioSecretKey"`
	MinioBucket       string `yaml:"minioBucket"`
	MinioUseSSL       bool   `yaml:"minioUseSSL"`
	MaxUploadBytes    int64  `yaml:"maxUploadBytes"`
	MaxPostImages     int    `yaml:"maxPostImages"`
	MediaMaxDimension int    `yaml:"mediaMaxDimension"`
	// Redis/Upstash Configuration
	UpstashRedisURL      string `yaml:"redisURL"`
	UpstashRedisPassword string `yaml:"redisPassword"`
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int `yaml:"rateLimitWindowSeconds"`
	RateLimitLoginThreshold  int `yaml:"rateLimitLoginThreshold"`
	RateLimitUploadThreshold int `yaml:"rateLimitUploadThreshold"`
}

func defaults() *Config {
	return &Config{
		Port:                     "8080",
		LogLevel:                 "info",
		FrontendURL:              "http://localhost:3000",
		DBDriver:                 DriverPostgres,
		MongoDatabase:            "job_portal",
		MediaBackend:             MediaBackendDatabase,
		MinioBucket:              "job-portal-media",
		MaxUploadBytes:           5 << 20, // 5MB
		MaxPostImages:            5,
		MediaMaxDimension:        1600,
		RateLimitWindowSeconds:   60,
		RateLimitLoginThreshold:  10,
		RateLimitUploadThreshold: 20,
	}
}

func LoadConfig() (*Config, error) {
	// .env is only present locally
	_ = godotenv.Load()

	cfg := defaults()
	if path := getEnv("CONFIG_FILE", ""); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.FrontendURL = strings.TrimRight(getEnv("FRONTEND_URL", cfg.FrontendURL), "/")
	cfg.DBDriver = strings.ToLower(getEnv("DB_DRIVER", cfg.DBDriver))
	cfg.DBUrl = getEnv("DATABASE_URL", cfg.DBUrl)
	cfg.MongoURI = getEnv("MONGODB_URI", cfg.MongoURI)
	cfg.MongoDatabase = getEnv("MONGODB_DATABASE", cfg.MongoDatabase)
	cfg.MediaBackend = strings.ToLower(getEnv("MEDIA_BACKEND", cfg.MediaBackend))
	cfg.MinioEndpoint = getEnv("MINIO_ENDPOINT", cfg.MinioEndpoint)
	cfg.MinioAccessKey = getEnv("MINIO_ACCESS_KEY", cfg.MinioAccessKey)
	cfg.MinioSecretKey = getEnv("MINIO_SECRET_KEY", cfg.MinioSecretKey)
	cfg.MinioBucket = getEnv("MINIO_BUCKET", cfg.MinioBucket)
	cfg.MinioUseSSL = getEnvBool("MINIO_USE_SSL", cfg.MinioUseSSL)
	cfg.MaxUploadBytes = getEnvInt64("MAX_UPLOAD_BYTES", cfg.MaxUploadBytes)
	cfg.MaxPostImages = getEnvInt("MAX_POST_IMAGES", cfg.MaxPostImages)
	cfg.MediaMaxDimension = getEnvInt("MEDIA_MAX_DIMENSION", cfg.MediaMaxDimension)
	cfg.UpstashRedisURL = getEnv("UPSTASH_REDIS_URL", cfg.UpstashRedisURL)
	cfg.UpstashRedisPassword = getEnv("UPSTASH_REDIS_PASSWORD", cfg.UpstashRedisPassword)
	cfg.RateLimitWindowSeconds = getEnvInt("RATE_LIMIT_WINDOW_SECONDS", cfg.RateLimitWindowSeconds)
	cfg.RateLimitLoginThreshold = getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", cfg.RateLimitLoginThreshold)
	cfg.RateLimitUploadThreshold = getEnvInt("RATE_LIMIT_UPLOAD_THRESHOLD", cfg.RateLimitUploadThreshold)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.DBDriver == DriverPostgres && cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverMongo:
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q (use postgres or mongo)", c.DBDriver)
	}
	if c.DBDriver == DriverMongo && c.MongoURI == "" {
		return fmt.Errorf("config: MONGODB_URI is required when DB_DRIVER=mongo")
	}
	switch c.MediaBackend {
	case MediaBackendDatabase:
	case MediaBackendMinio:
		if c.MinioEndpoint == "" || c.MinioBucket == "" {
			return fmt.Errorf("config: MINIO_ENDPOINT and MINIO_BUCKET are required when MEDIA_BACKEND=minio")
		}
	default:
		return fmt.Errorf("config: unsupported MEDIA_BACKEND %q (use database or minio)", c.MediaBackend)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("config: MAX_UPLOAD_BYTES must be positive")
	}
	if c.MaxPostImages < 0 || c.MediaMaxDimension < 0 {
		return fmt.Errorf("config: MAX_POST_IMAGES and MEDIA_MAX_DIMENSION must be >= 0")
	}
	return nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
