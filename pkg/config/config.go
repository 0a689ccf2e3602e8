package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Matcher  MatcherConfig
	Catalog  CatalogConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	StaticDir    string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	Enabled           bool
	SecretKey         string
	Expiration        time.Duration
	AdminPasswordHash string
}

type MatcherConfig struct {
	Scorer   string // cosine or jaccard
	Stemming bool
}

// CatalogConfig selects where training definitions come from.
type CatalogConfig struct {
	Source string // builtin, file or postgres
	File   string
}

const (
	CatalogSourceBuiltin  = "builtin"
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

func Load() (*Config, error) {
	// .env is optional, plain environment variables work as well (Docker/K8s)
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
			StaticDir:    getEnv("SERVER_STATIC_DIR", ""),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "intent_chatbot"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Enabled:           getBool("AUTH_ENABLED", false),
			SecretKey:         getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration:        time.Duration(jwtExp) * time.Hour,
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Matcher: MatcherConfig{
			Scorer:   getEnv("MATCHER_SCORER", "cosine"),
			Stemming: getBool("MATCHER_STEMMING", true),
		},
		Catalog: CatalogConfig{
			Source: getEnv("CATALOG_SOURCE", CatalogSourceFile),
			File:   getEnv("CATALOG_FILE", "training_data.json"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return value
}
