package config

import (
	"fmt"  // Error wrapping
	"time" // Cache TTL

	"github.com/ilyakaznacheev/cleanenv" // Environment binding
	"github.com/joho/godotenv"           // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort    string        `env:"APP_PORT" env-default:"4000"`              // Application port
	DBDriver   string        `env:"DB_DRIVER" env-default:"mysql"`            // mysql or sqlite
	DBUser     string        `env:"DB_USER"`                                  // Database user
	DBPassword string        `env:"DB_PASSWORD"`                              // Database password
	DBHost     string        `env:"DB_HOST" env-default:"127.0.0.1"`          // Database host
	DBPort     string        `env:"DB_PORT" env-default:"3306"`               // Database port
	DBName     string        `env:"DB_NAME" env-default:"budgetbloom"`        // Database name
	SQLitePath string        `env:"SQLITE_PATH" env-default:"budgetbloom.db"` // SQLite file when DB_DRIVER=sqlite
	RedisAddr  string        `env:"REDIS_ADDR"`                               // Redis server address, empty disables caching
	RedisPass  string        `env:"REDIS_PASS"`                               // Redis password
	RedisDB    int           `env:"REDIS_DB" env-default:"0"`                 // Redis database number
	CacheTTL   time.Duration `env:"CACHE_TTL" env-default:"60s"`              // Goal summary cache TTL
	LogLevel   string        `env:"LOG_LEVEL" env-default:"info"`             // Logrus level
	IsProd     bool          `env:"IS_PROD" env-default:"false"`              // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // Load .env file if present
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return &cfg, nil
}

// DSN builds the database source name for the configured driver
func (c *Config) DSN() string {
	if c.DBDriver == "sqlite" {
		return c.SQLitePath
	}
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}
