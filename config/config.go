package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSourceHTMLPath is the saved CBIC goods-rate page, relative to the project root.
const DefaultSourceHTMLPath = "Goods & Service Tax, CBIC, Government of India __ GST Goods and Services Rates.html"

// Config holds all application configuration loaded from environment variables.
type Config struct {
	SourceHTMLPath string
	SourceURL      string
	RatesJSONPath  string
	TableSelector  string
	CSVOutputPath  string

	ChromeBin    string
	MaxRetries   int
	FetchTimeout time.Duration

	LogLevel string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		SourceHTMLPath: getEnv("SOURCE_HTML_PATH", DefaultSourceHTMLPath),
		SourceURL:      getEnv("SOURCE_URL", ""),
		RatesJSONPath:  getEnv("RATES_JSON_PATH", "./data/gst-goods-rates.json"),
		TableSelector:  getEnv("TABLE_SELECTOR", "#goods_table"),
		CSVOutputPath:  getEnv("CSV_OUTPUT_PATH", "./output/hsn_codes.csv"),

		ChromeBin:    getEnv("CHROME_BIN", ""),
		MaxRetries:   getEnvInt("MAX_RETRIES", 3),
		FetchTimeout: getEnvDuration("FETCH_TIMEOUT", 90*time.Second),

		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "gst"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "gst123"),
		PostgresDB:       getEnv("POSTGRES_DB", "gst_rates"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
	}
}

// Debug reports whether debug logging was requested.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration strings ("30s") or a bare number of seconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if n, err := strconv.Atoi(val); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}
