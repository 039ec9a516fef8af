package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP Server
	Port string

	// Memory document
	MemoryPath string

	// KPI history (SQLite); empty path disables the history store
	HistoryDBPath string

	// AMQP; empty URL disables event publishing
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// History listing
	HistoryLimit int
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8012"),
		MemoryPath:    getEnv("MEMORY_PATH", "./data/memory.json"),
		HistoryDBPath: getEnv("HISTORY_DB_PATH", "./data/pal.db"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "pal"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "ledger_events"),

		HistoryLimit: getEnvInt("HISTORY_LIMIT", 50),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	// Validate memory document path
	if c.MemoryPath == "" {
		errors = append(errors, "memory document path cannot be empty")
	} else if err := ensureDir(c.MemoryPath); err != nil {
		errors = append(errors, fmt.Sprintf("cannot create memory document directory: %v", err))
	}

	// Validate history database path if history is enabled
	if c.HistoryDBPath != "" {
		if err := ensureDir(c.HistoryDBPath); err != nil {
			errors = append(errors, fmt.Sprintf("cannot create history database directory: %v", err))
		}
	}

	// Validate AMQP URL if provided
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.HistoryLimit < 1 || c.HistoryLimit > 1000 {
		errors = append(errors, fmt.Sprintf("invalid history limit %d: must be between 1 and 1000", c.HistoryLimit))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
