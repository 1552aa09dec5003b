// Package config provides application configuration through environment variables.
package config

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	"github.com/Lzww0608/uuidgen"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string `json:"log_level"`

	// NodeID is the 48-bit node identifier stamped into v1 and v6 UUIDs,
	// written as six hex octets ("01:23:45:67:89:ab", "01-23-...", or bare).
	NodeID string `json:"node_id"`
	// ClockSequence seeds the 14-bit v1/v6 clock sequence.
	ClockSequence int `json:"clock_sequence"`

	// DefaultType is the UUID version used when --type is not given.
	DefaultType string `json:"default_type"`
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		LogLevel:      env.GetString("LOG_LEVEL", "warn"),
		NodeID:        env.GetString("UUIDGEN_NODE_ID", "01:23:45:67:89:ab"),
		ClockSequence: env.GetInt("UUIDGEN_CLOCK_SEQ", 42),
		DefaultType:   env.GetString("UUIDGEN_DEFAULT_TYPE", "v4"),
	}
}

// Validate checks that every value can be used as configured.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.NodeID, validation.Required, validation.By(func(value interface{}) error {
			_, err := ParseNode(value.(string))
			return err
		})),
		validation.Field(&c.ClockSequence, validation.Min(0), validation.Max(0x3FFF)),
		validation.Field(&c.DefaultType, validation.Required, validation.By(func(value interface{}) error {
			_, err := uuidgen.ParseVersion(value.(string))
			return err
		})),
	)
}

// Node returns NodeID decoded into six bytes.
func (c *Config) Node() ([6]byte, error) {
	return ParseNode(c.NodeID)
}

// SlogLevel maps LogLevel onto a slog level, defaulting to warn.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// ParseNode decodes six hex octets, optionally separated by ':' or '-'.
func ParseNode(s string) ([6]byte, error) {
	var node [6]byte
	clean := strings.NewReplacer(":", "", "-", "").Replace(s)
	if len(clean) != 12 {
		return node, fmt.Errorf("node id %q must be 6 octets", s)
	}
	if _, err := hex.Decode(node[:], []byte(clean)); err != nil {
		return node, fmt.Errorf("node id %q is not hex: %w", s, err)
	}
	return node, nil
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
