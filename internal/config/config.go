// Package config loads nftmeta configuration from a .env file and the
// environment.
package config

import (
	"time"

	"github.com/dexter-zone/nftmeta"
	"github.com/kelseyhightower/envconfig"
)

// Defaults. Struct tag defaults below must stay in sync with these.
const (
	DefaultPageIndex = 3
	DefaultAPIURL    = "https://api.figma.com"
	DefaultOutputDir = "metadata"
	DefaultRateLimit = 1.0
	DefaultTimeout   = 60 * time.Second
	DefaultLogLevel  = "INFO"
	DefaultLogFormat = "text"
)

// Config holds all environment-based configuration.
type Config struct {
	// FileKey identifies the Figma file (the key in its URL).
	// Env: FIGMA_FILE_KEY
	FileKey string `envconfig:"FIGMA_FILE_KEY"`

	// APIKey is the Figma personal access token.
	// Env: FIGMA_API_KEY
	APIKey string `envconfig:"FIGMA_API_KEY"`

	// PageIndex is the zero-based index of the page to export.
	// Env: FIGMA_PAGE_INDEX (default: 3)
	PageIndex int `envconfig:"FIGMA_PAGE_INDEX" default:"3"`

	// APIURL is the Figma REST API root.
	// Env: FIGMA_API_URL (default: https://api.figma.com)
	APIURL string `envconfig:"FIGMA_API_URL" default:"https://api.figma.com"`

	// OutputDir receives one frame_<id>.json per frame.
	// Env: NFTMETA_OUTPUT_DIR (default: metadata)
	OutputDir string `envconfig:"NFTMETA_OUTPUT_DIR" default:"metadata"`

	// Placeholders are property values that mean "no trait".
	// Env: NFTMETA_PLACEHOLDERS (comma-separated)
	Placeholders []string `envconfig:"NFTMETA_PLACEHOLDERS" default:"No Attribute,No Expression,No Accessory,No ears"`

	// DBPath enables the SQLite export history when set.
	// Env: NFTMETA_DB
	DBPath string `envconfig:"NFTMETA_DB"`

	// RateLimit caps requests per second to the Figma API.
	// Env: NFTMETA_RATE_LIMIT (default: 1)
	RateLimit float64 `envconfig:"NFTMETA_RATE_LIMIT" default:"1"`

	// Timeout bounds a single Figma API request.
	// Env: NFTMETA_TIMEOUT (default: 60s)
	Timeout time.Duration `envconfig:"NFTMETA_TIMEOUT" default:"60s"`

	// LogLevel is the log verbosity level.
	// Env: NFTMETA_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"NFTMETA_LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (text or json).
	// Env: NFTMETA_LOG_FORMAT (default: text)
	LogFormat string `envconfig:"NFTMETA_LOG_FORMAT" default:"text"`
}

// Validate returns an error if settings required to talk to Figma are missing.
func (c Config) Validate() error {
	if c.FileKey == "" {
		return nftmeta.Errorf(nftmeta.EINVALID, "FIGMA_FILE_KEY not set. Copy the key from the Figma file URL or pass --file-key")
	}
	if c.APIKey == "" {
		return nftmeta.Errorf(nftmeta.EINVALID, "FIGMA_API_KEY not set. Create a personal access token in the Figma account settings")
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load loads configuration from a .env file (optional) and environment
// variables. Variables already set in the environment win over the file.
func Load(envPath string) (Config, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return Config{}, err
	}
	return LoadFromEnv()
}
