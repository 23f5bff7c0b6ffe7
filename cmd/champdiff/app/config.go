package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/champdiff/pkg/constants"
	"github.com/agentstation/champdiff/pkg/errors"
)

// EnvPrefix namespaces every environment variable champdiff reads, apart
// from the shared LOG_* logging variables.
const EnvPrefix = "CHAMPDIFF"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose  bool
	Quiet    bool
	NoColor  bool
	Format   string
	LogLevel string

	// Config file
	ConfigFile string

	// Data Dragon configuration
	VersionsURL string
	CDNURL      string
	Locale      string
	Patch       string
	HTTPTimeout time.Duration

	// Logging configuration
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables (CHAMPDIFF_*)
// 3. .env files
// 4. Config file (configFile, or ~/.champdiff.yaml, or ./.champdiff.yaml)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("versions_url", constants.DefaultVersionsURL)
	v.SetDefault("cdn_url", constants.DefaultCDNURL)
	v.SetDefault("locale", constants.DefaultLocale)
	v.SetDefault("http_timeout", constants.DefaultHTTPTimeout)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "cannot read "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".champdiff")

		// A missing default config file is fine
		_ = v.ReadInConfig()
	}

	config := &Config{
		Verbose:  v.GetBool("verbose"),
		Quiet:    v.GetBool("quiet"),
		NoColor:  v.GetBool("no-color") || os.Getenv("NO_COLOR") != "",
		Format:   v.GetString("format"),
		LogLevel: v.GetString("log_level"),

		ConfigFile: v.ConfigFileUsed(),

		VersionsURL: v.GetString("versions_url"),
		CDNURL:      v.GetString("cdn_url"),
		Locale:      v.GetString("locale"),
		Patch:       v.GetString("patch"),
		HTTPTimeout: v.GetDuration("http_timeout"),

		EnvLogLevel: os.Getenv("LOG_LEVEL"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects values no command could work with.
func (c *Config) Validate() error {
	if c.HTTPTimeout < 0 {
		return errors.NewValidationError("http_timeout", c.HTTPTimeout, "must not be negative")
	}
	if c.HTTPTimeout > 0 && c.HTTPTimeout < constants.MinHTTPTimeout {
		return errors.NewValidationError("http_timeout", c.HTTPTimeout,
			fmt.Sprintf("%v is below %v, give a unit such as 30s", c.HTTPTimeout, constants.MinHTTPTimeout))
	}
	if c.VersionsURL == "" {
		return errors.NewValidationError("versions_url", c.VersionsURL, "must not be empty")
	}
	if c.CDNURL == "" {
		return errors.NewValidationError("cdn_url", c.CDNURL, "must not be empty")
	}
	return nil
}

// Flags carries the global flag values a command was invoked with. Only
// the fields whose Set bit is true override the loaded configuration.
type Flags struct {
	Verbose, Quiet, NoColor bool
	Format, LogLevel        string

	VerboseSet, QuietSet, NoColorSet bool
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(f Flags) {
	if f.VerboseSet {
		c.Verbose = f.Verbose
	}
	if f.QuietSet {
		c.Quiet = f.Quiet
	}
	if f.NoColorSet {
		c.NoColor = f.NoColor
	}
	if f.Format != "" {
		c.Format = f.Format
	}
	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// godotenv never overrides a variable that is already set, so
	// .env.local must come first to win over .env
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
