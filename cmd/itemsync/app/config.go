package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Lawaia-Dev/itemsync/pkg/constants"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Config file
	ConfigFile string

	// Pipeline configuration
	MetaForgeURL   string
	RaidTheoryPath string
	OutputPath     string
	OutputFormat   string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.itemsync.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	// Set up Viper for environment variables
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	bindSourceVars()

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Search for config in standard locations
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".itemsync")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	// Build config from viper
	config := &Config{
		// Global flags (may be overridden by cobra flags later)
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),

		// Config file
		ConfigFile: viper.ConfigFileUsed(),

		// Pipeline configuration
		MetaForgeURL:   viper.GetString("METAFORGE_ITEMS_URL"),
		RaidTheoryPath: viper.GetString("RAIDTHEORY_ITEMS_PATH"),
		OutputPath:     viper.GetString("ITEMSYNC_OUTPUT_PATH"),
		OutputFormat:   viper.GetString("ITEMSYNC_OUTPUT_FORMAT"),

		// Logging configuration
		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	// Set defaults
	if config.MetaForgeURL == "" {
		config.MetaForgeURL = constants.MetaForgeItemsURL
	}
	if config.RaidTheoryPath == "" {
		config.RaidTheoryPath = constants.RaidTheoryItemsPath
	}
	if config.OutputPath == "" {
		config.OutputPath = constants.DefaultOutputPath
	}
	if config.OutputFormat == "" {
		config.OutputFormat = "json"
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// bindSourceVars explicitly binds pipeline environment variables to Viper.
func bindSourceVars() {
	vars := []string{
		"METAFORGE_ITEMS_URL",
		"RAIDTHEORY_ITEMS_PATH",
		"ITEMSYNC_OUTPUT_PATH",
		"ITEMSYNC_OUTPUT_FORMAT",
	}

	for _, key := range vars {
		// Binding only fails for empty keys; not critical either way
		_ = viper.BindEnv(key)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
