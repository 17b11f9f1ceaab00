package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		initErr = load()
	})

	return initErr
}

// load runs the actual initialization. Split out so tests can reset
// viper and run it again without fighting the sync.Once.
func load() error {
	// Set default values
	setDefaults()

	// Set up environment variable reading for overrides
	viper.SetEnvPrefix("PEXELS_PROXY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Bind the two documented environment variables directly. PEXELS_API_KEY
	// is the upstream credential; PORT is the conventional platform port.
	_ = viper.BindEnv("pexels.api_key", "PEXELS_PROXY_PEXELS_API_KEY", "PEXELS_API_KEY")
	_ = viper.BindEnv("server.port", "PEXELS_PROXY_SERVER_PORT", "PORT")

	// Load config from fixed location (cleaned for safety)
	configPath := filepath.Clean("./config/settings.yaml")
	viper.SetConfigFile(configPath)

	// Try to read the config file
	if err := viper.ReadInConfig(); err != nil {
		// If the config file doesn't exist, just use defaults and env vars
		if !os.IsNotExist(err) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	// Validate the configuration
	if err := validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values.
// A missing Pexels credential is a fatal configuration error: the server
// must never start without the ability to authenticate upstream.
func validate() error {
	if viper.GetString("pexels.api_key") == "" {
		return fmt.Errorf("a PEXELS_API_KEY environment variable is required to run this application")
	}

	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	// Auto-correct invalid upstream timeout
	if viper.GetDuration("pexels.timeout") <= 0 {
		viper.Set("pexels.timeout", 10*time.Second)
	}

	// Auto-correct invalid per_page default
	if viper.GetInt("pexels.default_per_page") <= 0 {
		viper.Set("pexels.default_per_page", 15)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Pexels.APIKey == "" {
		return fmt.Errorf("a PEXELS_API_KEY environment variable is required to run this application")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Pexels.Timeout <= 0 {
		c.Pexels.Timeout = 10 * time.Second
	}

	if c.Pexels.DefaultPerPage <= 0 {
		c.Pexels.DefaultPerPage = 15
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 5000)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Pexels defaults. No default for pexels.api_key: the credential is
	// required and validated at startup.
	viper.SetDefault("pexels.base_url", "https://api.pexels.com/v1")
	viper.SetDefault("pexels.timeout", 10*time.Second)
	viper.SetDefault("pexels.user_agent", "PexelsProxy/1.0")
	viper.SetDefault("pexels.default_per_page", 15)

	// Static frontend defaults
	viper.SetDefault("static.dir", "./static")
	viper.SetDefault("static.index", "index.html")
}
