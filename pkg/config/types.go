package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Pexels PexelsConfig `mapstructure:"pexels"`
	Static StaticConfig `mapstructure:"static"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// PexelsConfig contains Pexels API settings
type PexelsConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	BaseURL        string        `mapstructure:"base_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
	UserAgent      string        `mapstructure:"user_agent"`
	DefaultPerPage int           `mapstructure:"default_per_page"`
}

// StaticConfig contains static frontend settings
type StaticConfig struct {
	Dir   string `mapstructure:"dir"`
	Index string `mapstructure:"index"`
}
