package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	OpenAIAPIKey      string        `mapstructure:"openai_api_key" yaml:"openai_api_key"`
	OpenAIModel       string        `mapstructure:"openai_model" yaml:"openai_model"`
	SeedRooms         []string      `mapstructure:"seed_rooms" yaml:"seed_rooms"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":3000",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		SeedRooms:         []string{"General", "Tech Talk", "Random"},
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.ReadHeaderTimeout != 0 {
		c.ReadHeaderTimeout = other.ReadHeaderTimeout
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.OpenAIAPIKey != "" {
		c.OpenAIAPIKey = other.OpenAIAPIKey
	}
	if other.OpenAIModel != "" {
		c.OpenAIModel = other.OpenAIModel
	}
	if len(other.SeedRooms) != 0 {
		c.SeedRooms = other.SeedRooms
	}
}
