package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	AWS      AWSConfig      `yaml:"aws"`
	Tables   TablesConfig   `yaml:"tables"`
	Identity IdentityConfig `yaml:"identity"`
	Events   EventsConfig   `yaml:"events"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// AWSConfig contains shared AWS client settings
type AWSConfig struct {
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"` // leave empty for real AWS; set for localstack
	Key      string `yaml:"key"`      // static credentials, optional
	Secret   string `yaml:"secret"`
}

// TablesConfig names the three record store tables
type TablesConfig struct {
	Listings string `yaml:"listings"`
	Orders   string `yaml:"orders"`
	Users    string `yaml:"users"`
}

// IdentityConfig contains identity provider settings
type IdentityConfig struct {
	Provider   string `yaml:"provider"` // "cognito" or "local"
	UserPoolID string `yaml:"user_pool_id"`
	ClientID   string `yaml:"client_id"`
	// Secret signs tokens issued by the local provider. Unused with cognito.
	Secret string `yaml:"secret"`
}

// EventsConfig contains event bus settings
type EventsConfig struct {
	BusName string `yaml:"bus_name"`
	Source  string `yaml:"source"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// AWS
	if val := os.Getenv("AWS_REGION"); val != "" {
		c.AWS.Region = val
	}
	if val := os.Getenv("AWS_ENDPOINT"); val != "" {
		c.AWS.Endpoint = val
	}

	// Tables
	if val := os.Getenv("LISTINGS_TABLE_NAME"); val != "" {
		c.Tables.Listings = val
	}
	if val := os.Getenv("ORDERS_TABLE_NAME"); val != "" {
		c.Tables.Orders = val
	}
	if val := os.Getenv("USERS_TABLE_NAME"); val != "" {
		c.Tables.Users = val
	}

	// Identity provider
	if val := os.Getenv("IDENTITY_PROVIDER"); val != "" {
		c.Identity.Provider = val
	}
	if val := os.Getenv("USER_POOL_ID"); val != "" {
		c.Identity.UserPoolID = val
	}
	if val := os.Getenv("CLIENT_ID"); val != "" {
		c.Identity.ClientID = val
	}
	if val := os.Getenv("IDENTITY_SECRET"); val != "" {
		c.Identity.Secret = val
	}

	// Events
	if val := os.Getenv("EVENT_BUS_NAME"); val != "" {
		c.Events.BusName = val
	}
	if val := os.Getenv("EVENT_SOURCE"); val != "" {
		c.Events.Source = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Identity.Provider == "" {
		c.Identity.Provider = "cognito"
	}
	if c.Events.Source == "" {
		c.Events.Source = "marketplace.users"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.AWS.Region == "" {
		return fmt.Errorf("aws region is required")
	}

	if c.Tables.Listings == "" {
		return fmt.Errorf("listings table name is required")
	}
	if c.Tables.Orders == "" {
		return fmt.Errorf("orders table name is required")
	}
	if c.Tables.Users == "" {
		return fmt.Errorf("users table name is required")
	}

	switch c.Identity.Provider {
	case "cognito":
		if c.Identity.UserPoolID == "" {
			return fmt.Errorf("user pool id is required")
		}
		if c.Identity.ClientID == "" {
			return fmt.Errorf("client id is required")
		}
	case "local":
		if len(c.Identity.Secret) < 32 {
			return fmt.Errorf("identity secret must be at least 32 characters")
		}
	default:
		return fmt.Errorf("unknown identity provider: %s", c.Identity.Provider)
	}

	if c.Events.BusName == "" {
		return fmt.Errorf("event bus name is required")
	}

	return nil
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
