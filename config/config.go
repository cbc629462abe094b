// Package config handles loading and validation of application configuration
// from environment variables and an optional .env file.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment Environment `mapstructure:"ENVIRONMENT"`
	Port        string      `mapstructure:"PORT"`
	// FrontendURL is the single origin permitted to call the contact
	// endpoint cross-origin, with credentials.
	FrontendURL string `mapstructure:"FRONTEND_URL"`
}

// DatabaseConfig holds the message store connection details.
type DatabaseConfig struct {
	// URL is a postgres:// connection string for the message store.
	URL string `mapstructure:"URL"`
}

// EmailConfig holds configuration for relaying submissions by email.
type EmailConfig struct {
	FromAddress  string `mapstructure:"FROM_ADDRESS"`
	FromName     string `mapstructure:"FROM_NAME"`
	ToAddress    string `mapstructure:"TO_ADDRESS"`
	ResendAPIKey string `mapstructure:"RESEND_API_KEY"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server   ServerConfig   `mapstructure:"SERVER"`
	Database DatabaseConfig `mapstructure:"DATABASE"`
	Email    EmailConfig    `mapstructure:"EMAIL"`
}

// IsProduction returns true if the application is running in production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from the environment using Viper, layered
// over an optional .env file, applies defaults, and validates that every
// required value is present. The process must not start without them.
func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("EMAIL.FROM_NAME", "Contact Form")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.FRONTEND_URL", "FRONTEND_URL"},
		{"DATABASE.URL", "DATABASE_URL"},
		{"EMAIL.FROM_ADDRESS", "EMAIL_FROM_ADDRESS"},
		{"EMAIL.FROM_NAME", "EMAIL_FROM_NAME"},
		{"EMAIL.TO_ADDRESS", "EMAIL_TO_ADDRESS"},
		{"EMAIL.RESEND_API_KEY", "RESEND_API_KEY"},
	}
	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validateConfig enforces the fail-fast startup contract: every value the
// pipeline's collaborators need must be present before the listener starts.
func validateConfig(cfg *Config) error {
	required := []struct {
		value string
		name  string
	}{
		{cfg.Database.URL, "DATABASE_URL"},
		{cfg.Server.FrontendURL, "FRONTEND_URL"},
		{cfg.Email.FromAddress, "EMAIL_FROM_ADDRESS"},
		{cfg.Email.ToAddress, "EMAIL_TO_ADDRESS"},
		{cfg.Email.ResendAPIKey, "RESEND_API_KEY"},
	}

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}
