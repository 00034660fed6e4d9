// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// EntrezURL is the default E-utilities root. Overridable for tests
// against a local mock server.
const EntrezURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

// Config is the root-level settings struct, a mix of defaults,
// environment variables and command line arguments.
type Config struct {
	// Email identifies the caller to NCBI. Required before any request.
	Email string `mapstructure:"email"`

	// Tool identifies this application to NCBI.
	Tool string `mapstructure:"tool"`

	// APIKey is an optional NCBI API key
	APIKey string `mapstructure:"api-key"`

	// BaseURL is the E-utilities root URL
	BaseURL string `mapstructure:"base-url"`

	// Out is the root directory outputs are written beneath
	Out string `mapstructure:"out"`

	// MaxAttempts is the number of download attempts per assembly
	// before the assembly is reported as failed
	MaxAttempts int `mapstructure:"max-attempts"`

	// RateLimit is the maximum number of Entrez requests per second.
	// NCBI asks for at most 3/sec without an API key
	RateLimit float64 `mapstructure:"rate"`

	// TimeoutSeconds bounds each Entrez round-trip
	TimeoutSeconds int `mapstructure:"timeout"`

	// Progress toggles the per-assembly progress bar
	Progress bool `mapstructure:"progress"`

	// Verbose logs each Entrez round-trip
	Verbose bool `mapstructure:"verbose"`
}

// New returns a new Config struct populated by Viper settings
// (environment variables and/or command line arguments).
func New() *Config {
	c := &Config{}

	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into struct: %v", err)
	}

	if c.BaseURL == "" {
		c.BaseURL = EntrezURL
	}
	if c.Tool == "" {
		c.Tool = "genomepull"
	}
	if c.MaxAttempts < 1 {
		c.MaxAttempts = 20
	}
	if c.RateLimit <= 0 {
		c.RateLimit = 3
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}

	return c
}

// Validate checks the settings NCBI treats as mandatory.
func (c *Config) Validate() error {
	if c.Email == "" {
		return fmt.Errorf("an email is required by NCBI: set --email or GENOMEPULL_EMAIL")
	}
	if c.Tool == "" {
		return fmt.Errorf("a tool name is required by NCBI")
	}
	return nil
}
