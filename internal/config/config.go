package config

import (
	"github.com/samber/lo"

	"github.com/zbiljic/autocommit/pkg/llm"
)

// Config represents the current version of configuration
type Config = configV1

// Environment variables that take precedence over the config file.
const (
	EnvAPIKey  = "OPENAI_API_KEY"
	EnvBaseURL = "OPENAI_API_BASE"
	EnvModel   = "AUTOCOMMIT_MODEL"
)

// NewDefault creates a new configuration
func NewDefault() *Config {
	return newConfigV1()
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return c.validateV1()
}

// LLMOptions merges the configuration with the environment. A non-empty
// model overrides both.
func (c *Config) LLMOptions(getenv func(string) string, model string) llm.Options {
	return llm.Options{
		ApiKey:   lo.CoalesceOrEmpty(getenv(EnvAPIKey), c.APIKey),
		BaseURL:  lo.CoalesceOrEmpty(getenv(EnvBaseURL), c.BaseURL, llm.DefaultBaseURL),
		Model:    lo.CoalesceOrEmpty(model, getenv(EnvModel), c.Model, llm.DefaultModel),
		Language: lo.CoalesceOrEmpty(c.Language, llm.DefaultLanguage),
	}
}
