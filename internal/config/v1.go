package config

import (
	"fmt"
	"net/url"

	"github.com/zbiljic/autocommit/pkg/llm"
)

const configVersionV1 = "1"

type configV1 struct {
	Version  string `json:"version"`            // required by vconfig-go
	Model    string `json:"model,omitempty"`    // chat completion model
	BaseURL  string `json:"base_url,omitempty"` // OpenAI compatible API base, e.g. https://api.openai.com/v1
	APIKey   string `json:"api_key,omitempty"`
	Language string `json:"language,omitempty"` // language of the generated message
}

// newConfigV1 creates a new v1 configuration
func newConfigV1() *configV1 {
	return &configV1{
		Version:  configVersionV1,
		Language: llm.DefaultLanguage,
	}
}

func (c *configV1) validateV1() error {
	if c.Version != configVersionV1 {
		return errUnknownVersion(c.Version)
	}

	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil {
			return fmt.Errorf("invalid base_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("invalid base_url '%s': scheme must be http or https", c.BaseURL)
		}
		if u.Host == "" {
			return fmt.Errorf("invalid base_url '%s': missing host", c.BaseURL)
		}
	}

	return nil
}
