package config

const configVersionV0 = "0"

// configV0 is the layout written before files carried a version. A file
// without a version field is read as v0.
type configV0 struct {
	Version string `json:"version"` // required by vconfig-go
	Model   string `json:"model"`
	APIKey  string `json:"api_key"`
	APIBase string `json:"api_base"`
}

func (c *configV0) migrate() *configV1 {
	config := newConfigV1()
	config.Model = c.Model
	config.APIKey = c.APIKey
	config.BaseURL = c.APIBase

	return config
}
