// Package config assembles runtime settings for the AutoHub client.
// Sources are overlaid in order: defaults, environment (optionally fed from
// a .env file), JSON config file, command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings for the AutoHub CLI.
type Config struct {
	// BackendBaseURL is the root of the REST backend, including the /api
	// prefix.
	BackendBaseURL string
	// ImageUploadURL and ImageUploadPreset describe the external image
	// host's unsigned-upload endpoint.
	ImageUploadURL    string
	ImageUploadPreset string
	// RequestTimeout bounds every backend and image-host request.
	RequestTimeout time.Duration
	// VerifyRedirectDelay is the pause after showing the verification
	// result before returning to the auth screens.
	VerifyRedirectDelay time.Duration
	// StorePath is the SQLite file backing the local key/value store.
	StorePath string
}

// LoadDefaults populates c with the production endpoints.
func (c *Config) LoadDefaults() {
	c.BackendBaseURL = "https://autohub-dealership-backend.onrender.com/api"
	c.ImageUploadURL = "https://api.cloudinary.com/v1_1/dvjis8d3y/image/upload"
	c.ImageUploadPreset = "Autohub1"
	c.RequestTimeout = 15 * time.Second
	c.VerifyRedirectDelay = 4 * time.Second
	c.StorePath = "autohub.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
