package config

import (
	"encoding/json"
	"os"

	"github.com/autohub/autohub-cli/internal/flagx"
	"github.com/autohub/autohub-cli/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Durations
// can be written either as strings like "15s" or as integer nanoseconds;
// after parsing, values are copied into the runtime Config.
type JSONConfig struct {
	BackendBaseURL      string         `json:"backend_base_url"`
	ImageUploadURL      string         `json:"image_upload_url"`
	ImageUploadPreset   string         `json:"image_upload_preset"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	VerifyRedirectDelay timex.Duration `json:"verify_redirect_delay"`
	StorePath           string         `json:"store_path"`
}

// parseJSON overlays Config with values loaded from the JSON file named by
// the -c/-config flags. No flag, no overlay. Only fields present in the
// file override the current values.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigPath()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BackendBaseURL != "" {
		cfg.BackendBaseURL = jc.BackendBaseURL
	}
	if jc.ImageUploadURL != "" {
		cfg.ImageUploadURL = jc.ImageUploadURL
	}
	if jc.ImageUploadPreset != "" {
		cfg.ImageUploadPreset = jc.ImageUploadPreset
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.VerifyRedirectDelay.Duration != 0 {
		cfg.VerifyRedirectDelay = jc.VerifyRedirectDelay.Duration
	}
	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
}
