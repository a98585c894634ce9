package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with AUTOHUB_* environment variables. A .env
// file in the working directory is loaded first when present; real
// environment variables take precedence over the file (godotenv does not
// overwrite existing values).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("AUTOHUB_BACKEND_URL"); v != "" {
		cfg.BackendBaseURL = v
	}
	if v := os.Getenv("AUTOHUB_UPLOAD_URL"); v != "" {
		cfg.ImageUploadURL = v
	}
	if v := os.Getenv("AUTOHUB_UPLOAD_PRESET"); v != "" {
		cfg.ImageUploadPreset = v
	}
	if v := os.Getenv("AUTOHUB_STORE_PATH"); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv("AUTOHUB_REQUEST_TIMEOUT"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil {
			cfg.RequestTimeout = time.Duration(sec) * time.Second
		}
	}
}
