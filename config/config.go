package config

import (
	"os"
	"strings"
)

type Config struct {
	Port        string
	CORSOrigins []string // empty = any origin
	StaticDir   string
}

// Load reads server settings from the environment. `.env` is loaded by main
// before this runs.
func Load() Config {
	cfg := Config{
		Port:      os.Getenv("PORT"),
		StaticDir: os.Getenv("STATIC_DIR"),
	}
	if cfg.Port == "" {
		cfg.Port = "4000"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "public"
	}

	raw := strings.TrimSpace(os.Getenv("CORS_ORIGIN"))
	if raw != "" && raw != "*" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
			}
		}
	}
	return cfg
}
