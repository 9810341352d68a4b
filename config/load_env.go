package config

import (
	"log/slog"
	"path/filepath"

	"github.com/subosito/gotenv"
)

var EnvDir = "config/envs"

// LoadEnv loads config/envs/.env.<env> into the process environment.
// Variables already set are left alone.
func LoadEnv(env string) {
	envFile := filepath.Join(EnvDir, ".env."+env)
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment",
			slog.String("file", envFile))
	}
}
