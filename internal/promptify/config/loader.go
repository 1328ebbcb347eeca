package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// dotenvFiles are loaded in order; values already present in the process
// environment are never overridden.
var dotenvFiles = []string{".env.local", ".env"}

// LoadConfig loads the configuration from the specified path or default locations
func LoadConfig() (*Config, error) {
	loadDotenv(dotenvFiles...)

	// Check for config path in environment variable
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		// Check common config locations
		commonPaths := []string{
			".",
			"./config",
			"/etc/promptify",
			"$HOME/.promptify",
		}

		for _, path := range commonPaths {
			expandedPath := os.ExpandEnv(path)
			if _, err := os.Stat(filepath.Join(expandedPath, "config.yaml")); err == nil {
				configPath = expandedPath
				break
			}
		}
	}

	return Load(configPath)
}

func loadDotenv(files ...string) {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		// godotenv.Load never overrides variables that are already set
		_ = godotenv.Load(f)
	}
}
