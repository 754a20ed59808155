// Package config loads ikigai's ambient configuration: tool discovery
// directories, default terminal width, and logging destination, from an
// XDG-style JSON file plus IKIGAI_* environment overrides.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the set of values the REPL and tool subsystem need to start.
type Config struct {
	SystemToolDir  string `json:"system_tool_dir"`
	UserToolDir    string `json:"user_tool_dir"`
	ProjectToolDir string `json:"project_tool_dir"`
	DefaultWidth   int    `json:"default_width"`
	LogFile        string `json:"log_file"`
	LogLevel       string `json:"log_level"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		SystemToolDir:  "/usr/local/libexec/ikigai/tools",
		UserToolDir:    filepath.Join(home, ".ikigai", "tools"),
		ProjectToolDir: filepath.Join(".ikigai", "tools"),
		DefaultWidth:   80,
		LogFile:        filepath.Join(home, ".ikigai", "ikigai.log"),
		LogLevel:       "info",
	}
}

// Load reads ~/.ikigai/config.json if present, then applies IKIGAI_*
// environment overrides. A missing config file is not an error.
func Load() (Config, error) {
	cfg := Default()

	home, err := os.UserHomeDir()
	if err == nil {
		path := filepath.Join(home, ".ikigai", "config.json")
		if data, rerr := os.ReadFile(path); rerr == nil {
			if jerr := json.Unmarshal(data, &cfg); jerr != nil {
				return cfg, jerr
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("IKIGAI_SYSTEM_TOOL_DIR"); v != "" {
		cfg.SystemToolDir = v
	}
	if v := os.Getenv("IKIGAI_USER_TOOL_DIR"); v != "" {
		cfg.UserToolDir = v
	}
	if v := os.Getenv("IKIGAI_PROJECT_TOOL_DIR"); v != "" {
		cfg.ProjectToolDir = v
	}
	if v := os.Getenv("IKIGAI_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("IKIGAI_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
