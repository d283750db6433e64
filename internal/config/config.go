// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Radarr   ManagerConfig  `toml:"radarr"`
	Sonarr   ManagerConfig  `toml:"sonarr"`
	LLM      LLMConfig      `toml:"llm"`
	Session  SessionConfig  `toml:"session"`
	Chat     ChatConfig     `toml:"chat"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"` // empty logs to stdout only
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

// ManagerConfig points at one media manager (Radarr or Sonarr).
type ManagerConfig struct {
	URL            string `toml:"url"`
	APIKey         string `toml:"api_key"`
	RootFolder     string `toml:"root_folder"`
	QualityProfile int64  `toml:"quality_profile"`
}

type LLMConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
}

type SessionConfig struct {
	TTL           Duration `toml:"ttl"`
	MaxCandidates int      `toml:"max_candidates"`
	RedisAddr     string   `toml:"redis_addr"` // empty uses the in-memory store
	RedisPassword string   `toml:"redis_password"`
	RedisDB       int      `toml:"redis_db"`
}

// Duration wraps time.Duration so TOML values like "5m" parse.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

type ChatConfig struct {
	HistoryLimit int `toml:"history_limit"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8585
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./data/chatarr.db"
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "gpt-4o-mini"
	}
	if cfg.Session.TTL.Duration == 0 {
		cfg.Session.TTL.Duration = 5 * time.Minute
	}
	if cfg.Session.MaxCandidates == 0 {
		cfg.Session.MaxCandidates = 5
	}
	if cfg.Chat.HistoryLimit == 0 {
		cfg.Chat.HistoryLimit = 20
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations that cannot possibly serve requests.
func validate(cfg *Config) error {
	if cfg.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required")
	}
	if cfg.Radarr.URL == "" && cfg.Sonarr.URL == "" {
		return fmt.Errorf("at least one of radarr.url or sonarr.url is required")
	}
	if cfg.Radarr.URL != "" && cfg.Radarr.APIKey == "" {
		return fmt.Errorf("radarr.api_key is required when radarr.url is set")
	}
	if cfg.Sonarr.URL != "" && cfg.Sonarr.APIKey == "" {
		return fmt.Errorf("sonarr.api_key is required when sonarr.url is set")
	}
	return nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
