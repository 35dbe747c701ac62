// Package config loads the engine's YAML configuration and applies
// environment overrides. Components receive explicit config structs; nothing
// reads ambient globals at runtime.
package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Fetch struct {
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		UserAgent      string  `yaml:"user_agent"`
		HostReqPerSec  float64 `yaml:"host_req_per_sec"`
		HostBurst      int     `yaml:"host_burst"`
	} `yaml:"fetch"`

	AI struct {
		BaseURL         string `yaml:"base_url"`
		Model           string `yaml:"model"`
		TimeoutSeconds  int    `yaml:"timeout_seconds"`
		MaxExcerptChars int    `yaml:"max_excerpt_chars"`
		KeyringAccount  string `yaml:"keyring_account"`
	} `yaml:"ai"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.Port == 0 {
		c.App.Port = 38472
	}
	if c.Fetch.TimeoutSeconds == 0 {
		c.Fetch.TimeoutSeconds = 10
	}
	if c.AI.TimeoutSeconds == 0 {
		c.AI.TimeoutSeconds = 45
	}
	if c.AI.MaxExcerptChars == 0 {
		c.AI.MaxExcerptChars = 20000
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ENGINE_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.App.Port = p
		}
	}
	if v := os.Getenv("ENGINE_DATA_DIR"); v != "" {
		c.App.DataDir = v
	}
	if v := os.Getenv("XAI_BASE_URL"); v != "" {
		c.AI.BaseURL = v
	}
	if v := os.Getenv("XAI_MODEL"); v != "" {
		c.AI.Model = v
	}
}
