package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds the persistent defaults of the hints program. A missing
// file is not an error; everything has a usable zero value.
type Config struct {
	Alphabet string `json:"alphabet,omitempty"`
	Type     string `json:"type,omitempty"`
	Regex    string `json:"regex,omitempty"`
}

// configPathOverride allows tests to redirect config to a temp directory
var configPathOverride string

func getConfigPath() string {
	if configPathOverride != "" {
		dir := filepath.Dir(configPathOverride)
		os.MkdirAll(dir, 0700)
		return configPathOverride
	}
	home, _ := os.UserHomeDir()
	configDir := filepath.Join(home, ".config", "hints")
	os.MkdirAll(configDir, 0700)
	return filepath.Join(configDir, "config.json")
}

func loadConfig() (*Config, error) {
	data, err := os.ReadFile(getConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var config Config
	err = json.Unmarshal(data, &config)
	return &config, err
}

func saveConfig(config *Config) error {
	data, err := json.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(getConfigPath(), data, 0600)
}
