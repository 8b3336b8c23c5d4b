// Package config handles reading and writing .mandator/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mandator-dev/mandator/internal/party"
)

// Config is the top-level structure for .mandator/config.yaml.
type Config struct {
	Version  int                `yaml:"version"`
	Model    string             `yaml:"model"`
	Election party.ElectionInfo `yaml:"election"`
	Quiz     QuizConfig         `yaml:"quiz"`
	Storage  StorageConfig      `yaml:"storage"`
}

// QuizConfig controls question generation and the evaluation gate.
type QuizConfig struct {
	QuestionCount int `yaml:"question_count"`
	MinAnswers    int `yaml:"min_answers"`
}

// StorageConfig holds storage locations, relative to the .mandator dir.
type StorageConfig struct {
	HistoryDB string `yaml:"history_db"`
}

// Dir is the dot-directory holding config, history and logs.
const Dir = ".mandator"

const configFile = "config.yaml"

// ReadConfig reads .mandator/config.yaml from the given base directory
// (normally the user's home). Returns an error if the file is not found or
// YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, Dir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// WriteConfig writes cfg to .mandator/config.yaml in the given base
// directory. Creates the .mandator/ directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	dirPath := filepath.Join(dir, Dir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dirPath, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Model:   "gemini-2.5-flash",
		Election: party.ElectionInfo{
			Name: "Volby do Poslanecké sněmovny Parlamentu ČR",
			Year: 2025,
		},
		Quiz: QuizConfig{
			QuestionCount: 50,
			MinAnswers:    30,
		},
		Storage: StorageConfig{
			HistoryDB: "history.db",
		},
	}
}
