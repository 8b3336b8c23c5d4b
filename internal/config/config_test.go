package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigYAMLRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Model = "gemini-2.5-pro"
	cfg.Quiz.MinAnswers = 10

	if err := WriteConfig(tmpDir, cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	loaded, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}

	if loaded.Model != "gemini-2.5-pro" {
		t.Errorf("Model: got %q, want %q", loaded.Model, "gemini-2.5-pro")
	}
	if loaded.Quiz.MinAnswers != 10 {
		t.Errorf("Quiz.MinAnswers: got %d, want 10", loaded.Quiz.MinAnswers)
	}
	if loaded.Election.Year != 2025 {
		t.Errorf("Election.Year: got %d, want 2025", loaded.Election.Year)
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := ReadConfig(tmpDir); err == nil {
		t.Fatal("ReadConfig on empty dir: expected error, got nil")
	}
}

func TestReadConfigMalformedYAML(t *testing.T) {
	tmpDir := t.TempDir()
	dirPath := filepath.Join(tmpDir, Dir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dirPath, "config.yaml"), []byte("model: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadConfig(tmpDir); err == nil {
		t.Fatal("ReadConfig on malformed YAML: expected error, got nil")
	}
}

func TestDefaultConfigThreshold(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Quiz.MinAnswers != 30 {
		t.Errorf("default Quiz.MinAnswers: got %d, want 30", cfg.Quiz.MinAnswers)
	}
	if cfg.Quiz.QuestionCount != 50 {
		t.Errorf("default Quiz.QuestionCount: got %d, want 50", cfg.Quiz.QuestionCount)
	}
}
