package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Model != "curie" {
		t.Errorf("expected default model %q, got %q", "curie", cfg.Model)
	}
	if cfg.CSVPath != "dataset.csv" {
		t.Errorf("expected default csv_path %q, got %q", "dataset.csv", cfg.CSVPath)
	}
	if cfg.JSONLPath != "dataset.jsonl" {
		t.Errorf("expected default jsonl_path %q, got %q", "dataset.jsonl", cfg.JSONLPath)
	}
	if cfg.MaxTokens != 64 {
		t.Errorf("expected default max_tokens 64, got %d", cfg.MaxTokens)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Model != "curie" {
		t.Errorf("expected defaults for missing file, got model %q", cfg.Model)
	}
}

func TestLoad_EnvOverlay(t *testing.T) {
	t.Setenv("CODETUNE_MODEL", "davinci")
	t.Setenv("CODETUNE_DEBUG", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Model != "davinci" {
		t.Errorf("env override not applied: model %q", cfg.Model)
	}
	if !cfg.Debug {
		t.Error("env override not applied: debug should be true")
	}
}

func TestLoad_ContainerPathSwitch(t *testing.T) {
	t.Setenv("CODETUNE_CONTAINER", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.CSVPath != filepath.Join(ContainerDataDir, "dataset.csv") {
		t.Errorf("expected container csv path, got %q", cfg.CSVPath)
	}
	if cfg.JSONLPath != filepath.Join(ContainerDataDir, "dataset.jsonl") {
		t.Errorf("expected container jsonl path, got %q", cfg.JSONLPath)
	}
}

func TestLoad_ContainerKeepsExplicitPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".codetune.yml")
	yml := "container: true\ncsv_path: /srv/my.csv\n"
	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.CSVPath != "/srv/my.csv" {
		t.Errorf("explicit csv path should survive container mode, got %q", cfg.CSVPath)
	}
	if cfg.JSONLPath != filepath.Join(ContainerDataDir, "dataset.jsonl") {
		t.Errorf("default jsonl path should move under %s, got %q", ContainerDataDir, cfg.JSONLPath)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.codetune.yml")

	original := DefaultConfig()
	original.Model = "davinci"
	original.MaxTokens = 128
	original.Include = []string{"*.ts"}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Model != "davinci" {
		t.Errorf("model not preserved: %q", loaded.Model)
	}
	if loaded.MaxTokens != 128 {
		t.Errorf("max_tokens not preserved: %d", loaded.MaxTokens)
	}
	if len(loaded.Include) != 1 || loaded.Include[0] != "*.ts" {
		t.Errorf("include not preserved: %v", loaded.Include)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	cfg.Model = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty model")
	}

	cfg = DefaultConfig()
	cfg.MaxTokens = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative max_tokens")
	}
}
