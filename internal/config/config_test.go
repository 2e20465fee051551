package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kalistajoy/crm-workspace/internal/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Database.Path != ":memory:" {
		t.Errorf("database path = %q, want :memory:", cfg.Database.Path)
	}
	if cfg.Workflow.Reviewer != "Alex Schiller" {
		t.Errorf("reviewer = %q, want Alex Schiller", cfg.Workflow.Reviewer)
	}
	if cfg.Workflow.NotifyBannerSec != 5 || cfg.Workflow.AssignBannerSec != 3 {
		t.Errorf("banner durations = %d/%d, want 5/3",
			cfg.Workflow.NotifyBannerSec, cfg.Workflow.AssignBannerSec)
	}
	if cfg.Display.DefaultUser != "Kalista Joy" {
		t.Errorf("default user = %q, want Kalista Joy", cfg.Display.DefaultUser)
	}
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("workflow:\n  reviewer: Sofia Martinez\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Workflow.Reviewer != "Sofia Martinez" {
		t.Errorf("reviewer = %q, want Sofia Martinez", cfg.Workflow.Reviewer)
	}
	if cfg.Workflow.NotifyBannerSec != 5 {
		t.Errorf("notify banner = %d, want default 5", cfg.Workflow.NotifyBannerSec)
	}
	if cfg.Display.DefaultUser != "Kalista Joy" {
		t.Errorf("default user = %q, want default Kalista Joy", cfg.Display.DefaultUser)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, _ := config.Load(path)
	cfg.Database.Path = "/tmp/crm.db"
	cfg.Workflow.AssignBannerSec = 7

	if err := config.Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load after save: %v", err)
	}
	if loaded.Database.Path != "/tmp/crm.db" {
		t.Errorf("database path = %q, want /tmp/crm.db", loaded.Database.Path)
	}
	if loaded.Workflow.AssignBannerSec != 7 {
		t.Errorf("assign banner = %d, want 7", loaded.Workflow.AssignBannerSec)
	}
	if loaded.Workflow.Reviewer != "Alex Schiller" {
		t.Errorf("reviewer = %q, want Alex Schiller", loaded.Workflow.Reviewer)
	}
}
