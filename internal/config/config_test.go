package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"codepet/internal/pet"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DataDir == "" {
		t.Error("DataDir should not be empty")
	}
	if cfg.Store.Backend != "file" || cfg.Store.Key != pet.StorageKey {
		t.Errorf("Store = %+v, want file backend on %s", cfg.Store, pet.StorageKey)
	}
	if d, err := cfg.DecayInterval(); err != nil || d != 30*time.Second {
		t.Errorf("DecayInterval = %v, %v; want 30s", d, err)
	}
	if d, err := cfg.IdleInterval(); err != nil || d != 10*time.Second {
		t.Errorf("IdleInterval = %v, %v; want 10s", d, err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDataDir, dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != dir {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, dir)
	}
	if cfg.LogPath() != filepath.Join(dir, "codepet.log") {
		t.Errorf("LogPath = %q", cfg.LogPath())
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", FileName)

	cfg := Default()
	cfg.DataDir = dir
	cfg.Store.Backend = "sqlite"
	cfg.Timers.Decay = "5s"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Store.Backend != "sqlite" {
		t.Errorf("Backend = %q, want sqlite", got.Store.Backend)
	}
	if d, _ := got.DecayInterval(); d != 5*time.Second {
		t.Errorf("DecayInterval = %v, want 5s", d)
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	cfg := Default()
	cfg.DataDir = dir
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv(EnvStore, "sqlite")
	t.Setenv(EnvLogLevel, "debug")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Store.Backend != "sqlite" || got.Log.Level != "debug" {
		t.Errorf("env overrides not applied: %+v", got)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad json", `{"store":`},
		{"bad backend", `{"store":{"backend":"redis"}}`},
		{"bad timer", `{"timers":{"decay":"soon"}}`},
		{"negative timer", `{"timers":{"idle":"-1s"}}`},
		{"key with parent dir", `{"store":{"key":"../../x"}}`},
		{"key with separator", `{"store":{"key":"pets/bytey"}}`},
		{"key with backslash", `{"store":{"key":"pets\\bytey"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}
