package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ServerURL != "http://localhost:3001" || cfg.BoardPageSize != 10 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file should have been created: %v", err)
	}
}

func TestLoad_PartialConfigFilled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"serverUrl": "https://club.example.org"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ServerURL != "https://club.example.org" {
		t.Errorf("explicit value overridden: %q", cfg.ServerURL)
	}
	if cfg.ActivitiesPageSize != 3 || cfg.JapanesePageSize != 1 {
		t.Errorf("missing fields not defaulted: %+v", cfg)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	want := Config{ServerURL: "http://10.0.0.5:3001", BoardPageSize: 25, ActivitiesPageSize: 6, JapanesePageSize: 2, CacheEnabled: true}

	if err := Save(path, &want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != want {
		t.Errorf("round trip: got %+v, want %+v", *got, want)
	}
}
