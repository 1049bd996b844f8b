package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test display defaults
	if cfg.Display.Mode != ModePlain {
		t.Errorf("Display.Mode = %q, want %q", cfg.Display.Mode, ModePlain)
	}
	if cfg.Display.DistanceUnit != "km" {
		t.Errorf("Display.DistanceUnit = %q, want %q", cfg.Display.DistanceUnit, "km")
	}

	// Demonstration packages, in order
	wantTypes := []string{"SWM", "RUN", "WLK"}
	wantLens := []int{5, 3, 4}
	if len(cfg.Packages) != len(wantTypes) {
		t.Fatalf("len(Packages) = %d, want %d", len(cfg.Packages), len(wantTypes))
	}
	for i, p := range cfg.Packages {
		if p.Type != wantTypes[i] {
			t.Errorf("Packages[%d].Type = %q, want %q", i, p.Type, wantTypes[i])
		}
		if len(p.Data) != wantLens[i] {
			t.Errorf("len(Packages[%d].Data) = %d, want %d", i, len(p.Data), wantLens[i])
		}
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestDefaultPackagesAreFresh(t *testing.T) {
	a := DefaultPackages()
	a[0].Data[0] = 1
	b := DefaultPackages()
	if b[0].Data[0] != 720 {
		t.Errorf("DefaultPackages() shares data between calls: got %v, want 720", b[0].Data[0])
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		errContains string
	}{
		{
			name:   "valid config",
			config: DefaultConfig(),
		},
		{
			name: "empty display uses defaults",
			config: Config{
				Packages: []PackageConfig{{Type: "RUN", Data: []float64{1, 1, 1}}},
			},
		},
		{
			name: "tui mode in miles",
			config: Config{
				Display:  DisplayConfig{Mode: ModeTUI, DistanceUnit: "mi"},
				Packages: DefaultPackages(),
			},
		},
		{
			name: "bad mode",
			config: Config{
				Display:  DisplayConfig{Mode: "gui"},
				Packages: DefaultPackages(),
			},
			expectError: true,
			errContains: "display.mode",
		},
		{
			name: "bad distance unit",
			config: Config{
				Display:  DisplayConfig{DistanceUnit: "yd"},
				Packages: DefaultPackages(),
			},
			expectError: true,
			errContains: "distance_unit",
		},
		{
			name:        "no packages",
			config:      Config{Display: DisplayConfig{Mode: ModePlain}},
			expectError: true,
			errContains: "packages",
		},
		{
			name: "package without type",
			config: Config{
				Packages: []PackageConfig{{Data: []float64{1, 2, 3}}},
			},
			expectError: true,
			errContains: "packages[0].type",
		},
		{
			// Unknown tags are the dispatcher's concern
			name: "unknown tag passes",
			config: Config{
				Packages: []PackageConfig{{Type: "XYZ", Data: []float64{1, 2, 3}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				} else if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrNoConfig) {
		t.Errorf("LoadFile() error = %v, want ErrNoConfig", err)
	}
}

func TestLoadFileAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"display": {"mode": "tui"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Display.Mode != ModeTUI {
		t.Errorf("Display.Mode = %q, want %q", cfg.Display.Mode, ModeTUI)
	}
	if cfg.Display.DistanceUnit != "km" {
		t.Errorf("Display.DistanceUnit = %q, want %q", cfg.Display.DistanceUnit, "km")
	}
	if len(cfg.Packages) != 3 {
		t.Errorf("len(Packages) = %d, want 3", len(cfg.Packages))
	}
}

func TestLoadFileKeepsExplicitEmptyPackages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"packages": []}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(cfg.Packages) != 0 {
		t.Errorf("len(Packages) = %d, want 0", len(cfg.Packages))
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty package list")
	}
}

func TestLoadFileInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("LoadFile() error = %v, want parsing error", err)
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := Config{
		Display: DisplayConfig{Mode: ModeTUI, DistanceUnit: "mi"},
		Packages: []PackageConfig{
			{Type: "RUN", Data: []float64{12000, 1.5, 70}},
		},
	}

	if err := SaveFile(path, &cfg); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if loaded.Display != cfg.Display {
		t.Errorf("Display = %+v, want %+v", loaded.Display, cfg.Display)
	}
	if len(loaded.Packages) != 1 || loaded.Packages[0].Type != "RUN" || loaded.Packages[0].Data[1] != 1.5 {
		t.Errorf("Packages = %+v, want %+v", loaded.Packages, cfg.Packages)
	}
}

func TestCreateExample(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := CreateExample(); err != nil {
		t.Fatalf("CreateExample() error = %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Packages) != 3 {
		t.Errorf("len(Packages) = %d, want 3", len(cfg.Packages))
	}

	// A second call must not overwrite user edits
	cfg.Display.Mode = ModeTUI
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := CreateExample(); err != nil {
		t.Fatalf("CreateExample() error = %v", err)
	}
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Display.Mode != ModeTUI {
		t.Errorf("Display.Mode = %q, want %q", cfg.Display.Mode, ModeTUI)
	}

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join(home, ".ftracker") {
		t.Errorf("GetConfigDir() = %q, want %q", dir, filepath.Join(home, ".ftracker"))
	}
}
