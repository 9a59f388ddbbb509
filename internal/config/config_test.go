package config

import (
	"path/filepath"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid sqlite backend config",
			config: Config{
				Port:         "8081",
				DataBackend:  "sqlite",
				SQLiteDBPath: "./test.db",
			},
			wantErr: false,
		},
		{
			name: "valid memory backend config",
			config: Config{
				Port:        "8081",
				DataBackend: "memory",
			},
			wantErr: false,
		},
		{
			name: "invalid port - non-numeric",
			config: Config{
				Port:         "abc",
				DataBackend:  "memory",
				SQLiteDBPath: "./test.db",
			},
			wantErr: true,
		},
		{
			name: "invalid port - out of range",
			config: Config{
				Port:        "70000",
				DataBackend: "memory",
			},
			wantErr: true,
		},
		{
			name: "invalid backend",
			config: Config{
				Port:        "8081",
				DataBackend: "sheets",
			},
			wantErr: true,
		},
		{
			name: "sqlite backend without path",
			config: Config{
				Port:         "8081",
				DataBackend:  "sqlite",
				SQLiteDBPath: "",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateCreatesDBDir(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Port:         "8081",
		DataBackend:  "sqlite",
		SQLiteDBPath: filepath.Join(dir, "nested", "dompet.db"),
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() should create missing db directory: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port == "" || cfg.SQLiteDBPath == "" || cfg.DataBackend == "" {
		t.Fatalf("Load() left defaults empty: %+v", cfg)
	}
}
