package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Addr() != "localhost:3000" {
		t.Errorf("Addr() = %q, want localhost:3000", cfg.Addr())
	}
	if cfg.BaseURL() != "http://localhost:3000" {
		t.Errorf("BaseURL() = %q, want http://localhost:3000", cfg.BaseURL())
	}
	if cfg.MaxDepth != 5 || cfg.ChildrenPerPage != 3 {
		t.Errorf("defaults = %+v, want MaxDepth 5 and ChildrenPerPage 3", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		wantErr     bool
		want        Config
	}{
		{
			name:        "full config",
			fileContent: "host: 0.0.0.0\nport: 8080\nmax_depth: 2\nchildren_per_page: 4\n",
			want:        Config{Host: "0.0.0.0", Port: 8080, MaxDepth: 2, ChildrenPerPage: 4},
		},
		{
			name:        "partial config keeps defaults",
			fileContent: "port: 9999\n",
			want:        Config{Host: "localhost", Port: 9999, MaxDepth: 5, ChildrenPerPage: 3},
		},
		{
			name:        "empty file keeps defaults",
			fileContent: "",
			want:        Default(),
		},
		{
			name:        "unknown key",
			fileContent: "prot: 8080\n",
			wantErr:     true,
		},
		{
			name:        "invalid YAML",
			fileContent: "port: [unclosed\n",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "maze.yaml")
			if err := os.WriteFile(path, []byte(tt.fileContent), 0644); err != nil {
				t.Fatalf("writing test config: %v", err)
			}

			cfg, err := LoadFile(Default(), path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && cfg != tt.want {
				t.Errorf("LoadFile() = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(Default(), "/nonexistent/maze.yaml"); err == nil {
		t.Error("LoadFile() expected error for nonexistent file, got nil")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("MAZE_HOST", "example.test")
	t.Setenv("MAZE_PORT", "8123")
	t.Setenv("MAZE_MAX_DEPTH", "7")
	t.Setenv("MAZE_CHILDREN_PER_PAGE", "1")

	cfg, err := FromEnv(Default())
	if err != nil {
		t.Fatalf("FromEnv() unexpected error: %v", err)
	}

	want := Config{Host: "example.test", Port: 8123, MaxDepth: 7, ChildrenPerPage: 1}
	if cfg != want {
		t.Errorf("FromEnv() = %+v, want %+v", cfg, want)
	}
}

func TestFromEnv_InvalidInt(t *testing.T) {
	t.Setenv("MAZE_PORT", "not-a-number")

	if _, err := FromEnv(Default()); err == nil {
		t.Error("FromEnv() expected error for non-numeric MAZE_PORT, got nil")
	}
}

func TestFromEnv_UnsetKeepsDefaults(t *testing.T) {
	for _, k := range []string{"MAZE_HOST", "MAZE_PORT", "MAZE_MAX_DEPTH", "MAZE_CHILDREN_PER_PAGE"} {
		t.Setenv(k, "")
	}

	cfg, err := FromEnv(Default())
	if err != nil {
		t.Fatalf("FromEnv() unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("FromEnv() = %+v, want defaults", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "zero depth is a valid bound", mutate: func(c *Config) { c.MaxDepth = 0 }},
		{name: "zero fan-out is valid", mutate: func(c *Config) { c.ChildrenPerPage = 0 }},
		{name: "empty host", mutate: func(c *Config) { c.Host = "" }, wantErr: true},
		{name: "port zero", mutate: func(c *Config) { c.Port = 0 }, wantErr: true},
		{name: "port too large", mutate: func(c *Config) { c.Port = 70000 }, wantErr: true},
		{name: "negative depth", mutate: func(c *Config) { c.MaxDepth = -1 }, wantErr: true},
		{name: "negative fan-out", mutate: func(c *Config) { c.ChildrenPerPage = -3 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
