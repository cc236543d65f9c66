// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the fixture server settings. Precedence is defaults, then an
// optional YAML file, then MAZE_* environment variables.
type Config struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	MaxDepth        int    `yaml:"max_depth"`
	ChildrenPerPage int    `yaml:"children_per_page"`
}

func Default() Config {
	return Config{
		Host:            "localhost",
		Port:            3000,
		MaxDepth:        5,
		ChildrenPerPage: 3,
	}
}

// LoadFile overlays the YAML file at path onto cfg. Unknown keys are an
// error so typos don't silently fall back to defaults. An empty file is
// valid and changes nothing.
func LoadFile(cfg Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot read config file %q: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("invalid YAML in config file %q: %w", path, err)
	}

	return cfg, nil
}

// FromEnv overlays MAZE_* environment variables onto cfg.
func FromEnv(cfg Config) (Config, error) {
	if v := os.Getenv("MAZE_HOST"); v != "" {
		cfg.Host = v
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"MAZE_PORT", &cfg.Port},
		{"MAZE_MAX_DEPTH", &cfg.MaxDepth},
		{"MAZE_CHILDREN_PER_PAGE", &cfg.ChildrenPerPage},
	}
	for _, e := range ints {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s must be an integer, got %q", e.name, v)
		}
		*e.dst = n
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host must not be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be >= 0, got %d", c.MaxDepth)
	}
	if c.ChildrenPerPage < 0 {
		return fmt.Errorf("children_per_page must be >= 0, got %d", c.ChildrenPerPage)
	}
	return nil
}

// Addr is the listen address for the fixture server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// BaseURL is the absolute prefix baked into child links.
func (c Config) BaseURL() string {
	return "http://" + c.Addr()
}
