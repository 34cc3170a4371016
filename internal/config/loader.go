package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultYAML []byte

// Environment variables that override file settings.
const (
	EnvSeed      = "DUNGEONGEN_SEED"
	EnvAlgorithm = "DUNGEONGEN_ALGORITHM"
	EnvWidth     = "DUNGEONGEN_WIDTH"
	EnvHeight    = "DUNGEONGEN_HEIGHT"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/dungeongen.yaml"

// Default returns the embedded default configuration. The embedded file is
// part of the binary, so a parse error panics.
func Default() Config {
	var cfg Config
	if err := decodeStrict(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// decodeStrict unmarshals data into cfg, rejecting keys Config does not have.
func decodeStrict(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(cfg)
}

// Load reads the configuration.
// Search order: customPath -> ~/.dungeongen/config.yaml -> ./configs/dungeongen.yaml -> embedded default.
// Files are layered over the embedded default, so they only need to name the
// settings they change. Environment overrides are applied last.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return applyEnv(cfg)
	}

	for _, path := range []string{userConfigPath(), localConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		break
	}

	return applyEnv(cfg)
}

// LoadEnv loads KEY=value pairs from the given .env files (default ".env")
// into the process environment. A missing file is not an error.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// applyEnv overrides cfg with DUNGEONGEN_* variables.
func applyEnv(cfg Config) (Config, error) {
	if v := os.Getenv(EnvAlgorithm); v != "" {
		cfg.Algorithm = v
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &cfg.Width},
		{EnvHeight, &cfg.Height},
	}
	for _, e := range ints {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", e.key, v, err)
		}
		*e.dst = n
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		cfg.Seed = seed
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dungeongen", "config.yaml")
}
