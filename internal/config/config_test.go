package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeongen/internal/algorithm"
	"github.com/samdwyer/dungeongen/internal/ui"
)

// isolate points HOME at an empty directory and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{EnvSeed, EnvAlgorithm, EnvWidth, EnvHeight} {
		t.Setenv(key, "")
	}
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 60, cfg.Width)
	assert.Equal(t, 40, cfg.Height)
	assert.Equal(t, 100, cfg.DelayMS)
	assert.Equal(t, "bsp", cfg.Algorithm)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFallsBackToDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadCustomPathLayersOverDefault(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "algorithm: rooms\nwidth: 80\noptions:\n  Max rooms: 12\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "rooms", cfg.Algorithm)
	assert.Equal(t, 80, cfg.Width)
	assert.Equal(t, 40, cfg.Height, "unset keys keep the default")
	assert.Equal(t, map[string]int{"Max rooms": 12}, cfg.Options)
}

func TestLoadMissingCustomPath(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestLoadUserConfig(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".dungeongen", "config.yaml"), "algorithm: cellular-automata\n")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "cellular-automata", cfg.Algorithm)
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvAlgorithm, "drunkards-walk")
	t.Setenv(EnvWidth, "90")
	t.Setenv(EnvHeight, "45")
	t.Setenv(EnvSeed, "1234")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "drunkards-walk", cfg.Algorithm)
	assert.Equal(t, 90, cfg.Width)
	assert.Equal(t, 45, cfg.Height)
	assert.Equal(t, int64(1234), cfg.Seed)
}

func TestEnvOverrideInvalid(t *testing.T) {
	isolate(t)
	t.Setenv(EnvWidth, "wide")

	_, err := Load("")

	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, EnvSeed+"=77\n")
	t.Cleanup(func() { os.Unsetenv(EnvSeed) })
	require.NoError(t, os.Unsetenv(EnvSeed))

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "77", os.Getenv(EnvSeed))

	assert.NoError(t, LoadEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Width = 4
	assert.True(t, errors.Is(cfg.Validate(), ErrInvalidDimension))

	cfg = Default()
	cfg.Height = MaxDimension + 1
	assert.True(t, errors.Is(cfg.Validate(), ErrInvalidDimension))

	cfg = Default()
	cfg.Algorithm = "maze"
	assert.True(t, errors.Is(cfg.Validate(), algorithm.ErrUnknownAlgorithm))
}

func TestSession(t *testing.T) {
	cfg := Default()
	cfg.Algorithm = "rooms"
	cfg.DelayMS = 25
	cfg.Options = map[string]int{"Max rooms": 99, "Min room size": 5}

	s, err := cfg.Session()

	require.NoError(t, err)
	assert.Equal(t, algorithm.Rooms, s.Algorithm)
	assert.Equal(t, 25*time.Millisecond, s.Delay)
	assert.Equal(t, 30, s.Options[0].Value, "clamped to max")
	assert.Equal(t, 5, s.Options[1].Value)
}

func TestSessionUnknownOption(t *testing.T) {
	cfg := Default()
	cfg.Options = map[string]int{"Ratio": 2}

	_, err := cfg.Session()

	assert.True(t, errors.Is(err, algorithm.ErrUnknownOption))
}

func TestUITheme(t *testing.T) {
	cfg := Default()
	th, err := cfg.UITheme()
	require.NoError(t, err)
	assert.Equal(t, ui.DefaultTheme(), th)

	cfg.Theme = map[string]string{"floor": "not-a-colour"}
	_, err = cfg.UITheme()
	assert.Error(t, err)
}

func TestEmbeddedDefaultsDecodeStrictly(t *testing.T) {
	var cfg Config
	require.NoError(t, decodeStrict(defaultYAML, &cfg))

	assert.Equal(t, "bsp", cfg.Algorithm)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Len(t, cfg.Theme, 3)
	assert.NotPanics(t, func() { Default() })
}

func TestDecodeStrictRejectsUnknownKeys(t *testing.T) {
	var cfg Config
	err := decodeStrict([]byte("width: 40\ncolour: red\n"), &cfg)
	assert.Error(t, err)
}
