package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setEnvAndRun(t *testing.T, env map[string]string, fn func()) {
	t.Helper()

	backup := map[string]string{}
	for k := range env {
		backup[k] = os.Getenv(k)
	}

	for k, v := range env {
		require.NoError(t, os.Setenv(k, v))
	}
	defer func() {
		for k := range env {
			_ = os.Unsetenv(k)
			if old, ok := backup[k]; ok && old != "" {
				_ = os.Setenv(k, old)
			}
		}
	}()

	fn()
}

func TestNewConfig_Defaults(t *testing.T) {
	setEnvAndRun(t, map[string]string{"DEMO_LOG_LEVEL": "", "DEMO_LOG_OUTPUT": ""}, func() {
		cfg := NewConfig()
		require.Equal(t, "warn", cfg.LogLevel)
		require.Equal(t, "stderr", cfg.LogOutput)
		require.NotNil(t, cfg.Logger)
	})
}

func TestReadEnvironment(t *testing.T) {
	out := filepath.Join(t.TempDir(), "demo.log")
	env := map[string]string{
		"DEMO_LOG_LEVEL":  "debug",
		"DEMO_LOG_OUTPUT": out,
	}

	setEnvAndRun(t, env, func() {
		cfg := &Config{LogLevel: defaultLogLevel, LogOutput: defaultLogOutput}
		readEnvironment(cfg)

		require.Equal(t, "debug", cfg.LogLevel)
		require.Equal(t, out, cfg.LogOutput)
	})
}

func TestReadEnvironment_InvalidValuesKeepDefaults(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"bad-level", map[string]string{"DEMO_LOG_LEVEL": "loud"}},
		{"stdout", map[string]string{"DEMO_LOG_OUTPUT": "stdout"}},
		{"dev-stdout", map[string]string{"DEMO_LOG_OUTPUT": "/dev/stdout"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setEnvAndRun(t, tc.env, func() {
				cfg := &Config{LogLevel: defaultLogLevel, LogOutput: defaultLogOutput}
				readEnvironment(cfg)

				require.Equal(t, defaultLogLevel, cfg.LogLevel)
				require.Equal(t, defaultLogOutput, cfg.LogOutput)
			})
		})
	}
}

func TestNewLogger_WritesJSONAtLevel(t *testing.T) {
	out := filepath.Join(t.TempDir(), "demo.log")
	logger := newLogger(&Config{LogLevel: "info", LogOutput: out})

	logger.Debugw("hidden")
	logger.Infow("shown", "argc", 3)
	require.NoError(t, logger.Sync())

	b, err := os.ReadFile(out)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(b, &entry))
	require.Equal(t, "shown", entry["msg"])
	require.EqualValues(t, 3, entry["argc"])
	require.NotContains(t, string(b), "hidden")
}

func TestNewLogger_FallsBackToNop(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "demo.log")
	logger := newLogger(&Config{LogLevel: "info", LogOutput: missing})

	require.NotNil(t, logger)
	require.NotPanics(t, func() { logger.Infow("dropped") })
	require.NoFileExists(t, missing)
}
