// Package config provides application configuration structures and helpers.
package config

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultLogLevel  = "warn"
	defaultLogOutput = "stderr"
)

// Config holds the settings shared by the demo binaries.
// Nothing here is read from the command line: every argument is data.
type Config struct {
	LogLevel  string // zap level name
	LogOutput string // zap output path; stdout is reserved for program output
	Logger    *zap.SugaredLogger
}

// NewConfig creates a Config from defaults and environment variables and builds its logger.
func NewConfig() *Config {
	cfg := &Config{
		LogLevel:  defaultLogLevel,
		LogOutput: defaultLogOutput,
	}

	readEnvironment(cfg)
	cfg.Logger = newLogger(cfg)

	return cfg
}

func readEnvironment(cfg *Config) {
	if lvl := os.Getenv("DEMO_LOG_LEVEL"); lvl != "" {
		if _, err := zapcore.ParseLevel(lvl); err == nil {
			cfg.LogLevel = lvl
		} else {
			log.Printf("invalid DEMO_LOG_LEVEL env var: %v", err)
		}
	}

	if out := os.Getenv("DEMO_LOG_OUTPUT"); out != "" {
		if isStdout(out) {
			log.Printf("invalid DEMO_LOG_OUTPUT env var: %q is reserved for program output", out)
		} else {
			cfg.LogOutput = out
		}
	}
}

func isStdout(path string) bool {
	return path == "stdout" || path == "/dev/stdout"
}

// newLogger never fails: a logger that cannot be built degrades to a no-op one,
// so logging problems never change the program's exit status.
func newLogger(cfg *Config) *zap.SugaredLogger {
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{cfg.LogOutput}
	logCfg.ErrorOutputPaths = []string{defaultLogOutput}

	lvl, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		lvl = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logCfg.Level = lvl

	logger, err := logCfg.Build()
	if err != nil {
		log.Printf("build logger: %v", err)
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
