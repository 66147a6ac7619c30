package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	dataDirEnv     = "GROWTHCHECK_HOME"
	defaultDataDir = ".growthcheck"
)

// resolveDataDir picks the data directory: the --data-dir flag, then
// GROWTHCHECK_HOME (from the environment or a .env file in the working
// directory), then ~/.growthcheck.
func resolveDataDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}

	// Existing environment variables win over .env entries; a missing file is fine.
	_ = godotenv.Load()
	if dir := os.Getenv(dataDirEnv); dir != "" {
		return filepath.Abs(dir)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory (set --data-dir or %s): %w", dataDirEnv, err)
	}
	return filepath.Join(home, defaultDataDir), nil
}

// newLogger returns a warn-level production logger, or a development logger
// when verbose. Both write to stderr so stdout stays clean for reports.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stderr"}
		return cfg.Build()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
