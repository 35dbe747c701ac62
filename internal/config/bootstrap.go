package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureUserConfig places an editable copy of the shipped default config in
// the data dir on first run and returns its path. An existing user copy is
// never touched.
func EnsureUserConfig(dataDir, defaultPath string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	switch _, err := os.Stat(userPath); {
	case err == nil:
		return userPath, nil
	case !errors.Is(err, os.ErrNotExist):
		return "", err
	}

	b, err := os.ReadFile(defaultPath)
	if err != nil {
		return "", fmt.Errorf("read default config: %w", err)
	}
	if err := os.WriteFile(userPath, b, 0o644); err != nil {
		return "", fmt.Errorf("seed user config: %w", err)
	}
	return userPath, nil
}
