package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/casestudypilot/casepilot/internal/domain"
)

const fileName = ".casepilot.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .casepilot.yaml from
// the case-studies repo root.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .casepilot.yaml from repoPath. Returns DefaultConfig when the
// file does not exist.
func (l *YAMLLoader) Load(repoPath string) (domain.Config, error) {
	data, err := os.ReadFile(filepath.Join(repoPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Validate the raw input before use; catches out-of-range thresholds.
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}
