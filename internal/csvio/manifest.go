package csvio

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const ManifestFile = "manifest.yaml"

// Manifest records the provenance of a serialized dataset so a store can be
// traced back to the seed and counts that produced it.
type Manifest struct {
	GeneratedAt time.Time      `yaml:"generated_at"`
	Seed        int64          `yaml:"seed"`
	Counts      ManifestCounts `yaml:"counts"`
	Files       map[string]int `yaml:"files"`
}

type ManifestCounts struct {
	Customers int `yaml:"customers"`
	Products  int `yaml:"products"`
	Orders    int `yaml:"orders"`
	Reviews   int `yaml:"reviews"`
}

func WriteManifest(dir string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	return nil
}

func ReadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return &m, nil
}
