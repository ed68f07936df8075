// Package manifest records what a generation run produced.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/caldernotes/vaultgen/internal/constants"
	"github.com/caldernotes/vaultgen/internal/template"
)

// Manifest describes one generation run of a vault.
type Manifest struct {
	GenerationID string    `yaml:"generation_id"`
	Template     string    `yaml:"template"`
	Version      string    `yaml:"version,omitempty"`
	GeneratedAt  time.Time `yaml:"generated_at"`
	Folders      int       `yaml:"folders"`
	Files        int       `yaml:"files"`
}

// Build assembles a manifest for a generation of spec.
func Build(spec *template.Spec) *Manifest {
	return &Manifest{
		GenerationID: uuid.New().String(),
		Template:     spec.Name,
		Version:      spec.Version,
		GeneratedAt:  time.Now().UTC(),
		Folders:      template.CountDirs(spec.Structure.Root),
		Files:        template.CountFiles(spec.Structure.Root),
	}
}

// Write saves the manifest under basePath/.vaultgen/manifest.yaml.
func Write(basePath string, m *Manifest) error {
	metaDir := filepath.Join(basePath, constants.MetaDirName)
	if err := os.MkdirAll(metaDir, constants.StandardDirPerms); err != nil {
		return fmt.Errorf("failed to create metadata directory: %w", err)
	}

	manifestPath := filepath.Join(metaDir, constants.ManifestFileName)
	file, err := os.Create(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to create manifest file: %w", err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(m); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	return nil
}

// Load reads the manifest of a previously generated vault.
func Load(basePath string) (*Manifest, error) {
	manifestPath := filepath.Join(basePath, constants.MetaDirName, constants.ManifestFileName)
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}
