// Package config provides infrastructure for loading build configurations.
// This package handles YAML parsing, schema checks, file I/O, and the
// conversion of documents into domain entities.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	"github.com/simkit-dev/modelcheck/internal/domain/entities"
)

// ConfigurationLoader loads build configurations from YAML files.
type ConfigurationLoader struct{}

// NewConfigurationLoader creates a new configuration loader.
func NewConfigurationLoader() *ConfigurationLoader {
	return &ConfigurationLoader{}
}

// Load reads, checks and converts the configuration at path.
func (l *ConfigurationLoader) Load(path string) (*entities.BuildConfiguration, error) {
	// Security: Use os.OpenRoot to prevent path traversal attacks
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(base)
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	return l.LoadFromReader(file)
}

// LoadFromReader reads, checks and converts a configuration from r.
func (l *ConfigurationLoader) LoadFromReader(r io.Reader) (*entities.BuildConfiguration, error) {
	doc, err := l.LoadDocument(r)
	if err != nil {
		return nil, err
	}
	return ToEntities(doc)
}

// LoadDocument reads a configuration document without converting it.
// The document is checked against the schema and its version must be semver.
func (l *ConfigurationLoader) LoadDocument(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("configuration is empty")
	}

	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode configuration YAML: %w", err)
	}

	if err := validateMetadata(doc.Metadata); err != nil {
		return nil, err
	}

	return &doc, nil
}

// WriteDocument encodes doc as YAML.
func WriteDocument(w io.Writer, doc *Document) error {
	if err := validateMetadata(doc.Metadata); err != nil {
		return err
	}

	encoder := yaml.NewEncoder(w, yaml.Indent(2), yaml.IndentSequence(true))
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode configuration YAML: %w", err)
	}
	return encoder.Close()
}

func validateMetadata(meta MetadataDocument) error {
	var errs []string

	if strings.TrimSpace(meta.Name) == "" {
		errs = append(errs, "configuration name is required")
	}
	if meta.Version == "" {
		errs = append(errs, "configuration version is required")
	} else if _, err := semver.NewVersion(meta.Version); err != nil {
		errs = append(errs, fmt.Sprintf("configuration version %q is not valid semver: %v", meta.Version, err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration metadata: %s", strings.Join(errs, "; "))
	}
	return nil
}
