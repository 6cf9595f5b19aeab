package project

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"quell/internal/suppress"
)

// DefaultManifestName is looked up in the working directory when no
// manifest path is given explicitly.
const DefaultManifestName = "quell.toml"

// Manifest describes a quell.toml file:
//
//	[suppress]
//	marker   = "corp.lint.Suppress"
//	messages = ["unused value"]
//	paths    = ['generated/']
//	roots    = ["/repo/src"]
type Manifest struct {
	Suppress SuppressSection `toml:"suppress"`
}

// SuppressSection mirrors the engine's Config plus the marker name.
type SuppressSection struct {
	Marker   string   `toml:"marker"`
	Messages []string `toml:"messages"`
	Paths    []string `toml:"paths"`
	Roots    []string `toml:"roots"`
}

// ErrSuppressSectionMissing indicates that [suppress] is missing in a manifest.
var ErrSuppressSectionMissing = errors.New("missing [suppress]")

// Load parses a manifest file. A missing [suppress] section is an error:
// манифест без него бесполезен, лучше сказать об этом сразу.
func Load(path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("suppress") {
		return nil, fmt.Errorf("%s: %w", path, ErrSuppressSectionMissing)
	}
	return &m, nil
}

// LoadIfExists reads the manifest at path, or returns (nil, nil) when the
// file does not exist. Used for the optional default quell.toml.
func LoadIfExists(path string) (*Manifest, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return Load(path)
}

// Config converts the manifest into the engine configuration.
func (m *Manifest) Config() suppress.Config {
	if m == nil {
		return suppress.Config{}
	}
	return suppress.Config{
		MessageFilters: m.Suppress.Messages,
		PathFilters:    m.Suppress.Paths,
		SourceRoots:    m.Suppress.Roots,
	}
}

// Marker returns the configured marker FQN (empty when absent).
func (m *Manifest) Marker() string {
	if m == nil {
		return ""
	}
	return m.Suppress.Marker
}
