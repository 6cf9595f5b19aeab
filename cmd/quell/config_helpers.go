package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quell/internal/project"
	"quell/internal/suppress"
)

// suppressSetup is the merged configuration a command runs with:
// manifest values first, then flag overrides on top.
type suppressSetup struct {
	config suppress.Config
	marker string
}

// readSuppressSetup собирает конфигурацию подавления: quell.toml (или
// файл из --config), поверх — флаги команды. Непустой флаг побеждает
// соответствующее поле манифеста целиком, без слияния списков.
func readSuppressSetup(cmd *cobra.Command) (suppressSetup, error) {
	var setup suppressSetup

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return setup, fmt.Errorf("failed to get config flag: %w", err)
	}

	var manifest *project.Manifest
	if configPath != "" {
		manifest, err = project.Load(configPath)
	} else {
		manifest, err = project.LoadIfExists(project.DefaultManifestName)
	}
	if err != nil {
		return setup, err
	}
	if manifest != nil {
		setup.config = manifest.Config()
		setup.marker = manifest.Marker()
	}

	messages, err := cmd.Flags().GetString("suppress-messages")
	if err != nil {
		return setup, fmt.Errorf("failed to get suppress-messages flag: %w", err)
	}
	paths, err := cmd.Flags().GetString("suppress-paths")
	if err != nil {
		return setup, fmt.Errorf("failed to get suppress-paths flag: %w", err)
	}
	roots, err := cmd.Flags().GetString("source-roots")
	if err != nil {
		return setup, fmt.Errorf("failed to get source-roots flag: %w", err)
	}
	marker, err := cmd.Flags().GetString("marker")
	if err != nil {
		return setup, fmt.Errorf("failed to get marker flag: %w", err)
	}

	setup.config = setup.config.Merge(suppress.Config{
		MessageFilters: suppress.SplitList(messages),
		PathFilters:    suppress.SplitList(paths),
		SourceRoots:    suppress.SplitList(roots),
	})
	if marker != "" {
		setup.marker = marker
	}

	return setup, nil
}

// registerSuppressFlags добавляет общие флаги подавления команде.
func registerSuppressFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to quell.toml (default: ./quell.toml if present)")
	cmd.Flags().String("suppress-messages", "", "semicolon-separated message regex filters")
	cmd.Flags().String("suppress-paths", "", "semicolon-separated path regex filters")
	cmd.Flags().String("source-roots", "", "semicolon-separated source root prefixes")
	cmd.Flags().String("marker", "", "fully qualified name of the suppression marker type")
}
