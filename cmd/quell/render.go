package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quell/internal/diag"
	"quell/internal/diagfmt"
	"quell/internal/source"
)

// renderSettings captures the output shape shared by filter and scan.
type renderSettings struct {
	format    string
	useColor  bool
	withNotes bool
	pathMode  diagfmt.PathMode
	max       int
}

func readRenderSettings(cmd *cobra.Command) (renderSettings, error) {
	var s renderSettings

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return s, fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "short":
		s.format = format
	default:
		return s, fmt.Errorf("unknown format: %s", format)
	}

	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return s, fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	s.withNotes = withNotes

	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return s, fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	s.pathMode = diagfmt.PathModeAuto
	if fullPath {
		s.pathMode = diagfmt.PathModeAbsolute
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return s, fmt.Errorf("failed to get color flag: %w", err)
	}
	s.useColor = colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return s, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	s.max = maxDiagnostics

	return s, nil
}

// renderBag выводит один Bag в выбранном формате.
func renderBag(bag *diag.Bag, fs *source.FileSet, s renderSettings) error {
	switch s.format {
	case "pretty":
		diagfmt.Pretty(os.Stdout, bag, fs, diagfmt.PrettyOpts{
			Color:     s.useColor,
			Context:   true,
			PathMode:  s.pathMode,
			ShowNotes: s.withNotes,
		})
	case "short":
		output := diag.FormatShortDiagnostics(bag.Items(), fs, s.withNotes)
		if output != "" {
			fmt.Fprintln(os.Stdout, output)
		}
	case "json":
		opts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         s.pathMode,
			Max:              s.max,
			IncludeNotes:     s.withNotes,
		}
		if err := diagfmt.JSON(os.Stdout, bag, fs, opts); err != nil {
			return fmt.Errorf("failed to format diagnostics: %w", err)
		}
	}
	return nil
}
