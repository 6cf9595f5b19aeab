package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quell/internal/ast"
	"quell/internal/diag"
	"quell/internal/diagfmt"
	"quell/internal/driver"
	"quell/internal/observ"
	"quell/internal/source"
	"quell/internal/suppress"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] <fixtures-dir>",
	Short: "Scan unit fixtures and gate their diagnostics",
	Long: `Load every *.unit.json fixture from a directory, scan each syntax tree
for marker-annotated regions and print the diagnostics that survive the gate.
All three suppression mechanisms apply here`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	registerSuppressFlags(scanCmd)
	scanCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	scanCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	scanCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	scanCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	scanCmd.Flags().String("ui", "auto", "progress UI mode (auto|on|off)")
	scanCmd.Flags().Bool("scan-cache", false, "enable persistent disk cache for scan results")
	scanCmd.Flags().Bool("dedup", false, "collapse duplicate diagnostics in merged output (json|short)")
}

// runScan executes the "scan" command: it loads the fixtures, builds the
// shared universe, runs the per-unit pass (optionally in parallel and behind
// a progress UI) and renders the forwarded diagnostics.
func runScan(cmd *cobra.Command, args []string) error {
	fixturesDir := args[0]

	setup, err := readSuppressSetup(cmd)
	if err != nil {
		return err
	}
	settings, err := readRenderSettings(cmd)
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	dedup, err := cmd.Flags().GetBool("dedup")
	if err != nil {
		return fmt.Errorf("failed to get dedup flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	useCache, err := cmd.Flags().GetBool("scan-cache")
	if err != nil {
		return fmt.Errorf("failed to get scan-cache flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	timer := observ.NewTimer()
	loadPhase := timer.Begin("load")

	paths, err := driver.ListUnitFixtures(fixturesDir)
	if err != nil {
		return fmt.Errorf("failed to list fixtures: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no *.unit.json fixtures in %s", fixturesDir)
	}

	files := source.NewFileSetWithBase(fixturesDir)
	universe := ast.NewUniverse()
	units := make([]*driver.Unit, 0, len(paths))
	for _, p := range paths {
		unit, loadErr := driver.LoadUnitFixture(p, files, universe)
		if loadErr != nil {
			return loadErr
		}
		units = append(units, unit)
	}
	timer.End(loadPhase, fmt.Sprintf("%d units", len(units)))

	confBag := diag.NewBag(16)
	eng, err := suppress.NewEngine(setup.config, files, universe, setup.marker, diag.BagReporter{Bag: confBag})
	if err != nil {
		return err
	}

	var cache *driver.ScanCache
	if useCache {
		cache, err = driver.OpenScanCache("quell")
		if err != nil {
			return fmt.Errorf("failed to open scan cache: %w", err)
		}
	}

	opts := driver.ProcessOptions{
		MaxDiagnostics: settings.max,
		Jobs:           jobs,
		Cache:          cache,
	}

	runPhase := timer.Begin("scan+gate")
	var results []driver.UnitResult
	if shouldUseTUI(mode) && settings.format == "pretty" {
		results, err = runScanWithUI(cmd.Context(), "quell scan", eng, files, units, opts)
	} else {
		results, err = driver.ProcessUnits(cmd.Context(), eng, files, units, opts)
	}
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	hits := 0
	for _, r := range results {
		if r.CacheHit {
			hits++
		}
	}
	note := ""
	if cache != nil {
		note = fmt.Sprintf("cache: %d hits", hits)
	}
	timer.End(runPhase, note)

	// Диагностика конфигурации (например, неразрешённый маркер) идёт
	// первой: она не привязана к юнитам и сама не подавляется.
	if confBag.Len() > 0 {
		if renderErr := renderBag(confBag, files, settings); renderErr != nil {
			return renderErr
		}
	}

	exit := 0
	switch settings.format {
	case "pretty":
		for idx, r := range results {
			if r.Forwarded.Len() == 0 {
				continue
			}
			if idx > 0 {
				fmt.Fprintln(os.Stdout)
			}
			file := files.Get(r.FileID)
			displayPath := file.FormatPath(settings.pathMode.DisplayMode(), files.BaseDir())
			fmt.Fprintf(os.Stdout, "== %s ==\n", displayPath)
			diagfmt.Pretty(os.Stdout, r.Forwarded, files, diagfmt.PrettyOpts{
				Color:     settings.useColor,
				Context:   true,
				PathMode:  settings.pathMode,
				ShowNotes: settings.withNotes,
			})
			if r.Forwarded.HasErrors() {
				exit = 1
			}
		}
	default:
		merged := diag.NewBag(settings.max)
		for _, r := range results {
			merged.Merge(r.Forwarded)
			if r.Forwarded.HasErrors() {
				exit = 1
			}
		}
		if dedup {
			// Юниты из развёрнутых форм могут продублировать находки;
			// объединённый вывод сортируем и схлопываем повторы.
			merged.Sort()
			merged.Dedup()
		}
		if renderErr := renderBag(merged, files, settings); renderErr != nil {
			return renderErr
		}
	}

	if !quiet {
		forwarded, dropped := 0, 0
		for _, r := range results {
			forwarded += r.Forwarded.Len()
			dropped += r.Dropped
		}
		fmt.Fprintf(os.Stderr, "quell: %d units, %d forwarded, %d dropped\n", len(results), forwarded, dropped)
	}
	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if exit != 0 {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("") // Silent error - diagnostics already printed
	}
	return nil
}
