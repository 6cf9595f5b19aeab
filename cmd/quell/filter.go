package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"quell/internal/ast"
	"quell/internal/diag"
	"quell/internal/driver"
	"quell/internal/observ"
	"quell/internal/source"
	"quell/internal/suppress"
)

var filterCmd = &cobra.Command{
	Use:   "filter [flags] [stream.jsonl]",
	Short: "Filter a diagnostic stream through message and path patterns",
	Long: `Read host diagnostics as JSON lines (from a file or stdin), drop the
warnings matched by the configured message and path filters, and print the rest.
Marker regions need syntax trees and do not apply here`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFilter,
}

func init() {
	registerSuppressFlags(filterCmd)
	filterCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	filterCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	filterCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	filterCmd.Flags().Bool("dedup", false, "collapse duplicate diagnostics before printing")
}

// runFilter executes the "filter" command: it reads the stream, gates each
// diagnostic against the configured filters and renders the survivors in the
// chosen output format. The process exits non-zero when forwarded diagnostics
// contain errors.
func runFilter(cmd *cobra.Command, args []string) error {
	setup, err := readSuppressSetup(cmd)
	if err != nil {
		return err
	}
	settings, err := readRenderSettings(cmd)
	if err != nil {
		return err
	}
	dedup, err := cmd.Flags().GetBool("dedup")
	if err != nil {
		return fmt.Errorf("failed to get dedup flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	var in io.Reader = os.Stdin
	streamName := "<stdin>"
	if len(args) == 1 && args[0] != "-" {
		f, openErr := os.Open(args[0])
		if openErr != nil {
			return fmt.Errorf("failed to open stream: %w", openErr)
		}
		defer f.Close()
		in = f
		streamName = args[0]
	}

	timer := observ.NewTimer()
	readPhase := timer.Begin("read")

	files := source.NewFileSet()
	diags, err := driver.ReadDiagStream(in, files)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", streamName, err)
	}
	timer.End(readPhase, fmt.Sprintf("%d diagnostics", len(diags)))

	// Маркер здесь не действует: деревьев в потоке нет, и предупреждение
	// о неразрешённом типе было бы шумом. Передаём пустое имя.
	confBag := diag.NewBag(16)
	eng, err := suppress.NewEngine(setup.config, files, ast.NewUniverse(), "", diag.BagReporter{Bag: confBag})
	if err != nil {
		return err
	}

	gatePhase := timer.Begin("gate")
	forwarded := diag.NewBag(settings.max)
	var sink diag.Reporter = diag.BagReporter{Bag: forwarded}
	if dedup {
		// Хосты, сканирующие оригинальную и развёрнутую формы, дублируют
		// находки; убираем повторы на лету, не меняя порядок потока.
		sink = diag.NewDedupReporter(sink)
	}
	dropped := 0
	for _, d := range diags {
		if eng.Evaluate(d) == suppress.Drop {
			dropped++
			continue
		}
		sink.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes)
	}
	timer.End(gatePhase, fmt.Sprintf("%d dropped", dropped))

	if err := renderBag(forwarded, files, settings); err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "quell: %d forwarded, %d dropped\n", forwarded.Len(), dropped)
	}
	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if forwarded.HasErrors() {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("") // Silent error - diagnostics already printed
	}
	return nil
}
