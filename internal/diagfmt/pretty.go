package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"quell/internal/diag"
	"quell/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	noteColor = color.New(color.FgBlue)
	markColor = color.New(color.FgGreen)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем (опционально) контекст строки с подчёркиванием ^~~~ по Span,
// затем Notes с аналогичным форматом. Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writePretty(w, &d, fs, opts)
	}
}

func writePretty(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	path := file.FormatPath(opts.PathMode.DisplayMode(), fs.BaseDir())

	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sev, d.Code.ID(), d.Message)

	if opts.Context {
		writeContext(w, file, d.Primary, start, opts.Color)
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nstart, _ := fs.Resolve(n.Span)
			label := "note"
			if opts.Color {
				label = noteColor.Sprint(label)
			}
			fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n", label, path, nstart.Line, nstart.Col, n.Msg)
		}
	}
}

func writeContext(w io.Writer, file *source.File, span source.Span, start source.LineCol, colorize bool) {
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	// Подчёркивание: ^ на первом байте, ~ до конца спана (в пределах строки).
	width := int(span.Len())
	if width < 1 {
		width = 1
	}
	if rest := len(line) - int(start.Col) + 1; width > rest && rest > 0 {
		width = rest
	}
	underline := "^" + strings.Repeat("~", width-1)
	if colorize {
		underline = markColor.Sprint(underline)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", int(start.Col)-1), underline)
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	}
	return infoColor
}
