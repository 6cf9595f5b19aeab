package diagfmt

import (
	"encoding/json"
	"io"

	"quell/internal/diag"
	"quell/internal/source"
)

type jsonDiagnostic struct {
	Severity string     `json:"severity"`
	Code     string     `json:"code"`
	Message  string     `json:"message"`
	Path     string     `json:"path"`
	Offset   uint32     `json:"offset"`
	EndOff   uint32     `json:"end"`
	Line     uint32     `json:"line,omitempty"`
	Col      uint32     `json:"col,omitempty"`
	Notes    []jsonNote `json:"notes,omitempty"`
}

type jsonNote struct {
	Message string `json:"message"`
	Offset  uint32 `json:"offset"`
}

type jsonOutput struct {
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
	Truncated   bool             `json:"truncated,omitempty"`
}

// JSON сериализует диагностики в один JSON-документ.
// Порядок — как в bag; Max обрезает только вывод.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	items := bag.Items()
	out := jsonOutput{Diagnostics: make([]jsonDiagnostic, 0, len(items))}

	for _, d := range items {
		if opts.Max > 0 && len(out.Diagnostics) >= opts.Max {
			out.Truncated = true
			break
		}

		file := fs.Get(d.Primary.File)
		jd := jsonDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Path:     file.FormatPath(opts.PathMode.DisplayMode(), fs.BaseDir()),
			Offset:   d.Primary.Start,
			EndOff:   d.Primary.End,
		}
		if opts.IncludePositions {
			start, _ := fs.Resolve(d.Primary)
			jd.Line = start.Line
			jd.Col = start.Col
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				jd.Notes = append(jd.Notes, jsonNote{Message: n.Msg, Offset: n.Span.Start})
			}
		}
		out.Diagnostics = append(out.Diagnostics, jd)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
