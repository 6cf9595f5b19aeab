package driver

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"quell/internal/diag"
	"quell/internal/source"
)

// streamLine is one diagnostic exported by a host front-end, JSON per
// line. The engine imposes no reordering: lines are gated in the order
// the host produced them.
type streamLine struct {
	Severity string `json:"severity"`
	Code     uint16 `json:"code"`
	Message  string `json:"message"`
	Path     string `json:"path"`
	Offset   uint32 `json:"offset"`
	End      uint32 `json:"end,omitempty"`
}

// ReadDiagStream decodes a JSON-lines diagnostic stream. Every line's
// file is registered in the set (content is unknown to the stream, so
// the file is virtual and empty); repeated paths reuse the first ID so
// path-based suppression stays stable across lines.
func ReadDiagStream(r io.Reader, files *source.FileSet) ([]diag.Diagnostic, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out []diag.Diagnostic
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var sl streamLine
		if err := json.Unmarshal([]byte(line), &sl); err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", diag.SupBadStreamLine.ID(), lineNo, err)
		}
		sev, ok := diag.ParseSeverity(sl.Severity)
		if !ok {
			return nil, fmt.Errorf("%s: line %d: unknown severity %q", diag.SupBadStreamLine.ID(), lineNo, sl.Severity)
		}
		if sl.Path == "" {
			return nil, fmt.Errorf("%s: line %d: missing path", diag.SupBadStreamLine.ID(), lineNo)
		}

		var fileID source.FileID
		if f, found := files.GetByPath(sl.Path); found {
			fileID = f.ID
		} else {
			fileID = files.AddVirtual(sl.Path, nil)
		}

		end := sl.End
		if end <= sl.Offset {
			end = sl.Offset + 1
		}
		out = append(out, diag.New(sev, diag.Code(sl.Code), source.Span{File: fileID, Start: sl.Offset, End: end}, sl.Message))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
