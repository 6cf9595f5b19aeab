package diagfmt

import (
	"strings"
	"testing"

	"quell/internal/diag"
	"quell/internal/source"
)

func testBag() (*diag.Bag, *source.FileSet, source.FileID) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.src", []byte("let x = 1\nlet y = 2\n"))
	bag := diag.NewBag(16)
	bag.Add(diag.NewWarning(diag.Code(42), source.Span{File: id, Start: 14, End: 15}, "unused value"))
	return bag, fs, id
}

func TestPretty(t *testing.T) {
	bag, fs, _ := testBag()

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})

	out := sb.String()
	if !strings.Contains(out, "a.src:2:5: WARNING HOST0042: unused value") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "let y") {
		t.Error("context line must be off by default")
	}
}

func TestPretty_Context(t *testing.T) {
	bag, fs, _ := testBag()

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{Context: true})

	out := sb.String()
	if !strings.Contains(out, "let y = 2") {
		t.Errorf("expected source line in output:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("expected caret underline:\n%s", out)
	}
}

func TestPretty_Notes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("b.src", []byte("alpha\nbeta\n"))
	bag := diag.NewBag(4)
	bag.Add(diag.NewWarning(diag.Code(1), source.Span{File: id, Start: 0, End: 5}, "main").
		WithNote(source.Span{File: id, Start: 6, End: 10}, "declared here"))

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{ShowNotes: true})
	if !strings.Contains(sb.String(), "note: b.src:2:1: declared here") {
		t.Errorf("missing note line:\n%s", sb.String())
	}
}

func TestJSON(t *testing.T) {
	bag, fs, _ := testBag()

	var sb strings.Builder
	if err := JSON(&sb, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	out := sb.String()
	for _, want := range []string{`"severity": "WARNING"`, `"code": "HOST0042"`, `"offset": 14`, `"line": 2`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestJSON_MaxTruncates(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("c.src", []byte("x\n"))
	bag := diag.NewBag(8)
	for i := 0; i < 3; i++ {
		bag.Add(diag.NewWarning(diag.Code(1), source.Span{File: id, Start: 0, End: 1}, "w"))
	}

	var sb strings.Builder
	if err := JSON(&sb, bag, fs, JSONOpts{Max: 2}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), `"truncated": true`) {
		t.Errorf("expected truncation flag:\n%s", sb.String())
	}
}
