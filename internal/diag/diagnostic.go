package diag

import (
	"quell/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is the opaque payload that travels through the gate.
// A forwarded diagnostic reaches the sink exactly as it was reported:
// same severity, message and primary span.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
