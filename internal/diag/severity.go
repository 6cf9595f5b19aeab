package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for warning diagnostics; the only severity subject
	// to suppression.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// ParseSeverity переводит строковую метку из хостового потока в Severity.
// Неизвестные метки считаются ошибками уровня хоста и остаются ERROR.
func ParseSeverity(label string) (Severity, bool) {
	switch label {
	case "info", "INFO":
		return SevInfo, true
	case "warning", "WARNING":
		return SevWarning, true
	case "error", "ERROR":
		return SevError, true
	}
	return SevError, false
}
