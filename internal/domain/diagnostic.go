package domain

import "fmt"

// Severity follows the LSP DiagnosticSeverity numbering.
type Severity int

const (
	SeverityError       Severity = 1
	SeverityWarning     Severity = 2
	SeverityInformation Severity = 3
	SeverityHint        Severity = 4
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "Error"
	case SeverityWarning:
		return "Warning"
	case SeverityInformation:
		return "Information"
	case SeverityHint:
		return "Hint"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a host-reported issue for a document.
type Diagnostic struct {
	Range    Range    `json:"range"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Source   string   `json:"source,omitempty"`
}

// FormatDiagnostics renders each diagnostic as "Line <n>: <message> (<severity>)",
// keeping source order. Lines are 1-based. A missing severity is reported as
// Error, as LSP clients treat it.
func FormatDiagnostics(diags []Diagnostic) []string {
	problems := make([]string, 0, len(diags))
	for _, d := range diags {
		sev := d.Severity
		if sev == 0 {
			sev = SeverityError
		}
		problems = append(problems, fmt.Sprintf("Line %d: %s (%s)", d.Range.Start.Line+1, d.Message, sev))
	}
	return problems
}
