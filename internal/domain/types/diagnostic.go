package types

import "fmt"

// DiagnosticReason says why a value was replaced by its default.
type DiagnosticReason string

const (
	ReasonMissing        DiagnosticReason = "missing"
	ReasonUnparsable     DiagnosticReason = "unparsable"
	ReasonCountMissing   DiagnosticReason = "count-missing"
	ReasonCountClamped   DiagnosticReason = "count-clamped"
	ReasonFileMissing    DiagnosticReason = "file-missing"
	ReasonFileUnreadable DiagnosticReason = "file-unreadable"
)

// Diagnostic records one default substitution. Index is 0 for layout-level
// events such as an absent count header.
type Diagnostic struct {
	Index  int              `json:"index,omitempty"`
	Field  string           `json:"field,omitempty"`
	Path   string           `json:"path,omitempty"`
	Reason DiagnosticReason `json:"reason"`
}

// String renders the diagnostic for log and terminal output.
func (d Diagnostic) String() string {
	switch {
	case d.Index > 0 && d.Field != "":
		return fmt.Sprintf("labware %d: %s %s", d.Index, d.Field, d.Reason)
	case d.Index > 0:
		return fmt.Sprintf("labware %d: %s %s", d.Index, d.Path, d.Reason)
	case d.Field != "":
		return fmt.Sprintf("%s: %s", d.Field, d.Reason)
	default:
		return fmt.Sprintf("%s: %s", d.Path, d.Reason)
	}
}

// DiagnosticSink receives default substitutions as they happen. A nil sink
// discards them.
type DiagnosticSink func(Diagnostic)

// Report forwards d to the sink if there is one.
func (s DiagnosticSink) Report(d Diagnostic) {
	if s != nil {
		s(d)
	}
}
