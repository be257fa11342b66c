package diag

import (
	"fmt"

	"ponyfmt/internal/source"
)

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
}

// Format renders the diagnostic as "path:line:col: SEVERITY CODE: message".
// A nil file falls back to raw byte offsets.
func (d Diagnostic) Format(f *source.File) string {
	if f == nil {
		return fmt.Sprintf("%s: %s %s: %s", d.Primary, d.Severity, d.Code.ID(), d.Message)
	}
	start, _ := f.Resolve(d.Primary)
	return fmt.Sprintf("%s:%d:%d: %s %s: %s", f.Path, start.Line, start.Col, d.Severity, d.Code.ID(), d.Message)
}
