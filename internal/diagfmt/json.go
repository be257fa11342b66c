package diagfmt

import (
	"encoding/json"
	"io"

	"ponyfmt/internal/diag"
	"ponyfmt/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// JSON пишет диагностики bag как один JSON-документ.
func JSON(w io.Writer, bag *diag.Bag, sf *source.File) error {
	out := DiagnosticsOutput{Diagnostics: []DiagnosticJSON{}}
	if bag != nil {
		bag.Sort()
		for _, d := range bag.Items() {
			loc := LocationJSON{StartByte: d.Primary.Start, EndByte: d.Primary.End}
			if sf != nil {
				start, end := sf.Resolve(d.Primary)
				loc.File = sf.Path
				loc.StartLine, loc.StartCol = start.Line, start.Col
				loc.EndLine, loc.EndCol = end.Line, end.Col
			}
			out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{
				Severity: d.Severity.String(),
				Code:     d.Code.ID(),
				Message:  d.Message,
				Location: loc,
			})
		}
	}
	out.Count = len(out.Diagnostics)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
