package format

// Mode selects what the caller does with the formatted text.
// It never changes the text itself.
type Mode uint8

const (
	// ModeStdout returns the formatted text to the caller.
	ModeStdout Mode = iota
	// ModeWrite rewrites the file when the text differs.
	ModeWrite
	// ModeCheck only reports whether the text differs.
	ModeCheck
)

func (m Mode) String() string {
	switch m {
	case ModeStdout:
		return "stdout"
	case ModeWrite:
		return "write"
	case ModeCheck:
		return "check"
	default:
		return "unknown"
	}
}

// ParseMode maps a mode name back to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "stdout", "":
		return ModeStdout, true
	case "write":
		return ModeWrite, true
	case "check":
		return ModeCheck, true
	}
	return ModeStdout, false
}

const (
	// DefaultIndentWidth is the number of spaces per indentation level.
	DefaultIndentWidth = 2
	// DefaultInlineLimit is the display width below which a single-line body stays inline.
	DefaultInlineLimit = 50
)

// Options control formatter behaviour.
type Options struct {
	IndentWidth int
	InlineLimit int
	Mode        Mode
}

// WithDefaults fills unset fields with the default values.
func (o Options) WithDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = DefaultIndentWidth
	}
	if o.InlineLimit <= 0 {
		o.InlineLimit = DefaultInlineLimit
	}
	return o
}
