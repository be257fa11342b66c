package trace

import (
	"fmt"
	"strings"
)

// Level is the finest Scope a tracer keeps. LevelOff keeps nothing.
type Level uint8

const (
	LevelOff   Level = 0
	LevelBatch       = Level(ScopeBatch) // одна span на FormatPaths
	LevelFile        = Level(ScopeFile)  // плюс span на файл
	LevelPass        = Level(ScopePass)  // плюс проходы lex/parse/render
)

var levelNames = [...]string{
	LevelOff:   "off",
	LevelBatch: "batch",
	LevelFile:  "file",
	LevelPass:  "pass",
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel converts a flag value to a Level. "debug" is kept as an alias of "pass".
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "debug" {
		return LevelPass, nil
	}
	for l, n := range levelNames {
		if n == name {
			return Level(l), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|batch|file|pass)", s)
}

// Records reports whether events of scope survive this level.
func (l Level) Records(scope Scope) bool {
	return scope != 0 && Scope(l) >= scope
}
