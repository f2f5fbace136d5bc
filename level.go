// FILE: lixenwraith/logconf/level.go
package logconf

import (
	"fmt"
	"strings"
)

// Level is the severity of a logger configuration.
// Levels are ordered from most verbose (Verbose) to Off, which disables output.
type Level int

const (
	// LevelVerbose emits everything
	LevelVerbose Level = iota
	// LevelDebug is for diagnostic output
	LevelDebug
	// LevelInfo is for normal operational events
	LevelInfo
	// LevelWarn is for unexpected but recoverable conditions
	LevelWarn
	// LevelError is for failures
	LevelError
	// LevelAssert is for conditions that should never happen
	LevelAssert
	// LevelOff disables output for the logger
	LevelOff
)

var levelNames = [...]string{
	LevelVerbose: "VERBOSE",
	LevelDebug:   "DEBUG",
	LevelInfo:    "INFO",
	LevelWarn:    "WARN",
	LevelError:   "ERROR",
	LevelAssert:  "ASSERT",
	LevelOff:     "OFF",
}

// Levels returns every level in ascending severity.
func Levels() []Level {
	return []Level{LevelVerbose, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelAssert, LevelOff}
}

// String returns the upper-case name of the level.
func (l Level) String() string {
	if l < LevelVerbose || l > LevelOff {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// Valid reports whether l is a member of the enumeration.
func (l Level) Valid() bool {
	return l >= LevelVerbose && l <= LevelOff
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid level %d", int(l))
	}
	return []byte(levelNames[l]), nil
}

// ParseLevel matches s case-insensitively against the level names.
// The second return value is false for an unknown token.
func ParseLevel(s string) (Level, bool) {
	upper := strings.ToUpper(s)
	for l, name := range levelNames {
		if name == upper {
			return Level(l), true
		}
	}
	return 0, false
}
