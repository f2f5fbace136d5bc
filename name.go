// FILE: lixenwraith/logconf/name.go
package logconf

import "regexp"

// loggerNamePattern matches package or class style full names: dot-separated
// segments starting with a letter, underscore or currency sign.
var loggerNamePattern = regexp.MustCompile(
	`^(?:[\p{L}_\p{Sc}][\p{L}\p{N}_\p{Sc}]*\.)*[\p{L}_\p{Sc}][\p{L}\p{N}_\p{Sc}]*$`,
)

// IsLoggerName reports whether name is a legal dotted logger name.
func IsLoggerName(name string) bool {
	return loggerNamePattern.MatchString(name)
}
