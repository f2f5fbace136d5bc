// FILE: lixenwraith/logconf/boolean.go
package logconf

import "strings"

var boolTokens = map[string]bool{
	"true":  true,
	"yes":   true,
	"on":    true,
	"1":     true,
	"false": false,
	"no":    false,
	"off":   false,
	"0":     false,
}

// ParseBool maps a closed set of case-insensitive tokens to a boolean.
// ok is false when s is not one of the accepted tokens; callers treat that
// as a signal to fall back, not as a failure.
func ParseBool(s string) (value bool, ok bool) {
	value, ok = boolTokens[strings.ToLower(s)]
	return value, ok
}
