// FILE: lixenwraith/logconf/errors.go
package logconf

import "errors"

var (
	// ErrNilStore is returned by the builder when WithStore is given nil
	ErrNilStore = errors.New("store cannot be nil")
	// ErrInvalidNested is returned when a nested map has a non-scalar leaf
	ErrInvalidNested = errors.New("invalid nested configuration")
	// ErrMissingLogger is returned by RequireLogger for an unconfigured name
	ErrMissingLogger = errors.New("logger not configured")
	// ErrRootLevel is returned by RequireRootLevel
	ErrRootLevel = errors.New("root logger level out of range")
	// ErrUnknownFormat is returned by Dump for an unsupported output format
	ErrUnknownFormat = errors.New("unknown dump format")
)
