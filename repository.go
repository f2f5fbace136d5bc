// FILE: lixenwraith/logconf/repository.go
package logconf

// Repository receives the configs produced by a parser run.
// Serializing concurrent access is the repository's concern.
type Repository interface {
	// ResetToDefault drops all named configs and restores the default root config
	ResetToDefault()
	// SetRootLoggerConfig replaces the root config
	SetRootLoggerConfig(cfg LoggerConfig)
	// AddLoggerConfig registers a named config
	AddLoggerConfig(cfg LoggerConfig)
	// RootLoggerConfig returns the current root config
	RootLoggerConfig() LoggerConfig
}
