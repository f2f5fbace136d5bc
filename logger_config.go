// FILE: lixenwraith/logconf/logger_config.go
package logconf

import "fmt"

// RootLoggerName is the reserved name of the root logger configuration.
const RootLoggerName = "root"

// LoggerConfig is the resolved configuration of one logger.
// It is immutable once built; the zero value is not a valid config.
type LoggerConfig struct {
	name       string
	tag        string
	hasTag     bool
	level      Level
	showThread bool
}

// NewLoggerConfig builds a config. An empty tag means the logger has no tag
// of its own and consumers derive one from the name.
func NewLoggerConfig(name, tag string, level Level, showThread bool) LoggerConfig {
	return LoggerConfig{
		name:       name,
		tag:        tag,
		hasTag:     tag != "",
		level:      level,
		showThread: showThread,
	}
}

// DefaultRootLoggerConfig is the root config a repository starts from.
func DefaultRootLoggerConfig() LoggerConfig {
	return NewLoggerConfig(RootLoggerName, "", LevelVerbose, false)
}

// Name returns the logger name, or RootLoggerName for the root config.
func (c LoggerConfig) Name() string { return c.name }

// Tag returns the configured tag. ok is false when no tag was configured.
func (c LoggerConfig) Tag() (tag string, ok bool) { return c.tag, c.hasTag }

// TagOrName returns the tag, falling back to the logger name.
func (c LoggerConfig) TagOrName() string {
	if c.hasTag {
		return c.tag
	}
	return c.name
}

// Level returns the configured level.
func (c LoggerConfig) Level() Level { return c.level }

// ShowThread reports whether thread identity is included in log lines.
func (c LoggerConfig) ShowThread() bool { return c.showThread }

// IsRoot reports whether c is the root logger config.
func (c LoggerConfig) IsRoot() bool { return c.name == RootLoggerName }

// String renders the config for diagnostics.
func (c LoggerConfig) String() string {
	tag := "<none>"
	if c.hasTag {
		tag = fmt.Sprintf("%q", c.tag)
	}
	return fmt.Sprintf("LoggerConfig{name=%s, tag=%s, level=%s, showThread=%t}",
		c.name, tag, c.level, c.showThread)
}
