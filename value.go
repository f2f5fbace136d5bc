// FILE: lixenwraith/logconf/value.go
package logconf

import "strings"

// valueFields is the result of splitting a logger value on commas.
// It is one of levelOnly, levelTag or levelTagThread.
type valueFields interface {
	levelField() string
}

// levelOnly is a value without any comma.
type levelOnly struct {
	level string
}

// levelTag is a value with a level and a tag. The tag may contain commas
// when a trailing field was folded back into it.
type levelTag struct {
	level string
	tag   string
}

// levelTagThread is a value whose last field parsed as a boolean.
type levelTagThread struct {
	level      string
	tag        string
	showThread bool
}

func (f levelOnly) levelField() string { return f.level }
func (f levelTag) levelField() string { return f.level }
func (f levelTagThread) levelField() string { return f.level }

// splitValue splits raw into level, tag and show-thread fields.
// The first comma ends the level and the last comma starts the show-thread
// field. A show-thread field that is not a boolean belongs to the tag.
func splitValue(raw string) valueFields {
	first := strings.IndexByte(raw, ',')
	if first < 0 {
		return levelOnly{level: raw}
	}

	last := strings.LastIndexByte(raw, ',')
	if first == last {
		return levelTag{level: raw[:first], tag: raw[first+1:]}
	}

	level, tag, tail := raw[:first], raw[first+1:last], raw[last+1:]
	if showThread, ok := ParseBool(tail); ok {
		return levelTagThread{level: level, tag: tag, showThread: showThread}
	}
	return levelTag{level: level, tag: tag + tail}
}

// ParseLoggerConfig parses a `level[,tag[,showThread]]` value for the
// logger called name. ok is false when the value is empty or its level is
// missing or unknown; the reason is reported to the tracer.
func (p *Parser) ParseLoggerConfig(name, raw string) (LoggerConfig, bool) {
	if raw == "" {
		p.tracer.Event().Str("logger", name).Msg("property value of logger is empty, skip")
		return LoggerConfig{}, false
	}

	fields := splitValue(raw)

	levelStr := fields.levelField()
	if levelStr == "" {
		p.tracer.Event().Str("logger", name).Str("value", raw).Msg("logger level is empty, skip")
		return LoggerConfig{}, false
	}
	level, ok := ParseLevel(levelStr)
	if !ok {
		p.tracer.Event().Str("logger", name).Str("level", levelStr).Msg("logger level is illegal, skip")
		return LoggerConfig{}, false
	}

	switch f := fields.(type) {
	case levelTag:
		return NewLoggerConfig(name, f.tag, level, false), true
	case levelTagThread:
		return NewLoggerConfig(name, f.tag, level, f.showThread), true
	default:
		return NewLoggerConfig(name, "", level, false), true
	}
}
