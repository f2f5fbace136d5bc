// FILE: lixenwraith/logconf/parser.go
package logconf

import "strings"

// Reserved property keys
const (
	// KeyDebug toggles diagnostic tracing; "false" turns it off
	KeyDebug = "debug"
	// KeyRoot holds the root logger value
	KeyRoot = "root"
	// LoggerPrefix starts every named logger key, e.g. "logger.com.foo.Bar"
	LoggerPrefix = "logger."
)

// Parser turns Properties into logger configs and applies them to a Repository.
type Parser struct {
	tracer *Tracer
}

// NewParser creates a Parser reporting to tracer. A nil tracer discards
// all diagnostics.
func NewParser(tracer *Tracer) *Parser {
	if tracer == nil {
		tracer = NopTracer()
	}
	return &Parser{tracer: tracer}
}

// Tracer returns the tracer the parser reports to.
func (p *Parser) Tracer() *Tracer {
	return p.tracer
}

// Run resets repo and applies props to it. The debug flag is handled first
// so that it can silence the trace of everything after it, then the root
// entry, then every named logger entry. Invalid entries are traced and
// skipped; Run never fails.
func (p *Parser) Run(props *Properties, repo Repository) {
	repo.ResetToDefault()
	p.parseDebugFlag(props)
	p.parseRootEntry(props, repo)
	p.scanNamedEntries(props, repo)
}

func (p *Parser) parseDebugFlag(props *Properties) {
	value, exists := props.Get(KeyDebug)
	if !exists {
		return
	}
	debug, ok := ParseBool(value)
	if !ok {
		p.tracer.Event().Str("value", value).Msg("debug flag is not a boolean, ignored")
		return
	}
	if !debug {
		p.tracer.Disable()
	}
}

func (p *Parser) parseRootEntry(props *Properties, repo Repository) {
	value, exists := props.Get(KeyRoot)
	if !exists {
		return
	}
	cfg, ok := p.ParseLoggerConfig(RootLoggerName, value)
	if !ok {
		p.tracer.Event().
			Stringer("config", repo.RootLoggerConfig()).
			Msg("parse root logger configure failed, use default")
		return
	}
	repo.SetRootLoggerConfig(cfg)
	p.tracer.Event().Stringer("config", cfg).Msg("root logger")
}

func (p *Parser) scanNamedEntries(props *Properties, repo Repository) {
	for _, key := range props.Keys() {
		if len(key) <= len(LoggerPrefix) || !strings.HasPrefix(key, LoggerPrefix) {
			continue
		}

		name := key[len(LoggerPrefix):]
		if !IsLoggerName(name) {
			p.tracer.Event().
				Str("logger", name).
				Msg("name is illegal, it should be package or class fullname, skip")
			continue
		}

		value, _ := props.Get(key)
		cfg, ok := p.ParseLoggerConfig(name, value)
		if !ok {
			continue
		}
		p.tracer.Event().Str("logger", name).Stringer("config", cfg).Msg("logger")
		repo.AddLoggerConfig(cfg)
	}
}
