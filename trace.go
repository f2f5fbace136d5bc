// FILE: lixenwraith/logconf/trace.go
package logconf

import (
	"io"

	"github.com/rs/zerolog"
)

// Tracer is the diagnostic sink the parser reports its decisions to.
// A Tracer is shared by reference, so disabling it affects every holder.
// Its output does not depend on zerolog's global level; only Disable
// silences it.
type Tracer struct {
	logger   zerolog.Logger
	disabled bool
}

// NewTracer returns a Tracer writing JSON events to w.
func NewTracer(w io.Writer) *Tracer {
	logger := zerolog.New(w).
		With().
		Timestamp().
		Str("component", "logconf").
		Logger()
	return &Tracer{logger: logger}
}

// NopTracer returns a Tracer that discards everything.
func NopTracer() *Tracer {
	return &Tracer{logger: zerolog.Nop(), disabled: true}
}

// Disable turns the tracer off. There is no way back.
func (t *Tracer) Disable() {
	t.disabled = true
	t.logger = t.logger.Level(zerolog.Disabled)
}

// Enabled reports whether events are still emitted.
func (t *Tracer) Enabled() bool {
	return !t.disabled
}

// Event starts a diagnostic event. The returned event is nil, and every
// method on it a no-op, once the tracer is disabled.
func (t *Tracer) Event() *zerolog.Event {
	if t.disabled {
		return nil
	}
	return t.logger.Log()
}
