// FILE: lixenwraith/logconf/trace_test.go
package logconf

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTracer tests event emission and the one-way disable
func TestTracer(t *testing.T) {
	t.Run("EmitsJSON", func(t *testing.T) {
		var buf bytes.Buffer
		tracer := NewTracer(&buf)
		assert.True(t, tracer.Enabled())

		tracer.Event().Str("logger", "com.foo").Msg("hello")

		events := decodeTrace(t, &buf)
		require.Len(t, events, 1)
		assert.Equal(t, "hello", events[0]["message"])
		assert.Equal(t, "com.foo", events[0]["logger"])
		assert.Equal(t, "logconf", events[0]["component"])
		assert.Contains(t, events[0], "time")
	})

	t.Run("DisableIsSticky", func(t *testing.T) {
		var buf bytes.Buffer
		tracer := NewTracer(&buf)
		tracer.Disable()

		assert.False(t, tracer.Enabled())
		assert.Nil(t, tracer.Event())
		tracer.Event().Str("logger", "com.foo").Msg("dropped")
		assert.Empty(t, buf.String())

		tracer.Disable()
		assert.False(t, tracer.Enabled())
	})

	t.Run("Nop", func(t *testing.T) {
		tracer := NopTracer()
		assert.False(t, tracer.Enabled())
		assert.NotPanics(t, func() {
			tracer.Event().Msg("nothing")
		})
	})

	t.Run("NilTracerParser", func(t *testing.T) {
		p := NewParser(nil)
		require.NotNil(t, p.Tracer())
		assert.False(t, p.Tracer().Enabled())
	})
	t.Run("IgnoresGlobalLevel", func(t *testing.T) {
		previous := zerolog.GlobalLevel()
		t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)

		var buf bytes.Buffer
		tracer := NewTracer(&buf)
		assert.True(t, tracer.Enabled())

		NewParser(tracer).Run(propsOf("logger.9bad", "info"), NewStore())

		events := decodeTrace(t, &buf)
		assert.Contains(t, messages(events), "name is illegal, it should be package or class fullname, skip")
	})
}
