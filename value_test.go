// FILE: lixenwraith/logconf/value_test.go
package logconf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplitValue tests the comma tokenization of logger values
func TestSplitValue(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected valueFields
	}{
		{"NoComma", "verbose", levelOnly{level: "verbose"}},
		{"OneComma", "debug,MyTag", levelTag{level: "debug", tag: "MyTag"}},
		{"OneCommaEmptyTag", "debug,", levelTag{level: "debug", tag: ""}},
		{"ThreeFields", "info,MyTag,true", levelTagThread{level: "info", tag: "MyTag", showThread: true}},
		{"ThreeFieldsFalse", "info,MyTag,no", levelTagThread{level: "info", tag: "MyTag", showThread: false}},
		{"EmptyTagWithThread", "info,,1", levelTagThread{level: "info", tag: "", showThread: true}},
		{"TailFoldedIntoTag", "info,My,Weird,Tag", levelTag{level: "info", tag: "My,WeirdTag"}},
		{"EmptyTailFolded", "warn,a,", levelTag{level: "warn", tag: "a"}},
		{"CommasInTagKept", "info,a,b,c,on", levelTagThread{level: "info", tag: "a,b,c", showThread: true}},
		{"EmptyLevel", ",tag", levelTag{level: "", tag: "tag"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitValue(tt.raw))
		})
	}
}

// TestParseLoggerConfig tests value parsing into logger configs
func TestParseLoggerConfig(t *testing.T) {
	p := NewParser(nil)

	t.Run("EveryLevelAnyCase", func(t *testing.T) {
		for _, level := range Levels() {
			for _, spelling := range []string{
				level.String(),
				strings.ToLower(level.String()),
				strings.ToUpper(level.String()[:1]) + strings.ToLower(level.String()[1:]),
			} {
				cfg, ok := p.ParseLoggerConfig("com.foo", spelling)
				require.True(t, ok, spelling)
				assert.Equal(t, level, cfg.Level(), spelling)
			}
		}
	})

	t.Run("EmptyValue", func(t *testing.T) {
		for _, name := range []string{"root", "com.foo", ""} {
			_, ok := p.ParseLoggerConfig(name, "")
			assert.False(t, ok)
		}
	})

	t.Run("LevelOnly", func(t *testing.T) {
		cfg, ok := p.ParseLoggerConfig("com.foo", "verbose")
		require.True(t, ok)
		assert.Equal(t, "com.foo", cfg.Name())
		assert.Equal(t, LevelVerbose, cfg.Level())
		_, hasTag := cfg.Tag()
		assert.False(t, hasTag)
		assert.False(t, cfg.ShowThread())
	})

	t.Run("LevelAndTag", func(t *testing.T) {
		cfg, ok := p.ParseLoggerConfig("com.foo", "debug,MyTag")
		require.True(t, ok)
		assert.Equal(t, NewLoggerConfig("com.foo", "MyTag", LevelDebug, false), cfg)
	})

	t.Run("LevelTagAndThread", func(t *testing.T) {
		cfg, ok := p.ParseLoggerConfig("com.foo", "info,MyTag,true")
		require.True(t, ok)
		assert.Equal(t, NewLoggerConfig("com.foo", "MyTag", LevelInfo, true), cfg)
	})

	t.Run("UnparseableThreadFoldedIntoTag", func(t *testing.T) {
		cfg, ok := p.ParseLoggerConfig("com.foo", "info,My,Weird,Tag")
		require.True(t, ok)
		tag, hasTag := cfg.Tag()
		assert.True(t, hasTag)
		assert.Equal(t, "My,WeirdTag", tag)
		assert.Equal(t, LevelInfo, cfg.Level())
		assert.False(t, cfg.ShowThread())
	})

	t.Run("EmptyTagIsAbsent", func(t *testing.T) {
		for _, raw := range []string{"warn,", "warn,,true"} {
			cfg, ok := p.ParseLoggerConfig("com.foo", raw)
			require.True(t, ok, raw)
			_, hasTag := cfg.Tag()
			assert.False(t, hasTag, raw)
			assert.Equal(t, "com.foo", cfg.TagOrName())
		}
	})

	t.Run("TagNotTrimmed", func(t *testing.T) {
		cfg, ok := p.ParseLoggerConfig("com.foo", "info, spaced ")
		require.True(t, ok)
		tag, _ := cfg.Tag()
		assert.Equal(t, " spaced ", tag)
	})

	t.Run("InvalidLevels", func(t *testing.T) {
		for _, raw := range []string{"bogus", "bogus,Tag", ",Tag", ",Tag,true", " info", "info ,Tag"} {
			_, ok := p.ParseLoggerConfig("com.foo", raw)
			assert.False(t, ok, raw)
		}
	})
}

// TestParseLoggerConfigTrace tests that every rejection is traced with its reason
func TestParseLoggerConfigTrace(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		message string
		field   string
		value   string
	}{
		{"Empty", "", "property value of logger is empty, skip", "logger", "com.foo"},
		{"EmptyLevel", ",Tag", "logger level is empty, skip", "value", ",Tag"},
		{"IllegalLevel", "loud,Tag", "logger level is illegal, skip", "level", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := NewParser(NewTracer(&buf))

			_, ok := p.ParseLoggerConfig("com.foo", tt.raw)
			assert.False(t, ok)

			events := decodeTrace(t, &buf)
			require.Len(t, events, 1)
			assert.Equal(t, tt.message, events[0]["message"])
			assert.Equal(t, "com.foo", events[0]["logger"])
			assert.Equal(t, tt.value, events[0][tt.field])
		})
	}
}
