// FILE: lixenwraith/logconf/dump.go
package logconf

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Dump formats
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

type dumpEntry struct {
	Level      Level  `toml:"level" yaml:"level" json:"level"`
	Tag        string `toml:"tag,omitempty" yaml:"tag,omitempty" json:"tag,omitempty"`
	ShowThread bool   `toml:"show_thread" yaml:"show_thread" json:"show_thread"`
}

type dumpDocument struct {
	Root    dumpEntry            `toml:"root" yaml:"root" json:"root"`
	Loggers map[string]dumpEntry `toml:"loggers,omitempty" yaml:"loggers,omitempty" json:"loggers,omitempty"`
}

func newDumpEntry(cfg LoggerConfig) dumpEntry {
	tag, _ := cfg.Tag()
	return dumpEntry{
		Level:      cfg.Level(),
		Tag:        tag,
		ShowThread: cfg.ShowThread(),
	}
}

// Dump writes the root and named configs to w in the given format
// ("toml", "yaml" or "json"; empty means toml).
func (s *Store) Dump(w io.Writer, format string) error {
	doc := dumpDocument{
		Root: newDumpEntry(s.RootLoggerConfig()),
	}
	if configs := s.LoggerConfigs(); len(configs) > 0 {
		doc.Loggers = make(map[string]dumpEntry, len(configs))
		for _, cfg := range configs {
			doc.Loggers[cfg.Name()] = newDumpEntry(cfg)
		}
	}

	switch strings.ToLower(format) {
	case "", FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("failed to encode TOML: %w", err)
		}
	case FormatYAML, "yml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to flush YAML: %w", err)
		}
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	return nil
}
