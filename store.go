// FILE: lixenwraith/logconf/store.go
package logconf

import (
	"strings"
	"sync"
)

// Store is the in-memory Repository. A named config registered twice
// replaces the earlier one. The zero value is an empty Store with the
// default root config.
type Store struct {
	root    LoggerConfig
	loggers map[string]LoggerConfig
	mutex   sync.RWMutex
}

var _ Repository = (*Store)(nil)

// NewStore creates a Store holding only the default root config.
func NewStore() *Store {
	return &Store{
		root:    DefaultRootLoggerConfig(),
		loggers: make(map[string]LoggerConfig),
	}
}

// ResetToDefault restores the default root config and drops all named configs.
func (s *Store) ResetToDefault() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.root = DefaultRootLoggerConfig()
	s.loggers = make(map[string]LoggerConfig)
}

// SetRootLoggerConfig replaces the root config.
func (s *Store) SetRootLoggerConfig(cfg LoggerConfig) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.root = cfg
}

// AddLoggerConfig registers cfg under its name, replacing any earlier entry.
func (s *Store) AddLoggerConfig(cfg LoggerConfig) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.loggers == nil {
		s.loggers = make(map[string]LoggerConfig)
	}
	s.loggers[cfg.Name()] = cfg
}

// RootLoggerConfig returns the current root config.
func (s *Store) RootLoggerConfig() LoggerConfig {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.rootConfig()
}

// rootConfig returns the root config, or the default one for a Store
// that never had a root set. Callers hold the mutex.
func (s *Store) rootConfig() LoggerConfig {
	if s.root.Name() == "" {
		return DefaultRootLoggerConfig()
	}
	return s.root
}

// LoggerConfig returns the config registered under exactly name.
func (s *Store) LoggerConfig(name string) (LoggerConfig, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	cfg, exists := s.loggers[name]
	return cfg, exists
}

// Resolve returns the config of the closest configured ancestor of name,
// walking up one dotted segment at a time, and the root config if none is
// configured. "com.foo.Bar" checks "com.foo.Bar", "com.foo" and "com".
func (s *Store) Resolve(name string) LoggerConfig {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for candidate := name; candidate != ""; {
		if cfg, exists := s.loggers[candidate]; exists {
			return cfg
		}
		idx := strings.LastIndexByte(candidate, '.')
		if idx < 0 {
			break
		}
		candidate = candidate[:idx]
	}
	return s.rootConfig()
}

// LoggerConfigs returns all named configs sorted by name.
func (s *Store) LoggerConfigs() []LoggerConfig {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	configs := make([]LoggerConfig, 0, len(s.loggers))
	for _, name := range sortedKeys(s.loggers) {
		configs = append(configs, s.loggers[name])
	}
	return configs
}

// Len returns the number of named configs.
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.loggers)
}

// Clone creates a copy of the store.
func (s *Store) Clone() *Store {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	clone := &Store{
		root:    s.rootConfig(),
		loggers: make(map[string]LoggerConfig, len(s.loggers)),
	}
	for name, cfg := range s.loggers {
		clone.loggers[name] = cfg
	}
	return clone
}

// Equal reports whether both stores hold the same configs. A nil Store
// equals only another nil Store.
func (s *Store) Equal(other *Store) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s == other {
		return true
	}
	a, b := s.Clone(), other.Clone()
	if a.root != b.root || len(a.loggers) != len(b.loggers) {
		return false
	}
	for name, cfg := range a.loggers {
		if b.loggers[name] != cfg {
			return false
		}
	}
	return true
}

