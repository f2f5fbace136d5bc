// FILE: lixenwraith/logconf/builder.go
package logconf

import (
	"errors"
	"fmt"
)

// ValidatorFunc checks a Store after the properties have been applied.
type ValidatorFunc func(s *Store) error

// Builder provides a fluent interface for configuring a Store
type Builder struct {
	props      *Properties
	store      *Store
	tracer     *Tracer
	err        error
	validators []ValidatorFunc
}

// NewBuilder creates a new configuration builder
func NewBuilder() *Builder {
	return &Builder{
		props:      NewProperties(),
		store:      NewStore(),
		validators: make([]ValidatorFunc, 0),
	}
}

// WithProperties sets the raw properties to parse
func (b *Builder) WithProperties(props *Properties) *Builder {
	if props != nil {
		b.props = props
	}
	return b
}

// WithMap sets the raw properties from a flat map, keys in lexical order
func (b *Builder) WithMap(values map[string]string) *Builder {
	b.props = PropertiesFromMap(values)
	return b
}

// WithNested sets the raw properties from a nested map
func (b *Builder) WithNested(nested map[string]any) *Builder {
	props, err := PropertiesFromNested(nested)
	if err != nil {
		b.err = err
		return b
	}
	b.props = props
	return b
}

// WithStore sets the store the properties are applied to
func (b *Builder) WithStore(store *Store) *Builder {
	if store == nil {
		b.err = ErrNilStore
		return b
	}
	b.store = store
	return b
}

// WithTracer sets the diagnostic tracer
func (b *Builder) WithTracer(tracer *Tracer) *Builder {
	b.tracer = tracer
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build parses the properties into the store and runs the validators
func (b *Builder) Build() (*Store, error) {
	if b.err != nil {
		return nil, b.err
	}

	NewParser(b.tracer).Run(b.props, b.store)

	var validationErrors []error
	for _, validator := range b.validators {
		if err := validator(b.store); err != nil {
			validationErrors = append(validationErrors, err)
		}
	}
	if err := errors.Join(validationErrors...); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return b.store, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Store {
	store, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("logconf build failed: %v", err))
	}
	return store
}

// RequireLogger fails validation when any of names has no config of its own.
func RequireLogger(names ...string) ValidatorFunc {
	return func(s *Store) error {
		var missing []error
		for _, name := range names {
			if _, exists := s.LoggerConfig(name); !exists {
				missing = append(missing, fmt.Errorf("%w: %s", ErrMissingLogger, name))
			}
		}
		return errors.Join(missing...)
	}
}

// RequireRootLevel fails validation when the root level is above max.
func RequireRootLevel(max Level) ValidatorFunc {
	return func(s *Store) error {
		if level := s.RootLoggerConfig().Level(); level > max {
			return fmt.Errorf("%w: %s is above %s", ErrRootLevel, level, max)
		}
		return nil
	}
}
