// FILE: lixenwraith/logconf/convenience.go
package logconf

// Quick parses a flat map of properties into a new Store without tracing.
func Quick(values map[string]string) (*Store, error) {
	return NewBuilder().
		WithMap(values).
		Build()
}

// MustQuick is like Quick but panics on error
func MustQuick(values map[string]string) *Store {
	return NewBuilder().
		WithMap(values).
		MustBuild()
}

// Configure runs a parser reporting to tracer over props and repo.
func Configure(props *Properties, repo Repository, tracer *Tracer) {
	NewParser(tracer).Run(props, repo)
}
