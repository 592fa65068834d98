package parsers

import "github.com/SH118415/insights-core/internal/core"

// ConfigFile is the query surface every file-type parser exposes.
type ConfigFile interface {
	Get(section string) (Section, bool)
	GetKey(section, key string) (string, bool)
	Sections() []string
}

// Factory builds a parsed representation from collected file content.
type Factory func(core.Context) ConfigFile

// registry maps the canonical host path of a file to its parser.
// Parsers register themselves in init.
var registry = make(map[string]Factory)

// Register binds a factory to a canonical file path. Registering the
// same path twice is a programming error and panics at startup.
func Register(path string, factory Factory) {
	if _, dup := registry[path]; dup {
		panic("parsers: duplicate registration for " + path)
	}
	registry[path] = factory
}

// For returns the factory registered for path, or false when the file
// type is unknown.
func For(path string) (Factory, bool) {
	factory, ok := registry[path]
	return factory, ok
}

// Paths returns every registered canonical path. The collector uses
// this as its list of files worth gathering.
func Paths() []string {
	paths := make([]string, 0, len(registry))
	for path := range registry {
		paths = append(paths, path)
	}
	return paths
}
