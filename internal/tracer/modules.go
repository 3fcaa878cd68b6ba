package tracer

import (
	"context"
	"fmt"
)

// Module is implemented by named units of phone-number analysis.
type Module interface {
	Name() string
	Run(ctx context.Context, number string) (map[string]interface{}, error)
}

// Factory builds a module instance.
type Factory func() Module

// Registry maps module names to constructors.
type Registry map[string]Factory

// DefaultRegistry contains the built-in modules. All of them are stubs
// today; a real module only has to implement Module and register here.
var DefaultRegistry = Registry{
	"validator": func() Module { return stubModule("validator") },
	"carrier":   func() Module { return stubModule("carrier") },
	"location":  func() Module { return stubModule("location") },
	"spam":      func() Module { return stubModule("spam") },
}

// Lookup resolves a module by name. Unknown names resolve to a stub as
// well, so the dispatcher reports not-implemented instead of failing the
// trace.
func (r Registry) Lookup(name string) Module {
	if factory, ok := r[name]; ok {
		return factory()
	}
	return stubModule(name)
}

// stubModule reports that its analysis is not implemented yet.
type stubModule string

func (s stubModule) Name() string { return string(s) }

func (s stubModule) Run(ctx context.Context, number string) (map[string]interface{}, error) {
	return map[string]interface{}{
		"status":  "not_implemented",
		"message": fmt.Sprintf("module %s not yet implemented", s),
	}, nil
}
