// Package di provides a lightweight wrapper around uber's dig dependency
// injection framework. It simplifies container setup and provides type-safe
// dependency retrieval with generics.
package di

import (
	"go.uber.org/dig"

	"github.com/riskml/mldeploy/internal/services"
)

// Container defines a dependency injection container based on uber's dig.
// This interface allows for easy testing and mocking of the DI container.
type Container interface {
	// Invoke executes a function, injecting its dependencies from the container.
	Invoke(function any, opts ...dig.InvokeOption) error

	// Provide registers a constructor function in the container.
	Provide(constructor any, opts ...dig.ProvideOption) error

	// Scope creates a scoped sub-container with its own set of values.
	Scope(name string, opts ...dig.ScopeOption) *dig.Scope
}

// MustGet returns an instance constructed via dependency injection or panics.
// This is a convenience function for retrieving a dependency from the
// container when you're certain it exists.
//
// Example:
//
//	loader := MustGet[*config.Loader](container)
func MustGet[T any](container Container) (want T) {
	callback := func(got T) {
		want = got
	}
	if err := container.Invoke(callback); err != nil {
		panic(err)
	}
	return want
}

// New creates a new dependency injection container rooted at the given
// working directory. The working directory is registered as a WorkingDir
// dependency consumed by the spec loader provider.
//
// Example:
//
//	container, err := New(
//	    WithWorkingDir("."),
//	    WithProviders(func(loader *config.Loader) *Resolver { ... }),
//	)
func New(opts ...Option) (Container, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	container := dig.New()
	if err := container.Provide(func() WorkingDir { return o.workingDir }); err != nil {
		return nil, err
	}

	// Register all provided constructors
	for _, provider := range core {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	for _, provider := range o.providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}

var core = []any{
	ProvideLogger,
	ProvideContext,
	ProvideLoader,
	services.NewIdentityService,
}
