package di

// WorkingDir is the directory holding the spec-file tree.
type WorkingDir string

// Option is a function that configures the dependency injection container.
type Option func(*options)

// WithWorkingDir roots the spec loader at dir instead of the process working
// directory.
func WithWorkingDir(dir string) Option {
	return func(opts *options) {
		opts.workingDir = WorkingDir(dir)
	}
}

// WithProviders adds constructor functions to the dependency injection container.
// Each provider should be a constructor function that returns one or more values.
// Providers can declare dependencies as function parameters, which will be
// automatically resolved by the container.
//
// Example:
//
//	WithProviders(
//	    func(loader *config.Loader) *Resolver { return &Resolver{Loader: loader} },
//	)
func WithProviders(providers ...any) Option {
	return func(opts *options) {
		opts.providers = append(opts.providers, providers...)
	}
}

type options struct {
	workingDir WorkingDir
	providers  []any
}
