package compose

import "github.com/gogpu/compose/backend"

// Option configures a surface tree during creation.
//
// Example:
//
//	// Best available backend
//	root := compose.NewRoot(view)
//
//	// GPU textures
//	root := compose.NewRoot(view, compose.WithBackend(backend.NewTextureFactory(creator)))
type Option func(*options)

// options holds optional configuration for NewRoot.
type options struct {
	factory backend.Factory
}

// defaultOptions returns the default tree options.
func defaultOptions() options {
	return options{
		factory: backend.Default(),
	}
}

// WithBackend sets the factory used to create backend resources for every
// surface in the tree.
func WithBackend(f backend.Factory) Option {
	return func(o *options) {
		if f != nil {
			o.factory = f
		}
	}
}

// WithBackendName selects a registered backend by name.
// Resource creation fails with *backend.BackendNotFoundError if the name
// is not registered at that time.
func WithBackendName(name string) Option {
	return func(o *options) {
		o.factory = backend.ByName(name)
	}
}
