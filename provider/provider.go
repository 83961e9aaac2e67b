package provider

import "context"

// Provider is the base interface all backends must implement.
type Provider interface {
	// Name returns the backend's unique name.
	Name() string
	// IsAvailable checks if the backend is ready to handle requests.
	IsAvailable(ctx context.Context) bool
}

// Factory creates a backend instance from a generic configuration map.
type Factory[T Provider] func(cfg map[string]any) (T, error)

// RequestResponse represents a backend that takes one input and returns
// one output: an HTTP call, a gRPC unary call, a subprocess run.
type RequestResponse[I, O any] interface {
	Provider
	Execute(ctx context.Context, input I) (O, error)
}

// Middleware transforms a RequestResponse backend by wrapping it.
// The returned backend delegates to the original while adding
// cross-cutting behavior (logging, tracing, metrics).
type Middleware[I, O any] func(RequestResponse[I, O]) RequestResponse[I, O]

// Chain composes middlewares into one. The first middleware is outermost:
// Chain(a, b, c)(p) is equivalent to a(b(c(p))).
func Chain[I, O any](middlewares ...Middleware[I, O]) Middleware[I, O] {
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		for i := len(middlewares) - 1; i >= 0; i-- {
			inner = middlewares[i](inner)
		}
		return inner
	}
}
