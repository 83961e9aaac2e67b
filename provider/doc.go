// Package provider contains generic plumbing for pluggable backends:
// a base Provider interface, factories, a registry with cached instances,
// selection strategies, and composable middleware for logging, tracing,
// and metrics.
//
// The stt package builds its backend registry on top of these types.
package provider
