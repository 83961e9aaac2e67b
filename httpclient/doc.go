// Package httpclient is a small outbound HTTP client with typed error
// classification, bearer/API-key auth, TLS options, and multipart/form-data
// encoding.
//
// It deliberately issues exactly one request per call: retry policy belongs
// to the caller, not this layer. Cancellation of the passed context aborts
// the in-flight request.
package httpclient
