// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application from this configuration: the
// listen port, the API key enforced by the auth middleware, and the read/write
// timeouts. Write timeouts must cover a full synchronous sync run, which
// includes the feed fetch.
package server
