// Package http implements the REST transport of the ergo API.
//
// It wires chi routes to the service layer and owns the cross-cutting
// middleware: panic recovery, request tracing, access logging, Prometheus
// metrics, CORS, security headers and the Auth Guard that protects every
// per-user task and tag route.
package http
