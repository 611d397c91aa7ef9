// Package middleware contains the Echo middleware stack: CORS, request
// logging, panic recovery, secure headers, request ids, Clerk
// authentication, request-scoped logger enrichment, tracing, and the
// global error funnel.
package middleware
