// Package goAuthClient provides the client-side session and authorization layer
// for a multi-tier (USER / ADMIN / SUPER_ADMIN) account-management backend. It
// owns the local notion of "who is logged in, with what role", propagates that
// state reactively to subscribers, gates privileged actions by role, and
// classifies every remote failure into a stable, retryable outcome.
//
// The package is designed around a single [Client] built through [Builder.Build].
// Client methods are safe to call from multiple goroutines after initialization.
//
// # Architecture boundaries
//
// goAuthClient is the public surface. It exposes [Client], [Builder], [Config],
// value types (AuthResponse, GateDecision, ActionOutcome, etc.) and sentinel
// errors. Request plumbing and metric storage live under internal/ and are never
// exported. Credential persistence backends live in credstore/ and the reactive
// primitive in watch/ so they can be reused and tested in isolation.
//
// # What this package must NOT do
//
//   - Parse, verify, or otherwise interpret the bearer token; it is an opaque
//     string owned by the server.
//   - Retry, cache, or rate-limit requests; every call is a single attempt.
//   - Act as a security boundary. Role checks here are a UX convenience; the
//     server independently re-validates every privileged action.
package goAuthClient
