// Package api contains the client-side contract for the AutoHub backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     auth endpoints (register, verify, login, me, profile updates) and the
//     product endpoints (list, get, my-cars, create, delete).
//  2. A concrete HTTP implementation (see HTTPClient) that speaks JSON over
//     HTTPS, injects the bearer token on authenticated calls, and maps
//     response statuses to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound. Other
// non-2xx responses surface the server-provided message via StatusError.
//
// All operations accept context.Context and honor cancellation/timeouts.
package api
