// Package ephemeral is a key-value store for short-lived handshake state.
//
// Expiry is enforced by the backend; nothing sweeps keys from the outside.
// Lookups of absent or expired keys return goerror.ErrNotFound. Backend
// faults, including per-call timeouts, return an error wrapping
// goerror.ErrUnavailable and must be treated as "did not happen".
package ephemeral
