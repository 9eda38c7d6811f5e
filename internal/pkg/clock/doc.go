// Package clock wraps time.Now behind Clocker so code expiry, token lifetimes
// and store TTLs can be driven by a Fixed clock in tests.
package clock
