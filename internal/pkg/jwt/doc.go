// Package jwt issues and verifies the session tokens handed out after login.
//
// Every token carries a "type" claim. Access and refresh tokens are signed
// with the same key, so Verify always takes the kind the caller expects and
// refuses anything else, including tokens without the claim.
package jwt
