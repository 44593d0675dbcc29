// Package jwt issues and verifies the signed session tokens used by the API.
//
// It includes:
//   - A typed Claims wrapper carrying the authenticated email and role.
//   - A symmetric HS512 implementation with per-role token lifetimes.
//   - Context helpers for storing and retrieving authenticated claims.
//
// Tokens are stateless: validity is decided purely by signature and expiry
// at verification time, there is no server-side revocation.
package jwt
