// Package clock is a tiny abstraction over time.Now.
//
// The OTP expiry rules depend on wall-clock arithmetic, so business logic
// takes a Clocker instead of calling time.Now directly. Tests pin a Fixed
// clock and advance it deterministically.
package clock
