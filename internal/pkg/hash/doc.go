// Package hash provides secret hashing behind a small interface.
//
// Only the hash of a supporter password is ever stored; verification compares
// user input against the stored hash. The concrete implementation (bcrypt)
// lives in this package.
package hash
