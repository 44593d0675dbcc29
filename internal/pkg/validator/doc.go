// Package validator provides request and dependency struct validation.
//
// Inbound payloads and module dependency structs carry `validate` tags; use
// cases depend on the Validator interface so the rules stay testable. The
// concrete implementation wraps go-playground/validator v10 with English
// translations.
package validator
