package validator

// Validator validates tagged structs.
type Validator interface {
	// Validate returns nil when data passes all tag rules, otherwise an error
	// describing the violations.
	Validate(data any) error
}
