package model

// ValidationResult is the verdict of a data validator.
// ErrorMessage is empty if and only if Valid is true.
type ValidationResult struct {
	Valid        bool
	ErrorMessage string
}

// Valid returns a passing ValidationResult.
func Valid() ValidationResult {
	return ValidationResult{Valid: true}
}

// Invalid returns a failing ValidationResult carrying msg.
func Invalid(msg string) ValidationResult {
	return ValidationResult{Valid: false, ErrorMessage: msg}
}

// DistributionResult is the outcome of persisting a ReportOutput.
// ErrorMessage is empty if and only if Created is true.
type DistributionResult struct {
	Created      bool
	ErrorMessage string
}

// Created returns a successful DistributionResult.
func Created() DistributionResult {
	return DistributionResult{Created: true}
}

// NotCreated returns a failed DistributionResult carrying msg.
func NotCreated(msg string) DistributionResult {
	return DistributionResult{Created: false, ErrorMessage: msg}
}
