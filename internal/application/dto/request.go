// Package dto contains data transfer objects for application layer use cases.
package dto

// ValidateRequest encapsulates all inputs needed to validate configurations.
type ValidateRequest struct {
	// Paths lists the configuration files to validate, in report order.
	Paths    []string
	Options  ValidateOptions
	Metadata RequestMetadata
}

// ValidateOptions controls how configurations are validated.
type ValidateOptions struct {
	// MaxConcurrency limits how many files are validated at once (0 = no limit)
	MaxConcurrency int

	// FailOnWarning treats warnings as failures when deciding the outcome
	FailOnWarning bool
}

// OriginReportRequest encapsulates inputs for listing value origins.
type OriginReportRequest struct {
	Path     string
	Metadata RequestMetadata
}

// RequestMetadata contains metadata for request tracking.
type RequestMetadata struct {
	// RequestID uniquely identifies this request
	RequestID string
}
