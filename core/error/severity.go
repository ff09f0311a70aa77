// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so embedding code can
//              prioritize handling and reporting. Container errors are
//              caller-input conditions and default to low severity; only
//              internal inconsistencies rate higher.
// Author: aprotyas
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a normal, recoverable condition caused by caller
	// input. Examples: over-long input, an out-of-range index.
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that suggests a programming mistake
	// in the embedding code. Examples: nil backing store, negative counts.
	SeverityMedium

	// SeverityHigh indicates a serious error in the module itself.
	// Examples: an internal invariant found violated.
	SeverityHigh
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-2)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines the appropriate severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityHigh

	case CodeInvalidArgument, CodeInvalidEncoding:
		return SeverityMedium

	case CodeCapacityExceeded, CodeOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
