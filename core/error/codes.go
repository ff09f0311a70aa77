// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the BoundedString module.
//              Codes classify the small, closed set of failure conditions a
//              length-bounded container can produce, enabling structured
//              handling by embedding code.
// Author: aprotyas
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with container error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for the BoundedString module
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Container codes
	CodeCapacityExceeded Code = "CAPACITY_EXCEEDED"
	CodeOutOfRange       Code = "OUT_OF_RANGE"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"

	// Encoding codes
	CodeInvalidEncoding Code = "INVALID_ENCODING"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodeCapacityExceeded, CodeOutOfRange, CodeInvalidArgument,
		CodeInvalidEncoding:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeCapacityExceeded:
		return "capacity"
	case CodeOutOfRange:
		return "range"
	case CodeInvalidArgument:
		return "argument"
	case CodeInvalidEncoding:
		return "encoding"
	default:
		return "generic"
	}
}
