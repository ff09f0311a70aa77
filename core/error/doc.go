// File: doc.go
// Title: Package Documentation for core/error
// Description: Package error provides the structured error type shared by
//              the BoundedString module, carrying codes, severities, and
//              diagnostic details alongside the standard error interface.
// Author: aprotyas
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation

// Package error provides structured errors for the BoundedString module.
//
// Overview
//
// The bounded container has a small, closed failure taxonomy: an operation
// either would exceed the container's bound (CodeCapacityExceeded), refers
// to a position that does not exist (CodeOutOfRange), or was called with a
// structurally impossible argument (CodeInvalidArgument). This package
// gives those conditions a common representation so embedding code can
// classify failures without string matching:
//
//	err := text.Set(input)
//	if bserror.HasCode(err, bserror.CodeCapacityExceeded) {
//	    // truncate upstream, pick a larger bound, or reject the input
//	}
//
// Every Error satisfies the standard error interface and supports
// errors.As/errors.Is unwrapping, so callers that do not care about codes
// can treat it as an ordinary error.
//
// Diagnostic Details
//
// Errors carry a free-form details map. Capacity errors always include the
// attempted length and the bound:
//
//	if berr, ok := err.(*bserror.Error); ok {
//	    attempted, _ := berr.Detail("attempted")
//	    bound, _ := berr.Detail("bound")
//	    fmt.Printf("wanted %v, bound is %v\n", attempted, bound)
//	}
//
// Severity
//
// Severities distinguish caller-input conditions (low) from probable
// programming mistakes (medium) and internal faults (high). They default
// from the code via GetSeverityFromCode and can be overridden with
// WithSeverity.
//
// Thread Safety
//
// An Error is not safe for concurrent mutation through its WithX builders;
// build it on one goroutine, then share it freely for reading.
package error
