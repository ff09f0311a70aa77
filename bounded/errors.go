// File: errors.go
// Title: Container Error Constructors and Predicates
// Description: Builds the structured errors raised by the bounded container
//              and exposes predicates so embedding code can classify them.
//              Capacity errors always carry the attempted length and the
//              bound for diagnostics.
// Author: aprotyas
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-29 v0.1.0: Initial implementation with error taxonomy

package bounded

import (
	"errors"
	"fmt"

	bserror "github.com/aprotyas/BoundedString/core/error"
)

// capacityError reports a prospective length exceeding the bound. Raised
// strictly before any mutation, so the instance is unchanged.
func capacityError(op string, attempted, bound int) error {
	return bserror.New(fmt.Sprintf("bounded: length %d exceeds bound %d", attempted, bound)).
		WithCode(bserror.CodeCapacityExceeded).
		WithOperation(op).
		WithDetails(map[string]interface{}{
			"attempted": attempted,
			"bound":     bound,
		})
}

// rangeError reports a position argument invalid for the current contents.
func rangeError(op string, position, size int) error {
	return bserror.New(fmt.Sprintf("bounded: position %d out of range [0, %d]", position, size)).
		WithCode(bserror.CodeOutOfRange).
		WithOperation(op).
		WithDetails(map[string]interface{}{
			"position": position,
			"size":     size,
		})
}

// argumentError reports structurally impossible input.
func argumentError(op, message string) error {
	return bserror.New("bounded: " + message).
		WithCode(bserror.CodeInvalidArgument).
		WithOperation(op)
}

// encodingError reports a decode source of the wrong shape.
func encodingError(op, message string) error {
	return bserror.New("bounded: " + message).
		WithCode(bserror.CodeInvalidEncoding).
		WithOperation(op)
}

// IsCapacityExceeded reports whether err is a capacity violation.
func IsCapacityExceeded(err error) bool {
	return bserror.HasCode(err, bserror.CodeCapacityExceeded)
}

// IsOutOfRange reports whether err is a position violation.
func IsOutOfRange(err error) bool {
	return bserror.HasCode(err, bserror.CodeOutOfRange)
}

// IsInvalidArgument reports whether err is a structural argument violation.
func IsInvalidArgument(err error) bool {
	return bserror.HasCode(err, bserror.CodeInvalidArgument)
}

// CapacityDetails extracts the attempted length and bound from a capacity
// error. ok is false if err is not a capacity error or lacks the details.
func CapacityDetails(err error) (attempted, bound int, ok bool) {
	var berr *bserror.Error
	if !errors.As(err, &berr) || berr.Code() != bserror.CodeCapacityExceeded {
		return 0, 0, false
	}
	a, aok := berr.Detail("attempted")
	b, bok := berr.Detail("bound")
	if !aok || !bok {
		return 0, 0, false
	}
	ai, aok := a.(int)
	bi, bok := b.(int)
	if !aok || !bok {
		return 0, 0, false
	}
	return ai, bi, true
}
