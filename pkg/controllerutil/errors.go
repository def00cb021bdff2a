/*
Copyright (C) 2024 The tub-modules Authors

This file is part of the tub-modules project

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package controllerutil

import (
	"errors"
	"fmt"
)

type Error struct {
	Type    ErrorType
	Message string
	// Cause is the underlying error, if any. It is returned by Unwrap.
	Cause error
}

var _ error = &Error{}

// Error implements the error interface.
func (v *Error) Error() string {
	if v.Cause == nil {
		return v.Message
	}
	if v.Message == "" {
		return v.Cause.Error()
	}
	return v.Message + ": " + v.Cause.Error()
}

func (v *Error) Unwrap() error {
	return v.Cause
}

// ErrorType is explicit error type.
type ErrorType string

const (
	// ErrorTypeMissingConfiguration a required config key is absent.
	ErrorTypeMissingConfiguration ErrorType = "MissingConfiguration"
	// ErrorTypeInvalidConfiguration a config key is present but malformed.
	ErrorTypeInvalidConfiguration ErrorType = "InvalidConfiguration"
	// ErrorTypeInvalidGraph the resource graph has a cycle or a dangling dependency.
	ErrorTypeInvalidGraph ErrorType = "InvalidGraph"
	// ErrorTypeReconciliationFailure the reconciliation engine rejected a resource.
	ErrorTypeReconciliationFailure ErrorType = "ReconciliationFailure"
)

func NewError(errorType ErrorType, message string) *Error {
	return &Error{
		Type:    errorType,
		Message: message,
	}
}

func NewErrorf(errorType ErrorType, format string, a ...any) *Error {
	return &Error{
		Type:    errorType,
		Message: fmt.Sprintf(format, a...),
	}
}

// WrapError returns a new Error of errorType that keeps err as its cause.
func WrapError(err error, errorType ErrorType, format string, a ...any) *Error {
	return &Error{
		Type:    errorType,
		Message: fmt.Sprintf(format, a...),
		Cause:   err,
	}
}

// IsTargetError checks if the error is the target error.
func IsTargetError(err error, errorType ErrorType) bool {
	if tmpErr, ok := err.(*Error); ok || errors.As(err, &tmpErr) {
		return tmpErr.Type == errorType
	}
	return false
}

// UnwrapControllerError unwraps the Controller error from target error.
func UnwrapControllerError(err error) *Error {
	if tmpErr, ok := err.(*Error); ok || errors.As(err, &tmpErr) {
		return tmpErr
	}
	return nil
}

// NewMissingConfiguration returns a new Error with ErrorTypeMissingConfiguration.
func NewMissingConfiguration(key string) *Error {
	return NewErrorf(ErrorTypeMissingConfiguration, "missing required configuration key %q", key)
}

// IsMissingConfiguration returns true if the specified error is the error type of ErrorTypeMissingConfiguration.
func IsMissingConfiguration(err error) bool {
	return IsTargetError(err, ErrorTypeMissingConfiguration)
}

func IsInvalidConfiguration(err error) bool {
	return IsTargetError(err, ErrorTypeInvalidConfiguration)
}

func IsInvalidGraph(err error) bool {
	return IsTargetError(err, ErrorTypeInvalidGraph)
}

// NewReconciliationFailure wraps an engine error without rewording it.
func NewReconciliationFailure(err error) *Error {
	return WrapError(err, ErrorTypeReconciliationFailure, "")
}

func IsReconciliationFailure(err error) bool {
	return IsTargetError(err, ErrorTypeReconciliationFailure)
}
