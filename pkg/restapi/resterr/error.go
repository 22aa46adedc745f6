/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	SystemError           ErrorCode = "system-error"
	InvalidValue          ErrorCode = "invalid-value"
	DoesntExist           ErrorCode = "doesnt-exist"
	ConditionNotMet       ErrorCode = "condition-not-met"
	DuplicateAnchor       ErrorCode = "duplicate-anchor"
	DeadLettered          ErrorCode = "dead-lettered"
	ServiceUnavailable    ErrorCode = "service-unavailable"
	ProofInputInvalid     ErrorCode = "PROOF_INPUT_INVALID"
	CanonicalizationError ErrorCode = "CANONICALIZATION_ERROR"
	IntegrityViolation    ErrorCode = "INTEGRITY_VIOLATION"
)

func (c ErrorCode) Name() string {
	return string(c)
}

//nolint:gochecknoglobals
var httpStatuses = map[ErrorCode]int{
	SystemError:           http.StatusInternalServerError,
	InvalidValue:          http.StatusBadRequest,
	DoesntExist:           http.StatusNotFound,
	ConditionNotMet:       http.StatusPreconditionFailed,
	DuplicateAnchor:       http.StatusConflict,
	DeadLettered:          http.StatusConflict,
	ServiceUnavailable:    http.StatusServiceUnavailable,
	ProofInputInvalid:     http.StatusBadRequest,
	CanonicalizationError: http.StatusUnprocessableEntity,
	IntegrityViolation:    http.StatusConflict,
}

var ErrDataNotFound = errors.New("data not found")

// CustomError is an error with a machine readable code, reported to REST clients as
// {"code": ..., "message": ...}.
type CustomError struct {
	Code            ErrorCode
	IncorrectValue  string
	Component       Component
	FailedOperation string
	Err             error
}

func NewValidationError(code ErrorCode, incorrectValue string, err error) *CustomError {
	return &CustomError{
		Code:           code,
		IncorrectValue: incorrectValue,
		Err:            err,
	}
}

func NewSystemError(component Component, failedOperation string, err error) *CustomError {
	return &CustomError{
		Code:            SystemError,
		Component:       component,
		FailedOperation: failedOperation,
		Err:             err,
	}
}

func NewCustomError(code ErrorCode, err error) *CustomError {
	return &CustomError{
		Code: code,
		Err:  err,
	}
}

func (e *CustomError) Error() string {
	switch {
	case e.Code == SystemError:
		return fmt.Sprintf("%s[%s, %s]: %v", e.Code, e.Component, e.FailedOperation, e.Err)
	case e.IncorrectValue != "":
		return fmt.Sprintf("%s[%s]: %v", e.Code, e.IncorrectValue, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// HTTPCodeMsg returns the HTTP status and the response body of the error.
func (e *CustomError) HTTPCodeMsg() (int, interface{}) {
	status, ok := httpStatuses[e.Code]
	if !ok {
		status = http.StatusInternalServerError
	}

	body := map[string]interface{}{
		"code":    e.Code.Name(),
		"message": e.message(),
	}

	if e.IncorrectValue != "" {
		body["incorrectValue"] = e.IncorrectValue
	}

	if e.Component != "" {
		body["component"] = e.Component
	}

	return status, body
}

func (e *CustomError) message() string {
	if e.Err == nil {
		return ""
	}

	return e.Err.Error()
}

// GetErrorDetails returns the message, code and component of the CustomError in err's chain.
func GetErrorDetails(err error) (string, string, Component) {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.message(), customErr.Code.Name(), customErr.Component
	}

	return err.Error(), "", ""
}
