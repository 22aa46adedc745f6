/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package canonical

import (
	"errors"
	"fmt"
)

var (
	// ErrCanonicalization is matched by every Error returned from this package.
	ErrCanonicalization = errors.New("canonicalization error")
	// ErrUnsupported is returned for unknown hash algorithms and canonicalization versions.
	ErrUnsupported = errors.New("unsupported")
)

// Error reports a value that cannot be rendered in a deterministic form.
type Error struct {
	// Path locates the offending member, e.g. ".credentialSubject.scores[2]".
	Path   string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Reason

	if e.Path != "" {
		msg = fmt.Sprintf("%s at %s", msg, e.Path)
	}

	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return "canonicalization: " + msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrCanonicalization //nolint:errorlint
}

func newError(path, reason string) error {
	return &Error{Path: path, Reason: reason}
}

func wrapError(path, reason string, err error) error {
	return &Error{Path: path, Reason: reason, Err: err}
}

func withPath(err error, path string) error {
	if err == nil || path == "" {
		return err
	}

	var cErr *Error
	if errors.As(err, &cErr) && cErr.Path == "" {
		return &Error{Path: path, Reason: cErr.Reason, Err: cErr.Err}
	}

	return err
}
