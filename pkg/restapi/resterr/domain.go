/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"

	"github.com/trustbloc/vctrust/pkg/breaker"
	"github.com/trustbloc/vctrust/pkg/canonical"
	"github.com/trustbloc/vctrust/pkg/service/anchor"
	"github.com/trustbloc/vctrust/pkg/service/issuance"
	"github.com/trustbloc/vctrust/pkg/service/statuslist"
	"github.com/trustbloc/vctrust/pkg/service/verification"
	"github.com/trustbloc/vctrust/pkg/service/witness"
	"github.com/trustbloc/vctrust/pkg/translog"
)

// FromDomainError classifies an error returned by the trust services. Errors without a
// known classification become system errors of component.
func FromDomainError(component Component, operation string, err error) *CustomError {
	var customErr *CustomError

	switch {
	case errors.As(err, &customErr):
		return customErr
	case errors.Is(err, verification.ErrInputInvalid):
		return NewCustomError(ProofInputInvalid, err)
	case errors.Is(err, canonical.ErrCanonicalization):
		return NewCustomError(CanonicalizationError, err)
	case errors.Is(err, anchor.ErrInvalidHash),
		errors.Is(err, witness.ErrInvalidHash),
		errors.Is(err, statuslist.ErrInvalidHash),
		errors.Is(err, issuance.ErrInvalidRequest),
		errors.Is(err, canonical.ErrUnsupported),
		errors.Is(err, translog.ErrInvalidRange):
		return NewValidationError(InvalidValue, operation, err)
	case errors.Is(err, anchor.ErrDataNotFound),
		errors.Is(err, statuslist.ErrDataNotFound),
		errors.Is(err, translog.ErrDataNotFound),
		errors.Is(err, ErrDataNotFound):
		return NewCustomError(DoesntExist, err)
	case errors.Is(err, anchor.ErrDuplicateAnchor):
		return NewCustomError(DuplicateAnchor, err)
	case errors.Is(err, anchor.ErrDeadLettered):
		return NewCustomError(DeadLettered, err)
	case errors.Is(err, anchor.ErrNotDeadLettered):
		return NewCustomError(ConditionNotMet, err)
	case errors.Is(err, translog.ErrIntegrityViolation):
		return NewCustomError(IntegrityViolation, err)
	case errors.Is(err, breaker.ErrOpen):
		return NewCustomError(ServiceUnavailable, err)
	default:
		return NewSystemError(component, operation, err)
	}
}
