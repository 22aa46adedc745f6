/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verification

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/trustbloc/vctrust/pkg/canonical"
	"github.com/trustbloc/vctrust/pkg/doc/credential"
	"github.com/trustbloc/vctrust/pkg/service/witness"
)

// Outcome is the terminal state of a verification.
type Outcome string

const (
	Approve Outcome = "approve"
	Review  Outcome = "review"
	Reject  Outcome = "reject"
)

// ReasonCode explains a decision.
type ReasonCode string

const (
	InvalidSignature   ReasonCode = "INVALID_SIGNATURE"
	HashMismatch       ReasonCode = "HASH_MISMATCH"
	IssuerDIDMismatch  ReasonCode = "ISSUER_DID_MISMATCH"
	SubjectDIDMismatch ReasonCode = "SUBJECT_DID_MISMATCH"
	ExpiredCredential  ReasonCode = "EXPIRED_CREDENTIAL"
	RevokedCredential  ReasonCode = "REVOKED_CREDENTIAL"
	PendingAnchor      ReasonCode = "PENDING_ANCHOR"

	// ProofInputInvalid is never part of a decision; it is the code of InputError.
	ProofInputInvalid ReasonCode = "PROOF_INPUT_INVALID"
)

// reasonOrder is the order reason codes are reported in.
var reasonOrder = map[ReasonCode]int{ //nolint:gochecknoglobals
	InvalidSignature:   0,
	HashMismatch:       1,
	IssuerDIDMismatch:  2,
	SubjectDIDMismatch: 3,
	ExpiredCredential:  4,
	RevokedCredential:  5,
	PendingAnchor:      6,
}

// Fatal reports whether the code forces a reject.
func (c ReasonCode) Fatal() bool {
	return c != PendingAnchor
}

// Validity summarizes the credential checks.
type Validity string

const (
	Valid   Validity = "valid"
	Invalid Validity = "invalid"
)

// StatusValidity summarizes the revocation witness.
type StatusValidity string

const (
	StatusActive  StatusValidity = "active"
	StatusRevoked StatusValidity = "revoked"
	StatusPending StatusValidity = "pending_anchor"
)

// Expectations are the optional identifiers a verifier requires the credential to carry.
type Expectations struct {
	IssuerDID    string `json:"issuerDid,omitempty"`
	SubjectDID   string `json:"subjectDid,omitempty"`
	ExpectedHash string `json:"expectedHash,omitempty"`
}

// Request is a verification request. Credential holds either a credential object or a JSON
// string with a compact JWT.
type Request struct {
	Credential   json.RawMessage `json:"credential"`
	Expectations Expectations    `json:"expectations"`
}

// Decision is the immutable result of one verification.
type Decision struct {
	ID                 string                     `json:"id"`
	CredentialHash     string                     `json:"credentialHash"`
	Envelope           credential.Envelope        `json:"envelope"`
	CredentialValidity Validity                   `json:"credentialValidity"`
	StatusValidity     StatusValidity             `json:"statusValidity"`
	Decision           Outcome                    `json:"decision"`
	ReasonCodes        []ReasonCode               `json:"reasonCodes"`
	EvidenceHash       string                     `json:"evidenceHash"`
	HashVerification   *canonical.VerifyResult    `json:"hashVerification,omitempty"`
	Witness            *witness.RevocationWitness `json:"witness"`
	LogIndex           uint64                     `json:"logIndex"`
	DecidedAt          time.Time                  `json:"decidedAt"`
}

// ErrInputInvalid is matched by every InputError.
var ErrInputInvalid = errors.New("proof input invalid")

// InputError rejects a request before any check runs.
type InputError struct {
	Code   ReasonCode
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return string(e.Code) + ": " + e.Reason + ": " + e.Err.Error()
	}

	return string(e.Code) + ": " + e.Reason
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func (e *InputError) Is(target error) bool {
	return target == ErrInputInvalid //nolint:errorlint
}

func inputError(reason string, err error) error {
	return &InputError{Code: ProofInputInvalid, Reason: reason, Err: err}
}

// ServiceInterface is the verifier entry point.
type ServiceInterface interface {
	SubmitVerification(ctx context.Context, req *Request) (*Decision, error)
}
