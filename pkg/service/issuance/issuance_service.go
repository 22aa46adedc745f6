/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuance

//go:generate mockgen -destination issuance_service_mocks_test.go -self_package mocks -package issuance_test -source=issuance_service.go -mock_names anchorQueue=MockAnchorQueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vctrust/internal/logfields"
	"github.com/trustbloc/vctrust/pkg/canonical"
	"github.com/trustbloc/vctrust/pkg/didkey"
	"github.com/trustbloc/vctrust/pkg/doc/credential"
	"github.com/trustbloc/vctrust/pkg/service/anchor"
)

var logger = log.New("issuance-service")

// ErrInvalidRequest is returned for claims or identifiers that cannot be issued.
var ErrInvalidRequest = errors.New("invalid issuance request")

type anchorQueue interface {
	Enqueue(ctx context.Context, hash, submitterID string) (*anchor.Record, error)
}

// Request describes the credential to issue.
type Request struct {
	// ID defaults to a random urn:uuid.
	ID         string          `json:"id,omitempty"`
	Types      []string        `json:"types,omitempty"`
	SubjectDID string          `json:"subjectDid,omitempty"`
	Claims     json.RawMessage `json:"claims"`
	// ExpirationDate is optional.
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
}

// Result holds both envelopes of an issued credential. They share one proof hash.
type Result struct {
	Credential    json.RawMessage          `json:"credential"`
	JWT           string                   `json:"jwt"`
	ProofMetadata *canonical.ProofMetadata `json:"proofMetadata"`
	Anchor        *anchor.Record           `json:"anchor"`
}

// ServiceInterface issues credentials.
type ServiceInterface interface {
	Issue(ctx context.Context, req *Request) (*Result, error)
}

// Config holds the dependencies of the issuance service.
type Config struct {
	IssuerDID string
	Signer    *credential.Signer
	Anchors   anchorQueue
	Now       func() time.Time
}

// Service issues signed credentials and queues their hashes for anchoring.
type Service struct {
	issuer  string
	signer  *credential.Signer
	anchors anchorQueue
	parser  *credential.Parser
	now     func() time.Time
}

// New returns an issuance service.
func New(config *Config) *Service {
	now := config.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		issuer:  config.IssuerDID,
		signer:  config.Signer,
		anchors: config.Anchors,
		parser:  credential.NewParser(),
		now:     now,
	}
}

// IssuerDID returns the DID credentials are issued under.
func (s *Service) IssuerDID() string {
	return s.issuer
}

// Issue builds the credential, computes its proof metadata under the current canonicalization,
// signs it in both envelopes and enqueues the hash for anchoring.
func (s *Service) Issue(ctx context.Context, req *Request) (*Result, error) {
	doc, err := s.buildCredential(req)
	if err != nil {
		return nil, err
	}

	payload, err := canonical.FromGo(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	meta, err := canonical.GenerateProofMetadata(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	signed, err := s.signer.SignEmbedded(payload, s.now())
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(signed)
	if err != nil {
		return nil, err
	}

	parsed, err := s.parser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	token, err := s.signer.SignJWT(parsed)
	if err != nil {
		return nil, err
	}

	rec, err := s.anchors.Enqueue(ctx, meta.Hash, s.issuer)

	var dup *anchor.DuplicateError

	switch {
	case errors.As(err, &dup):
		rec = dup.Record
	case err != nil:
		return nil, fmt.Errorf("enqueue anchor: %w", err)
	}

	logger.Infoc(ctx, "Credential issued",
		logfields.WithCredentialHash(meta.Hash),
		logfields.WithJobID(rec.JobID),
	)

	return &Result{
		Credential:    raw,
		JWT:           token,
		ProofMetadata: meta,
		Anchor:        rec,
	}, nil
}

func (s *Service) buildCredential(req *Request) (map[string]interface{}, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidRequest)
	}

	claims, err := canonical.Parse(req.Claims)
	if err != nil {
		return nil, fmt.Errorf("%w: claims: %w", ErrInvalidRequest, err)
	}

	subject, ok := claims.Interface().(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: claims must be a JSON object", ErrInvalidRequest)
	}

	if req.SubjectDID != "" {
		if !didkey.IsValidDID(req.SubjectDID) {
			return nil, fmt.Errorf("%w: malformed subject DID %q", ErrInvalidRequest, req.SubjectDID)
		}

		subject["id"] = req.SubjectDID
	}

	id := req.ID
	if id == "" {
		id = "urn:uuid:" + uuid.NewString()
	}

	types := append([]string{"VerifiableCredential"}, req.Types...)

	issued := s.now().UTC().Truncate(time.Second)

	doc := map[string]interface{}{
		"id":                id,
		"type":              types,
		"issuer":            s.issuer,
		"issuanceDate":      issued.Format(time.RFC3339),
		"credentialSubject": subject,
	}

	if req.ExpirationDate != nil {
		if !req.ExpirationDate.After(issued) {
			return nil, fmt.Errorf("%w: expiration date must be after the issuance date", ErrInvalidRequest)
		}

		doc["expirationDate"] = req.ExpirationDate.UTC().Truncate(time.Second).Format(time.RFC3339)
	}

	return doc, nil
}

// GenerateProofMetadata hashes an arbitrary JSON payload under the current canonicalization.
func GenerateProofMetadata(payload json.RawMessage) (*canonical.ProofMetadata, error) {
	v, err := canonical.Parse(payload)
	if err != nil {
		return nil, err
	}

	return canonical.GenerateProofMetadata(v)
}

// VerifyProof checks payload against declared proof metadata, falling back once to the
// legacy canonicalization.
func VerifyProof(payload json.RawMessage, declared *canonical.ProofMetadata) (*canonical.VerifyResult, error) {
	v, err := canonical.Parse(payload)
	if err != nil {
		return nil, err
	}

	return canonical.VerifyProof(v, declared)
}
