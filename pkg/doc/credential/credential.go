/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-jose/go-jose/v3/jwt"
	"github.com/tidwall/gjson"

	"github.com/trustbloc/vctrust/pkg/canonical"
	"github.com/trustbloc/vctrust/pkg/doc/validator/jsonschema"
)

// Envelope is the form a credential is presented in.
type Envelope string

const (
	// EnvelopeRaw is a credential object carrying an embedded proof block.
	EnvelopeRaw Envelope = "raw"
	// EnvelopeSignedEnvelope is a compact JWT with the credential under the "vc" claim.
	EnvelopeSignedEnvelope Envelope = "signed-envelope"
)

const proofField = "proof"

var (
	// ErrMalformed marks credentials that cannot be normalized.
	ErrMalformed = errors.New("malformed credential")
	// ErrInvalidSignature marks a missing, unverifiable or invalid signature.
	ErrInvalidSignature = errors.New("invalid signature")
)

//go:embed schema/credential.schema.json
var credentialSchema []byte

// Credential is a normalized credential, independent of its envelope.
type Credential struct {
	Envelope Envelope
	// Payload is the credential object without its proof block. Its canonical hash
	// identifies the credential in both envelopes.
	Payload        canonical.Value
	ID             string
	Issuer         string
	Subject        string
	IssuanceDate   *time.Time
	ExpirationDate *time.Time

	proof    *canonical.Value
	token    *jwt.JSONWebToken
	tokenKID string
}

// Expired reports whether the credential expired before now.
func (c *Credential) Expired(now time.Time) bool {
	return c.ExpirationDate != nil && c.ExpirationDate.Before(now)
}

type jwtClaims struct {
	jwt.Claims
	VC json.RawMessage `json:"vc,omitempty"`
}

// Parser normalizes raw credential objects and JWT envelopes.
type Parser struct {
	schemas  *jsonschema.Registry
	schemaID string
}

// NewParser returns a parser validating credentials against the built-in credential schema.
func NewParser() *Parser {
	schemas := jsonschema.NewRegistry()

	return &Parser{
		schemas:  schemas,
		schemaID: schemas.MustRegister(credentialSchema),
	}
}

// Parse accepts either a JSON credential object or a JSON string holding a compact JWT.
func (p *Parser) Parse(data []byte) (*Credential, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformed)
	}

	switch trimmed[0] {
	case '{':
		return p.parseRaw(trimmed)
	case '"':
		var token string

		if err := json.Unmarshal(trimmed, &token); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		return p.ParseJWT(token)
	default:
		return nil, fmt.Errorf("%w: expected a credential object or a JWT string", ErrMalformed)
	}
}

func (p *Parser) parseRaw(data []byte) (*Credential, error) {
	v, err := canonical.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	c, err := p.normalize(v.Without(proofField))
	if err != nil {
		return nil, err
	}

	c.Envelope = EnvelopeRaw

	if proof, ok := v.Member(proofField); ok {
		c.proof = &proof
	}

	return c, nil
}

// ParseJWT parses a compact JWT envelope. The signature is not verified here.
func (p *Parser) ParseJWT(token string) (*Credential, error) {
	tok, err := jwt.ParseSigned(token)
	if err != nil {
		return nil, fmt.Errorf("%w: parse JWT: %w", ErrMalformed, err)
	}

	var claims jwtClaims

	if err = tok.UnsafeClaimsWithoutVerification(&claims); err != nil {
		return nil, fmt.Errorf("%w: decode JWT claims: %w", ErrMalformed, err)
	}

	if len(claims.VC) == 0 {
		return nil, fmt.Errorf("%w: JWT has no vc claim", ErrMalformed)
	}

	vc, err := canonical.Parse(claims.VC)
	if err != nil {
		return nil, fmt.Errorf("%w: vc claim: %w", ErrMalformed, err)
	}

	c, err := p.normalize(vc.Without(proofField))
	if err != nil {
		return nil, err
	}

	if claims.Issuer != "" && claims.Issuer != c.Issuer {
		return nil, fmt.Errorf("%w: iss %q does not match vc issuer %q", ErrMalformed, claims.Issuer, c.Issuer)
	}

	switch {
	case c.Subject == "":
		c.Subject = claims.Subject
	case claims.Subject != "" && claims.Subject != c.Subject:
		return nil, fmt.Errorf("%w: sub %q does not match vc subject %q", ErrMalformed, claims.Subject, c.Subject)
	}

	if claims.Expiry != nil {
		exp := claims.Expiry.Time().UTC()
		if c.ExpirationDate == nil || exp.Before(*c.ExpirationDate) {
			c.ExpirationDate = &exp
		}
	}

	c.Envelope = EnvelopeSignedEnvelope
	c.token = tok

	if len(tok.Headers) > 0 {
		c.tokenKID = tok.Headers[0].KeyID
	}

	return c, nil
}

func (p *Parser) normalize(payload canonical.Value) (*Credential, error) {
	if payload.Kind() != canonical.KindObject {
		return nil, fmt.Errorf("%w: credential must be a JSON object", ErrMalformed)
	}

	raw, err := canonical.Canonicalize(payload, canonical.VersionCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if err = p.schemas.Validate(json.RawMessage(raw), p.schemaID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	issuer := gjson.GetBytes(raw, "issuer")
	if issuer.IsObject() {
		issuer = issuer.Get("id")
	}

	c := &Credential{
		Payload: payload,
		ID:      gjson.GetBytes(raw, "id").String(),
		Issuer:  issuer.String(),
		Subject: gjson.GetBytes(raw, "credentialSubject.id").String(),
	}

	if c.IssuanceDate, err = parseDate(raw, "issuanceDate"); err != nil {
		return nil, err
	}

	if c.ExpirationDate, err = parseDate(raw, "expirationDate"); err != nil {
		return nil, err
	}

	return c, nil
}

func parseDate(raw []byte, path string) (*time.Time, error) {
	r := gjson.GetBytes(raw, path)
	if !r.Exists() {
		return nil, nil //nolint:nilnil
	}

	t, err := time.Parse(time.RFC3339, r.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, path, err)
	}

	t = t.UTC()

	return &t, nil
}
