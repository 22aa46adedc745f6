/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"fmt"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/go-jose/go-jose/v3/jwt"

	"github.com/trustbloc/vctrust/pkg/canonical"
)

// ProofType is the type of the embedded proof block.
const ProofType = "JsonWebSignature2020"

// Proof is the embedded proof block of a raw credential. JWS is a detached compact
// JWS over the JCS rendering of the credential without its proof.
type Proof struct {
	Type               string `json:"type"`
	Created            string `json:"created,omitempty"`
	VerificationMethod string `json:"verificationMethod"`
	ProofPurpose       string `json:"proofPurpose,omitempty"`
	JWS                string `json:"jws"`
}

// Signer signs credentials with one issuer key.
type Signer struct {
	signer jose.Signer
	jwt    jose.Signer
	kid    string
}

// NewSigner creates a signer for an Ed25519 or P-256 private key. kid is the
// verification method ID, e.g. "did:key:z6Mk...#z6Mk...".
func NewSigner(privateKey crypto.PrivateKey, kid string) (*Signer, error) {
	alg, err := algorithmFor(privateKey)
	if err != nil {
		return nil, err
	}

	key := jose.SigningKey{
		Algorithm: alg,
		Key:       jose.JSONWebKey{Key: privateKey, KeyID: kid},
	}

	detached, err := jose.NewSigner(key, nil)
	if err != nil {
		return nil, fmt.Errorf("create JWS signer: %w", err)
	}

	jwtSigner, err := jose.NewSigner(key, (&jose.SignerOptions{}).WithType("JWT"))
	if err != nil {
		return nil, fmt.Errorf("create JWT signer: %w", err)
	}

	return &Signer{signer: detached, jwt: jwtSigner, kid: kid}, nil
}

// KeyID returns the verification method ID the signer puts in proofs and JWT headers.
func (s *Signer) KeyID() string {
	return s.kid
}

// SignEmbedded returns the credential with a proof block added.
func (s *Signer) SignEmbedded(payload canonical.Value, created time.Time) (canonical.Value, error) {
	input, err := canonical.Canonicalize(payload.Without(proofField), canonical.VersionCurrent)
	if err != nil {
		return canonical.Value{}, err
	}

	obj, err := s.signer.Sign(input)
	if err != nil {
		return canonical.Value{}, fmt.Errorf("sign credential: %w", err)
	}

	jws, err := obj.DetachedCompactSerialize()
	if err != nil {
		return canonical.Value{}, fmt.Errorf("serialize JWS: %w", err)
	}

	doc, ok := payload.Interface().(map[string]interface{})
	if !ok {
		return canonical.Value{}, fmt.Errorf("credential must be a JSON object")
	}

	doc[proofField] = map[string]interface{}{
		"type":               ProofType,
		"created":            created.UTC().Format(time.RFC3339),
		"verificationMethod": s.kid,
		"proofPurpose":       "assertionMethod",
		"jws":                jws,
	}

	return canonical.FromGo(doc)
}

// SignJWT wraps the credential in a compact JWT. Registered claims are derived from
// the credential so that the envelope and the vc claim never disagree.
func (s *Signer) SignJWT(c *Credential) (string, error) {
	vc, err := canonical.Canonicalize(c.Payload, canonical.VersionCurrent)
	if err != nil {
		return "", err
	}

	claims := &jwtClaims{
		Claims: jwt.Claims{
			ID:      c.ID,
			Issuer:  c.Issuer,
			Subject: c.Subject,
		},
		VC: vc,
	}

	if c.IssuanceDate != nil {
		claims.NotBefore = jwt.NewNumericDate(*c.IssuanceDate)
		claims.IssuedAt = jwt.NewNumericDate(*c.IssuanceDate)
	}

	if c.ExpirationDate != nil {
		claims.Expiry = jwt.NewNumericDate(*c.ExpirationDate)
	}

	token, err := jwt.Signed(s.jwt).Claims(claims).CompactSerialize()
	if err != nil {
		return "", fmt.Errorf("sign JWT: %w", err)
	}

	return token, nil
}

func algorithmFor(privateKey crypto.PrivateKey) (jose.SignatureAlgorithm, error) {
	switch k := privateKey.(type) {
	case ed25519.PrivateKey:
		return jose.EdDSA, nil
	case *ecdsa.PrivateKey:
		if k.Curve == elliptic.P256() {
			return jose.ES256, nil
		}

		return "", fmt.Errorf("unsupported curve %s", k.Curve.Params().Name)
	default:
		return "", fmt.Errorf("unsupported private key type %T", privateKey)
	}
}
