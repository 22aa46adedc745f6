/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"context"
	"crypto"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-jose/go-jose/v3"

	"github.com/trustbloc/vctrust/pkg/canonical"
)

// KeyResolver returns the public key behind a DID or DID URL.
type KeyResolver interface {
	ResolveKey(ctx context.Context, didURL string) (crypto.PublicKey, error)
}

// VerifySignature checks the embedded proof or the JWT signature against the issuer's
// key. Every failure wraps ErrInvalidSignature.
func (c *Credential) VerifySignature(ctx context.Context, keys KeyResolver) error {
	switch c.Envelope {
	case EnvelopeRaw:
		return c.verifyProof(ctx, keys)
	case EnvelopeSignedEnvelope:
		return c.verifyJWT(ctx, keys)
	default:
		return fmt.Errorf("%w: unknown envelope %q", ErrInvalidSignature, c.Envelope)
	}
}

func (c *Credential) verifyProof(ctx context.Context, keys KeyResolver) error {
	if c.proof == nil {
		return fmt.Errorf("%w: proof is missing", ErrInvalidSignature)
	}

	raw, err := canonical.Canonicalize(*c.proof, canonical.VersionCurrent)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	var proof Proof

	if err = json.Unmarshal(raw, &proof); err != nil {
		return fmt.Errorf("%w: decode proof: %w", ErrInvalidSignature, err)
	}

	if proof.JWS == "" {
		return fmt.Errorf("%w: proof has no jws", ErrInvalidSignature)
	}

	key, err := c.issuerKey(ctx, keys, proof.VerificationMethod)
	if err != nil {
		return err
	}

	input, err := canonical.Canonicalize(c.Payload, canonical.VersionCurrent)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	jws, err := jose.ParseDetached(proof.JWS, input)
	if err != nil {
		return fmt.Errorf("%w: parse jws: %w", ErrInvalidSignature, err)
	}

	if _, err = jws.Verify(key); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	return nil
}

func (c *Credential) verifyJWT(ctx context.Context, keys KeyResolver) error {
	if c.token == nil {
		return fmt.Errorf("%w: token is missing", ErrInvalidSignature)
	}

	key, err := c.issuerKey(ctx, keys, c.tokenKID)
	if err != nil {
		return err
	}

	var claims jwtClaims

	if err = c.token.Claims(key, &claims); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	return nil
}

// issuerKey resolves the verification method, which must belong to the issuer.
// An empty verification method falls back to the issuer DID itself.
func (c *Credential) issuerKey(ctx context.Context, keys KeyResolver, verificationMethod string) (crypto.PublicKey, error) {
	if verificationMethod == "" {
		verificationMethod = c.Issuer
	}

	if controller, _, _ := strings.Cut(verificationMethod, "#"); controller != c.Issuer {
		return nil, fmt.Errorf("%w: verification method %s is not controlled by issuer %s",
			ErrInvalidSignature, verificationMethod, c.Issuer)
	}

	key, err := keys.ResolveKey(ctx, verificationMethod)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve issuer key: %w", ErrInvalidSignature, err)
	}

	return key, nil
}
