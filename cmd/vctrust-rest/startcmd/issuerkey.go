/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"crypto"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"os"

	"github.com/go-jose/go-jose/v3"

	"github.com/trustbloc/vctrust/pkg/didkey"
	"github.com/trustbloc/vctrust/pkg/doc/credential"
)

type issuerIdentity struct {
	did    string
	signer *credential.Signer
}

// loadIssuerIdentity reads a private JWK from path, or generates an ephemeral Ed25519 key
// when path is empty, and derives the issuer did:key from it.
func loadIssuerIdentity(path string) (*issuerIdentity, error) {
	var privateKey crypto.PrivateKey

	if path == "" {
		_, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("generate issuer key: %w", err)
		}

		logger.Warn("No issuer key file configured, credentials are signed with an ephemeral key")

		privateKey = priv
	} else {
		data, err := os.ReadFile(path) //nolint:gosec
		if err != nil {
			return nil, fmt.Errorf("read issuer key file: %w", err)
		}

		var jwk jose.JSONWebKey

		if err = jwk.UnmarshalJSON(data); err != nil {
			return nil, fmt.Errorf("parse issuer key file: %w", err)
		}

		if jwk.IsPublic() {
			return nil, fmt.Errorf("issuer key file %s holds a public key", path)
		}

		privateKey = jwk.Key
	}

	signer, ok := privateKey.(crypto.Signer)
	if !ok {
		return nil, fmt.Errorf("unsupported issuer key type %T", privateKey)
	}

	did, kid, err := didkey.CreateDIDKey(signer.Public())
	if err != nil {
		return nil, err
	}

	credSigner, err := credential.NewSigner(privateKey, kid)
	if err != nil {
		return nil, err
	}

	return &issuerIdentity{did: did, signer: credSigner}, nil
}
