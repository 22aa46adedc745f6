/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package didkey

import (
	"context"
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"encoding/binary"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/multiformats/go-multibase"
)

const (
	// ED25519PubKeyMultiCodec for Ed25519 public key in multicodec table.
	ED25519PubKeyMultiCodec = 0xed
	// P256PubKeyMultiCodec for NIST P-256 public key in multicodec table.
	P256PubKeyMultiCodec = 0x1200

	methodPrefix       = "did:key:"
	maxMulticodecBytes = 9
)

var (
	// ErrUnsupportedMethod is returned for DIDs that are neither did:key nor statically registered.
	ErrUnsupportedMethod = errors.New("unsupported DID method")
	// ErrKeyNotFound is returned when no key material can be derived for a DID.
	ErrKeyNotFound = errors.New("key not found")

	didRegexp = regexp.MustCompile(`^did:[a-z0-9]+:[A-Za-z0-9._:%-]*[A-Za-z0-9._%-]$`)
)

// IsValidDID reports whether s has the did:<method>:<method-specific-id> form.
// DID URL parts (path, query, fragment) are not accepted.
func IsValidDID(s string) bool {
	return didRegexp.MatchString(s)
}

// CreateDIDKey builds a did:key identifier and its verification method ID for an
// Ed25519 or P-256 public key.
func CreateDIDKey(pubKey crypto.PublicKey) (string, string, error) {
	var (
		code uint64
		raw  []byte
	)

	switch k := pubKey.(type) {
	case ed25519.PublicKey:
		code, raw = ED25519PubKeyMultiCodec, k
	case *ecdsa.PublicKey:
		if k.Curve != elliptic.P256() {
			return "", "", fmt.Errorf("unsupported curve %s", k.Curve.Params().Name)
		}

		code, raw = P256PubKeyMultiCodec, elliptic.MarshalCompressed(k.Curve, k.X, k.Y)
	default:
		return "", "", fmt.Errorf("unsupported public key type %T", pubKey)
	}

	buf := binary.AppendUvarint(nil, code)
	buf = append(buf, raw...)

	fingerprint, err := multibase.Encode(multibase.Base58BTC, buf)
	if err != nil {
		return "", "", fmt.Errorf("encode key fingerprint: %w", err)
	}

	did := methodPrefix + fingerprint

	return did, did + "#" + fingerprint, nil
}

// PubKeyFromDIDKey decodes the public key embedded in a did:key identifier.
func PubKeyFromDIDKey(did string) (crypto.PublicKey, error) {
	fingerprint, ok := strings.CutPrefix(did, methodPrefix)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, did)
	}

	enc, mc, err := multibase.Decode(fingerprint)
	if err != nil {
		return nil, fmt.Errorf("decode key fingerprint: %w", err)
	}

	if enc != multibase.Base58BTC {
		return nil, fmt.Errorf("unexpected multibase encoding %c", enc)
	}

	code, br := binary.Uvarint(mc)
	if br <= 0 {
		return nil, errors.New("unknown key encoding")
	}

	if br > maxMulticodecBytes {
		return nil, errors.New("code exceeds maximum size")
	}

	raw := mc[br:]

	switch code {
	case ED25519PubKeyMultiCodec:
		if len(raw) != ed25519.PublicKeySize {
			return nil, fmt.Errorf("invalid Ed25519 key length %d", len(raw))
		}

		return ed25519.PublicKey(raw), nil
	case P256PubKeyMultiCodec:
		x, y := elliptic.UnmarshalCompressed(elliptic.P256(), raw)
		if x == nil {
			return nil, errors.New("invalid P-256 key")
		}

		return &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}, nil
	default:
		return nil, fmt.Errorf("unsupported multicodec 0x%x", code)
	}
}

// Resolver returns the signing key of an issuer DID. did:key identifiers are decoded
// directly; other methods must be registered with WithStaticKey.
type Resolver struct {
	mu     sync.RWMutex
	static map[string]crypto.PublicKey
}

// Opt configures a Resolver.
type Opt func(r *Resolver)

// WithStaticKey pins the key for a DID.
func WithStaticKey(did string, key crypto.PublicKey) Opt {
	return func(r *Resolver) {
		r.static[did] = key
	}
}

// NewResolver returns a new Resolver.
func NewResolver(opts ...Opt) *Resolver {
	r := &Resolver{static: make(map[string]crypto.PublicKey)}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register pins the key for a DID at runtime.
func (r *Resolver) Register(did string, key crypto.PublicKey) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.static[did] = key
}

// ResolveKey returns the public key for a DID or DID URL. A fragment, if present, is ignored.
func (r *Resolver) ResolveKey(_ context.Context, didURL string) (crypto.PublicKey, error) {
	did, _, _ := strings.Cut(didURL, "#")

	r.mu.RLock()
	key, ok := r.static[did]
	r.mu.RUnlock()

	if ok {
		return key, nil
	}

	if !strings.HasPrefix(did, methodPrefix) {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, did)
	}

	key, err := PubKeyFromDIDKey(did)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyNotFound, err)
	}

	return key, nil
}
