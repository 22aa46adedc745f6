/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package didkey_test

import (
	"context"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trustbloc/vctrust/pkg/didkey"
)

func TestCreateDIDKey(t *testing.T) {
	t.Run("ed25519 round trip", func(t *testing.T) {
		pub, _, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)

		did, kid, err := didkey.CreateDIDKey(pub)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(did, "did:key:z6Mk"))
		require.Equal(t, did+"#"+strings.TrimPrefix(did, "did:key:"), kid)
		require.True(t, didkey.IsValidDID(did))

		key, err := didkey.PubKeyFromDIDKey(did)
		require.NoError(t, err)
		require.Equal(t, pub, key)
	})

	t.Run("p-256 round trip", func(t *testing.T) {
		priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		require.NoError(t, err)

		did, _, err := didkey.CreateDIDKey(&priv.PublicKey)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(did, "did:key:zDn"))

		key, err := didkey.PubKeyFromDIDKey(did)
		require.NoError(t, err)
		require.True(t, priv.PublicKey.Equal(key))
	})

	t.Run("known vector", func(t *testing.T) {
		const did = "did:key:z6MkiTBz1ymuepAQ4HEHYSF1H8quG5GLVVQR3djdX3mDooWp"

		key, err := didkey.PubKeyFromDIDKey(did)
		require.NoError(t, err)

		again, _, err := didkey.CreateDIDKey(key)
		require.NoError(t, err)
		require.Equal(t, did, again)
	})

	t.Run("unsupported key", func(t *testing.T) {
		priv, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
		require.NoError(t, err)

		_, _, err = didkey.CreateDIDKey(&priv.PublicKey)
		require.ErrorContains(t, err, "unsupported curve")

		_, _, err = didkey.CreateDIDKey("key")
		require.ErrorContains(t, err, "unsupported public key type")
	})
}

func TestPubKeyFromDIDKey_Errors(t *testing.T) {
	_, err := didkey.PubKeyFromDIDKey("did:web:example.com")
	require.ErrorIs(t, err, didkey.ErrUnsupportedMethod)

	_, err = didkey.PubKeyFromDIDKey("did:key:!!!")
	require.Error(t, err)

	// base64url multibase prefix
	_, err = didkey.PubKeyFromDIDKey("did:key:uAQID")
	require.ErrorContains(t, err, "unexpected multibase encoding")

	// valid multibase, truncated Ed25519 key
	_, err = didkey.PubKeyFromDIDKey("did:key:z6Mk")
	require.Error(t, err)
}

func TestIsValidDID(t *testing.T) {
	for _, did := range []string{
		"did:key:z6MkiTBz1ymuepAQ4HEHYSF1H8quG5GLVVQR3djdX3mDooWp",
		"did:web:example.com",
		"did:example:alice",
		"did:ion:abc:def",
	} {
		require.True(t, didkey.IsValidDID(did), did)
	}

	for _, did := range []string{
		"",
		"alice",
		"did:",
		"did:key:",
		"did:Key:abc",
		"did:key:abc#frag",
		"did:web:example.com/path",
		"did:ion:abc:",
	} {
		require.False(t, didkey.IsValidDID(did), did)
	}
}

func TestResolver(t *testing.T) {
	ctx := context.Background()

	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	did, kid, err := didkey.CreateDIDKey(pub)
	require.NoError(t, err)

	t.Run("did:key with fragment", func(t *testing.T) {
		key, err := didkey.NewResolver().ResolveKey(ctx, kid)
		require.NoError(t, err)
		require.Equal(t, pub, key)
	})

	t.Run("static key", func(t *testing.T) {
		r := didkey.NewResolver(didkey.WithStaticKey("did:web:issuer.example", pub))

		key, err := r.ResolveKey(ctx, "did:web:issuer.example#key-1")
		require.NoError(t, err)
		require.Equal(t, pub, key)

		other, _, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)

		r.Register(did, other)

		key, err = r.ResolveKey(ctx, did)
		require.NoError(t, err)
		require.Equal(t, other, key)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := didkey.NewResolver().ResolveKey(ctx, "did:web:unknown.example")
		require.ErrorIs(t, err, didkey.ErrKeyNotFound)

		_, err = didkey.NewResolver().ResolveKey(ctx, "did:key:zzz")
		require.ErrorIs(t, err, didkey.ErrKeyNotFound)
	})
}
