package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/blog/pkg/cryptox"
	"github.com/aussiebroadwan/blog/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestNewKeyManager_Ephemeral(t *testing.T) {
	km, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: exampleIssuer, NumKeys: 3})
	require.NoError(t, err)
	require.True(t, km.IsReady())
	require.Equal(t, 3, km.NumSigners())
	require.Len(t, km.KeySet.PublicJWKS().Keys, 3)
}

func TestNewKeyManager_DefaultsToOneKey(t *testing.T) {
	km, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: exampleIssuer})
	require.NoError(t, err)
	require.Equal(t, 1, km.NumSigners())
}

func TestNewKeyManager_RequiresIssuer(t *testing.T) {
	_, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{})
	require.Error(t, err)
}

func TestKeyManager_SignAndVerifyRoundTrip(t *testing.T) {
	km, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: exampleIssuer, NumKeys: 2})
	require.NoError(t, err)

	for range 10 {
		claims := jwtx.NewClaims("123", jwtx.KindAccess, 5*time.Minute, exampleIssuer, time.Now().UTC())
		token, err := km.GetSigner().Sign(claims)
		require.NoError(t, err)

		parsed, err := km.Verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, "123", parsed.Subject)
		require.Equal(t, jwtx.KindAccess, parsed.Kind)
	}
}

func TestKeyManager_PersistedKeySurvivesRestart(t *testing.T) {
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	first, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{
		Issuer:      exampleIssuer,
		PrivateKeys: [][]byte{pemKey},
	})
	require.NoError(t, err)

	token, err := first.GetSigner().Sign(
		jwtx.NewClaims("7", jwtx.KindRefresh, time.Hour, exampleIssuer, time.Now().UTC()),
	)
	require.NoError(t, err)

	// A second manager built from the same key must accept the token
	second, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{
		Issuer:      exampleIssuer,
		PrivateKeys: [][]byte{pemKey},
	})
	require.NoError(t, err)

	parsed, err := second.Verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "7", parsed.Subject)
}

func TestKeyManager_AddSignerNil(t *testing.T) {
	km, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: exampleIssuer})
	require.NoError(t, err)
	require.Error(t, km.AddSigner(nil))
}
