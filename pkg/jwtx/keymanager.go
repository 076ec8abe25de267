package jwtx

import (
	"crypto/ed25519"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/aussiebroadwan/blog/pkg/cryptox"
)

// KeyManager owns the EdDSA signing keys for an instance along with the
// KeySet they are published through and a Verifier bound to that KeySet.
// When several keys are loaded, signing is spread across them at random.
type KeyManager struct {
	Verifier Verifier
	KeySet   *KeySet

	signers []Signer
	mu      sync.RWMutex
}

// KeyManagerOptions configures a KeyManager.
type KeyManagerOptions struct {
	// Issuer is the issuer claim (iss) enforced by the verifier.
	Issuer string

	// PrivateKeys are PEM encoded Ed25519 keys to sign with. Their kids are
	// derived from the public key so tokens stay valid across restarts.
	PrivateKeys [][]byte

	// NumKeys is how many ephemeral keys to generate when PrivateKeys is
	// empty. Defaults to 1, capped at 10.
	NumKeys int
}

// NewKeyManager loads opts.PrivateKeys, or generates ephemeral keys that only
// live in memory when none are given. With ephemeral keys every token becomes
// invalid when the process restarts.
func NewKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: Issuer is required")
	}

	km := &KeyManager{KeySet: NewKeySet()}
	km.Verifier = NewVerifierEdDSA(km.KeySet, opts.Issuer)

	for i, pemKey := range opts.PrivateKeys {
		signer, err := NewSignerEdDSA("", pemKey)
		if err != nil {
			return nil, fmt.Errorf("jwtx: load key %d: %w", i+1, err)
		}
		if err := km.AddSigner(signer); err != nil {
			return nil, err
		}
	}
	if len(opts.PrivateKeys) > 0 {
		return km, nil
	}

	numKeys := min(max(opts.NumKeys, 1), 10)
	for i := range numKeys {
		pemKey, err := cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, fmt.Errorf("jwtx: failed to generate key %d: %w", i+1, err)
		}
		kid, err := generateRandomKeyID()
		if err != nil {
			return nil, err
		}
		signer, err := NewSignerEdDSA(kid, pemKey)
		if err != nil {
			return nil, err
		}
		if err := km.AddSigner(signer); err != nil {
			return nil, err
		}
	}

	return km, nil
}

// IsReady returns true if the KeyManager has valid keys loaded.
func (km *KeyManager) IsReady() bool {
	return km.KeySet.IsReady()
}

// GetSigner returns a randomly selected signer from the available keys.
func (km *KeyManager) GetSigner() Signer {
	km.mu.RLock()
	defer km.mu.RUnlock()

	switch len(km.signers) {
	case 0:
		return nil
	case 1:
		return km.signers[0]
	default:
		return km.signers[rand.IntN(len(km.signers))]
	}
}

// NumSigners returns the number of active signing keys.
func (km *KeyManager) NumSigners() int {
	km.mu.RLock()
	defer km.mu.RUnlock()
	return len(km.signers)
}

// AddSigner adds a signing key to both the signing pool and the KeySet.
func (km *KeyManager) AddSigner(signer Signer) error {
	if signer == nil {
		return fmt.Errorf("jwtx: signer cannot be nil")
	}
	if err := signer.Validate(); err != nil {
		return err
	}

	km.mu.Lock()
	defer km.mu.Unlock()

	if err := km.KeySet.AddSigner(signer); err != nil {
		return fmt.Errorf("jwtx: failed to add signer to keyset: %w", err)
	}
	km.signers = append(km.signers, signer)
	return nil
}

// generateRandomKeyID creates a "blog-{random}" key identifier.
func generateRandomKeyID() (string, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return "", fmt.Errorf("jwtx: failed to generate random key ID: %w", err)
	}
	return "blog-" + token, nil
}

// deriveKeyID fingerprints the public key so the same key always gets the
// same kid.
func deriveKeyID(pub ed25519.PublicKey) string {
	return "blog-" + cryptox.Fingerprint(pub)[:22]
}
