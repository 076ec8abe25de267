package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/blog/pkg/cryptox"
	"github.com/aussiebroadwan/blog/pkg/jwtx"
)

// InitSigningKeys creates the KeyManager that signs and verifies tokens.
//
// With cfg.SigningKeyFile set the key is loaded from that file, or generated
// and written there on first start, so tokens survive restarts. Otherwise
// cfg.NumKeys ephemeral keys are generated and every token becomes invalid
// when the process exits.
func InitSigningKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	opts := jwtx.KeyManagerOptions{
		Issuer:  cfg.Issuer,
		NumKeys: cfg.NumKeys,
	}

	if cfg.SigningKeyFile != "" {
		pemKey, err := cryptox.LoadOrGenerateEd25519Key(cfg.SigningKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load signing key: %w", err)
		}
		opts.PrivateKeys = [][]byte{pemKey}
	}

	keyManager, err := jwtx.NewKeyManager(opts)
	if err != nil {
		return nil, err
	}

	if cfg.SigningKeyFile != "" {
		logger.Info("signing key loaded", "path", cfg.SigningKeyFile)
	} else {
		logger.Warn("using ephemeral signing keys, tokens will not survive a restart",
			"num_keys", keyManager.NumSigners())
	}

	return keyManager, nil
}
