package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/blog/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()

	dir := t.TempDir()
	return Config{
		Issuer:              "test-blog",
		DatabaseDriver:      "sqlite",
		DatabaseFile:        filepath.Join(dir, "blog.db"),
		NumKeys:             2,
		AccessTokenTTL:      time.Hour,
		RefreshTokenTTL:     time.Hour,
		Env:                 "test",
		LogLevel:            "error",
		LogOutput:           io.Discard,
		ShutdownGracePeriod: time.Second,
	}
}

func TestNewServesHealth(t *testing.T) {
	application, err := New(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })

	rec := httptest.NewRecorder()
	application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, 2, application.keyManager.NumSigners())
}

func TestNewRejectsBadDatabaseConfig(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.DatabaseDriver = "mysql"

		_, err := New(cfg)
		require.ErrorContains(t, err, "unknown database driver")
	})

	t.Run("postgres without url", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.DatabaseDriver = "postgres"

		_, err := New(cfg)
		require.ErrorContains(t, err, "BLOG_DATABASE_URL")
	})
}

func TestSigningKeyFileSurvivesRestart(t *testing.T) {
	cfg := testConfig(t)
	cfg.SigningKeyFile = filepath.Join(t.TempDir(), "keys", "signing.pem")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	first, err := InitSigningKeys(cfg, logger)
	require.NoError(t, err)
	require.FileExists(t, cfg.SigningKeyFile)

	second, err := InitSigningKeys(cfg, logger)
	require.NoError(t, err)

	require.Equal(t, first.KeySet.PublicJWKS(), second.KeySet.PublicJWKS())

	token, err := first.GetSigner().Sign(testClaims())
	require.NoError(t, err)
	_, err = second.Verifier.Verify(token)
	require.NoError(t, err)
}

func testClaims() jwtx.Claims {
	return jwtx.NewClaims("1", jwtx.KindAccess, time.Hour, "test-blog", time.Now())
}
