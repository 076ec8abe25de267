package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"BLOG_ISSUER", "BLOG_DATABASE_DRIVER", "BLOG_DATABASE_FILE", "BLOG_DATABASE_URL",
		"BLOG_SIGNING_KEY_FILE", "BLOG_NUM_KEYS", "BLOG_ACCESS_TOKEN_TTL", "BLOG_REFRESH_TOKEN_TTL",
		"ENV", "LOG_LEVEL", "LOG_FORMAT", "PORT", "SHUTDOWN_GRACE_PERIOD",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "bartab-blog", cfg.Issuer)
	require.Equal(t, "sqlite", cfg.DatabaseDriver)
	require.Equal(t, "blog.db", cfg.DatabaseFile)
	require.Empty(t, cfg.SigningKeyFile)
	require.Equal(t, 1, cfg.NumKeys)
	require.Equal(t, time.Hour, cfg.AccessTokenTTL)
	require.Equal(t, time.Hour, cfg.RefreshTokenTTL)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("BLOG_ISSUER", "my-blog")
	t.Setenv("BLOG_DATABASE_DRIVER", "postgres")
	t.Setenv("BLOG_DATABASE_URL", "postgres://localhost/blog")
	t.Setenv("BLOG_NUM_KEYS", "3")
	t.Setenv("BLOG_ACCESS_TOKEN_TTL", "15m")
	t.Setenv("BLOG_REFRESH_TOKEN_TTL", "120")
	t.Setenv("PORT", "not-a-port")

	cfg := LoadConfig()
	require.Equal(t, "my-blog", cfg.Issuer)
	require.Equal(t, "postgres", cfg.DatabaseDriver)
	require.Equal(t, "postgres://localhost/blog", cfg.DatabaseURL)
	require.Equal(t, 3, cfg.NumKeys)
	require.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	require.Equal(t, 2*time.Hour, cfg.RefreshTokenTTL)
	require.Equal(t, 8080, cfg.Port)
}
