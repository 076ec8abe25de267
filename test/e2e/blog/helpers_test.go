package blog_test

import (
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/blog/internal/blog/app"
	"github.com/aussiebroadwan/blog/pkg/blogsdk"
	"github.com/aussiebroadwan/blog/pkg/httpx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Helpers for the blog service end-to-end tests. Each test runs the fully
 * wired application behind an httptest server and drives it with blogsdk.
 */

const defaultPassword = "Secret123!"

// TestMain raises the rate limits. Every request comes from 127.0.0.1, which
// would otherwise trip the strict limits on register and login.
func TestMain(m *testing.M) {
	relaxed := httpx.RateLimitConfig{RequestsPerWindow: 10000, Window: time.Minute, Burst: 10000}
	httpx.StrictLimit = relaxed
	httpx.ModerateLimit = relaxed
	httpx.LenientLimit = relaxed

	os.Exit(m.Run())
}

func baseConfig(t *testing.T) app.Config {
	t.Helper()

	return app.Config{
		Issuer:              "bartab-blog",
		DatabaseDriver:      "sqlite",
		DatabaseFile:        filepath.Join(t.TempDir(), "blog.db"),
		NumKeys:             1,
		AccessTokenTTL:      time.Hour,
		RefreshTokenTTL:     time.Hour,
		Env:                 "test",
		LogLevel:            "warn",
		LogFormat:           "json",
		LogOutput:           io.Discard,
		ShutdownGracePeriod: time.Second,
	}
}

// startBlog serves the application built from cfg and returns its client.
func startBlog(t *testing.T, cfg app.Config) *blogsdk.SDKClient {
	t.Helper()

	application, err := app.New(cfg)
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		srv.Close()
		if err := application.Shutdown(); err != nil {
			t.Logf("shutdown: %v", err)
		}
	})

	client := blogsdk.NewSDKClient(srv.URL)
	client.HTTPClient = srv.Client()
	return client
}

func setupBlogSQLite(t *testing.T) *blogsdk.SDKClient {
	t.Helper()
	return startBlog(t, baseConfig(t))
}

// setupBlogPostgres runs the service against a throwaway PostgreSQL
// container. Skipped with -short or when Docker is not available.
func setupBlogPostgres(t *testing.T) *blogsdk.SDKClient {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "blog",
				"POSTGRES_PASSWORD": "blog",
				"POSTGRES_DB":       "blog",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := baseConfig(t)
	cfg.DatabaseDriver = "postgres"
	cfg.DatabaseURL = fmt.Sprintf("postgres://blog:blog@%s:%s/blog?sslmode=disable", host, port.Port())
	return startBlog(t, cfg)
}

// registerAndLogin creates a user and returns an authenticated session and
// the registration response.
func registerAndLogin(t *testing.T, client *blogsdk.SDKClient, username string, isAuthor bool) (*blogsdk.Session, *blogsdk.RegisterResponse) {
	t.Helper()

	reg, err := client.Register(t.Context(), username, defaultPassword, isAuthor)
	require.NoError(t, err)

	session, err := client.AuthenticateWithPassword(t.Context(), username, defaultPassword)
	require.NoError(t, err)
	return session, reg
}
