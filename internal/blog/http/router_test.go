package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	bloghttp "github.com/aussiebroadwan/blog/internal/blog/http"
	"github.com/aussiebroadwan/blog/internal/blog/service"
	"github.com/aussiebroadwan/blog/internal/blog/store/drivers/sqlite"
	"github.com/aussiebroadwan/blog/pkg/blogsdk"
	"github.com/aussiebroadwan/blog/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	t      *testing.T
	router *bloghttp.Router
	tokens *service.TokenService
	now    time.Time

	nextIP atomic.Int32
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "blog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations(context.Background()))

	km, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: "test-blog"})
	require.NoError(t, err)

	env := &testEnv{t: t, now: time.Now()}

	users := &service.UserService{Store: st}
	env.tokens = &service.TokenService{
		KeyManager: km,
		Users:      users,
		Issuer:     "test-blog",
		AccessTTL:  time.Hour,
		RefreshTTL: time.Hour,
		Now:        func() time.Time { return env.now },
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := bloghttp.NewRouter(km.KeySet, "test", st, logger)
	r.TokenService = env.tokens
	r.UserService = users
	r.AuthorService = &service.AuthorService{Store: st}
	r.PostService = &service.PostService{Store: st}
	r.ApplyRoutes()

	env.router = r
	return env
}

type reqOpt func(*http.Request)

func withToken(tok string) reqOpt {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+tok) }
}

func fromIP(ip string) reqOpt {
	return func(r *http.Request) { r.Header.Set("X-Forwarded-For", ip) }
}

// do sends a request through the router. Each request comes from a fresh IP
// unless fromIP is given, so per IP rate limits stay out of the way.
func (e *testEnv) do(method, path string, body any, opts ...reqOpt) *httptest.ResponseRecorder {
	e.t.Helper()

	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(e.t, err)
		rdr = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, rdr)
	if rdr != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	n := e.nextIP.Add(1)
	req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.%d.%d", n/250, n%250))
	for _, opt := range opts {
		opt(req)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) blogsdk.ErrorResponse {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	body := decode[blogsdk.ErrorResponse](t, rec)
	require.Equal(t, code, body.Error)
	return body
}

// register creates a user and logs in, returning the token pair.
func (e *testEnv) register(username string, isAuthor bool) blogsdk.TokenResponse {
	e.t.Helper()

	rec := e.do(http.MethodPost, "/v1/register", blogsdk.RegisterRequest{
		Username: username,
		Password: "pw-" + username,
		IsAuthor: &isAuthor,
	})
	require.Equal(e.t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = e.do(http.MethodPost, "/v1/login", blogsdk.LoginRequest{Username: username, Password: "pw-" + username})
	require.Equal(e.t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[blogsdk.TokenResponse](e.t, rec)
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestSystemEndpoints(t *testing.T) {
	env := newTestEnv(t)

	t.Run("livez", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/livez", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[blogsdk.HealthResponse](t, rec)
		require.Equal(t, "ok", body.Status)
		require.Equal(t, "test", body.Version)
	})

	t.Run("readyz", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/readyz", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[blogsdk.HealthResponse](t, rec)
		require.Equal(t, "ok", body.Status)
		require.NotNil(t, body.Checks)
		require.Equal(t, "ok", body.Checks.Database)
		require.Equal(t, "ok", body.Checks.Signer)
	})

	t.Run("jwks", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/.well-known/jwks.json", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[blogsdk.JWKSResponse](t, rec)
		require.Len(t, body.Keys, 1)
		require.Equal(t, "EdDSA", body.Keys[0].Alg)
	})

	t.Run("swagger doc", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/swagger/doc.json", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "/v1/posts/{id}")
	})

	t.Run("responses carry a request id", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/livez", nil)
		require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})
}

func TestRegisterRateLimited(t *testing.T) {
	env := newTestEnv(t)

	for i := range 5 {
		rec := env.do(http.MethodPost, "/v1/register", blogsdk.RegisterRequest{
			Username: fmt.Sprintf("user%d", i),
			Password: "pw",
			IsAuthor: boolPtr(false),
		}, fromIP("192.0.2.1"))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := env.do(http.MethodPost, "/v1/register", blogsdk.RegisterRequest{Username: "one-too-many", Password: "pw"}, fromIP("192.0.2.1"))
	requireError(t, rec, http.StatusTooManyRequests, "rate_limit_exceeded")
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
}
