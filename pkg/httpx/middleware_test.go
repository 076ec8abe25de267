package httpx_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/blog/pkg/httpx"
	"github.com/aussiebroadwan/blog/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// stubValidator accepts "good-<kind>" tokens and fails everything else with
// the configured error.
type stubValidator struct {
	err error
}

func (s stubValidator) ValidateToken(raw string, kind jwtx.Kind) (jwtx.Claims, error) {
	if raw == "good-"+string(kind) {
		return jwtx.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "7"},
			Kind:             kind,
		}, nil
	}
	if s.err != nil {
		return jwtx.Claims{}, s.err
	}
	return jwtx.Claims{}, jwtx.ErrInvalidSig
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpx.ErrorBody {
	t.Helper()
	var body httpx.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthnMiddleware(t *testing.T) {
	var gotUser string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = httpx.UserIDFromContext(r.Context())
		claims, _ := r.Context().Value(httpx.CtxKeyClaims).(jwtx.Claims)
		require.Equal(t, jwtx.KindAccess, claims.Kind)
		w.WriteHeader(http.StatusNoContent)
	})

	cases := []struct {
		name   string
		header string
		err    error
		status int
		desc   string
	}{
		{name: "valid", header: "Bearer good-access", status: http.StatusNoContent},
		{name: "lowercase scheme", header: "bearer good-access", status: http.StatusNoContent},
		{name: "missing", header: "", status: http.StatusUnauthorized, desc: "missing bearer token"},
		{name: "basic scheme", header: "Basic Zm9vOmJhcg==", status: http.StatusUnauthorized, desc: "missing bearer token"},
		{name: "expired", header: "Bearer stale", err: fmt.Errorf("wrapped: %w", jwtx.ErrExpired), status: http.StatusUnauthorized, desc: "token expired"},
		{name: "wrong kind", header: "Bearer good-refresh", err: jwtx.ErrWrongKind, status: http.StatusUnauthorized, desc: "wrong token type"},
		{name: "invalid", header: "Bearer garbage", status: http.StatusUnauthorized, desc: "invalid token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotUser = ""
			h := httpx.AuthnMiddleware(stubValidator{err: tc.err}, jwtx.KindAccess)(next)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusNoContent {
				require.Equal(t, "7", gotUser)
				return
			}

			require.Empty(t, gotUser)
			require.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")
			body := decodeError(t, rec)
			require.Equal(t, "invalid_token", body.Error)
			require.Equal(t, tc.desc, body.ErrorDescription)
		})
	}
}

func TestChain(t *testing.T) {
	var order []string
	tag := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(okHandler(), tag("outer"), tag("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"outer", "inner"}, order)
}

func TestRecoveryMiddleware(t *testing.T) {
	t.Run("panic becomes 500", func(t *testing.T) {
		h := httpx.RecoveryMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(errors.New("boom"))
		}))

		rec := httptest.NewRecorder()
		require.NotPanics(t, func() {
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		})
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeError(t, rec)
		require.Equal(t, "server_error", body.Error)
		require.NotContains(t, rec.Body.String(), "boom")
	})

	t.Run("abort handler is re-raised", func(t *testing.T) {
		h := httpx.RecoveryMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		require.Panics(t, func() {
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("decodes object", func(t *testing.T) {
		var p payload
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}`))
		require.NoError(t, httpx.DecodeJSON(req, &p))
		require.Equal(t, "a", p.Name)
	})

	t.Run("empty body", func(t *testing.T) {
		var p payload
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		require.Error(t, httpx.DecodeJSON(req, &p))
	})

	t.Run("trailing data", func(t *testing.T) {
		var p payload
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}{"name":"b"}`))
		require.Error(t, httpx.DecodeJSON(req, &p))
	})

	t.Run("malformed", func(t *testing.T) {
		var p payload
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		require.Error(t, httpx.DecodeJSON(req, &p))
	})
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteJSON(rec, http.StatusCreated, map[string]int{"id": 1})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"id":1}`, rec.Body.String())
}
