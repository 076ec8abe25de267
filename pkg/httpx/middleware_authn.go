package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/blog/pkg/jwtx"
	"github.com/aussiebroadwan/blog/pkg/slogx"
)

// TokenValidator checks a raw bearer token for the expected kind and returns
// its claims. Failures must wrap jwtx.ErrExpired or jwtx.ErrWrongKind when
// those are the cause so the response can name the reason.
type TokenValidator interface {
	ValidateToken(raw string, kind jwtx.Kind) (jwtx.Claims, error)
}

// AuthnMiddleware rejects requests without a valid bearer token of the given
// kind. On success the subject and claims are stored in the request context.
func AuthnMiddleware(v TokenValidator, kind jwtx.Kind) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := BearerToken(r)
			if !ok {
				writeBearerError(w, "missing bearer token")
				return
			}

			claims, err := v.ValidateToken(raw, kind)
			if err != nil {
				reason := "invalid token"
				switch {
				case errors.Is(err, jwtx.ErrExpired):
					reason = "token expired"
				case errors.Is(err, jwtx.ErrWrongKind):
					reason = "wrong token type"
				}
				log.Info("bearer token rejected", "reason", reason, "err", err)
				writeBearerError(w, reason)
				return
			}

			ctx = contextWithAuth(ctx, claims)
			ctx = slogx.With(ctx, "user_id", claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the token from an "Authorization: Bearer" header.
func BearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	scheme, raw, found := strings.Cut(authz, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// RFC 6750 style error response for bearer auth, with a JSON body carrying
// the same description.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, ErrorBody{
		Error:            "invalid_token",
		ErrorDescription: desc,
	})
}
