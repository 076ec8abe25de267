package httpx

import (
	"net/http"
	"runtime/debug"

	"github.com/aussiebroadwan/blog/pkg/slogx"
)

// RecoveryMiddleware turns a panicking handler into a generic 500 and logs
// the stack with the request scoped logger.
func RecoveryMiddleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				slogx.FromContext(r.Context()).Error("panic recovered",
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				WriteJSON(w, http.StatusInternalServerError, ErrorBody{
					Error:            "server_error",
					ErrorDescription: "internal server error",
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
