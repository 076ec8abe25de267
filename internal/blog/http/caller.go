package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/blog/pkg/httpx"
)

// callerID returns the user id AuthnMiddleware put in the request context.
func callerID(r *http.Request) (int64, bool) {
	sub, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
