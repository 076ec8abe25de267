package http

import (
	"net/http"

	"github.com/aussiebroadwan/blog/pkg/blogsdk"
	"github.com/aussiebroadwan/blog/pkg/httpx"
	"github.com/aussiebroadwan/blog/pkg/jwtx"
)

// JWKSHandler godoc
//
//	@Summary		Blog token signing keys
//	@Description	Public Ed25519 keys that sign blog access and refresh tokens, for services that verify them offline.
//	@Tags			well-known
//	@Produce		json
//	@Success		200	{object}	blogsdk.JWKSResponse	"The JSON Web Key Set"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, blogsdk.JWKSResponse(keys.PublicJWKS()))
	}
}
