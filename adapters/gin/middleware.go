// Package admingin embeds the sponsor admin surface into a gin router.
package admingin

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/open-rails/sponsorkit/actor"
	"github.com/open-rails/sponsorkit/adapters/ginutil"
	jwtkit "github.com/open-rails/sponsorkit/jwt"
	authlang "github.com/open-rails/sponsorkit/lang"
)

const claimsKey = "sponsorkit.claims"

// AuthRequired verifies the bearer token and attaches the caller's claims.
// When the token carries a session id the request context becomes interactive:
// the session is attached via the actor package, which is what allows private
// tier grants downstream. Tokens without a session id still authenticate but
// remain non-interactive.
func AuthRequired(verifier *jwtkit.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			ginutil.Unauthorized(c, authlang.MsgUnauthorized)
			return
		}
		claims, err := verifier.Verify(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			ginutil.Unauthorized(c, authlang.MsgUnauthorized)
			return
		}
		c.Set(claimsKey, claims)
		if claims.SessionID != "" {
			c.Request = c.Request.WithContext(actor.WithSession(c.Request.Context(), claims.SessionID))
		}
		c.Next()
	}
}

// CallerClaims returns the verified claims set by AuthRequired.
func CallerClaims(c *gin.Context) (jwtkit.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return jwtkit.Claims{}, false
	}
	claims, ok := v.(jwtkit.Claims)
	return claims, ok
}
