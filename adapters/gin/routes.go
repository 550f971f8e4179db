package admingin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/open-rails/sponsorkit/adapters/gin/handlers"
	"github.com/open-rails/sponsorkit/adapters/ginutil"
	jwtkit "github.com/open-rails/sponsorkit/jwt"
	"github.com/open-rails/sponsorkit/sponsor"
)

// Options wires the admin surface into a router group.
type Options struct {
	Service  *sponsor.Service
	Verifier *jwtkit.Verifier
	Limiter  ginutil.RateLimiter
	Language *LanguageConfig
	// JWKS, when non-empty, is served at /.well-known/jwks.json so front ends
	// can verify tokens issued by the same keyset.
	JWKS jwtkit.JWKS
}

// RegisterAdminRoutes mounts the four sponsor admin operations under
// /admin/sponsors, behind bearer auth and per-operation rate limits. The
// :account segment accepts either a raw account id or a display name.
func RegisterAdminRoutes(r gin.IRouter, opts Options) {
	if len(opts.JWKS.Keys) > 0 {
		ks := opts.JWKS
		r.GET("/.well-known/jwks.json", func(c *gin.Context) {
			jwtkit.ServeJWKS(c.Writer, c.Request, ks)
		})
	}

	grp := r.Group("/admin/sponsors", LanguageMiddleware(opts.Language), AuthRequired(opts.Verifier))
	grp.GET("", handlers.HandleSponsorsListGET(opts.Service, opts.Limiter))
	grp.PUT("/:account", handlers.HandleSponsorGrantPUT(opts.Service, opts.Limiter))
	grp.GET("/:account", handlers.HandleSponsorGET(opts.Service, opts.Limiter))
	grp.DELETE("/:account", handlers.HandleSponsorRevokeDELETE(opts.Service, opts.Limiter))

	grp.GET("/meta/tiers", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"tiers": opts.Service.Catalog().Tiers()})
	})
}
