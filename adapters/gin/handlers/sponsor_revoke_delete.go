package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/open-rails/sponsorkit/adapters/ginutil"
	authlang "github.com/open-rails/sponsorkit/lang"
	"github.com/open-rails/sponsorkit/sponsor"
)

// HandleSponsorRevokeDELETE deletes the sponsor record for :account. Revoking
// a non-sponsor succeeds; the response does not distinguish the two.
func HandleSponsorRevokeDELETE(svc *sponsor.Service, rl ginutil.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ginutil.AllowNamed(c, rl, ginutil.RLSponsorRevoke) {
			ginutil.TooMany(c)
			return
		}
		ctx := c.Request.Context()
		id, err := svc.ResolveAccount(ctx, c.Param("account"))
		if err != nil {
			writeFacadeErr(c, err)
			return
		}
		if err := svc.Revoke(ctx, id); err != nil {
			writeFacadeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": ginutil.Message(c, authlang.MsgSponsorRevoked)})
	}
}
