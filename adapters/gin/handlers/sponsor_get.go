package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/open-rails/sponsorkit/adapters/ginutil"
	"github.com/open-rails/sponsorkit/sponsor"
)

// HandleSponsorGET reports sponsor status for :account. A missing record is a
// 200 with is_sponsor=false, never a 404; 404 is reserved for unresolvable
// account input.
func HandleSponsorGET(svc *sponsor.Service, rl ginutil.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ginutil.AllowNamed(c, rl, ginutil.RLSponsorQuery) {
			ginutil.TooMany(c)
			return
		}
		ctx := c.Request.Context()
		id, err := svc.ResolveAccount(ctx, c.Param("account"))
		if err != nil {
			writeFacadeErr(c, err)
			return
		}
		res, err := svc.Query(ctx, id)
		if err != nil {
			writeFacadeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
