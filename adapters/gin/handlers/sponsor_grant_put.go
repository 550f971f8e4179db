package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/open-rails/sponsorkit/adapters/ginutil"
	authlang "github.com/open-rails/sponsorkit/lang"
	"github.com/open-rails/sponsorkit/sponsor"
)

type grantRequest struct {
	Tier         string `json:"tier"`
	DurationDays *int   `json:"duration_days,omitempty"`
}

// HandleSponsorGrantPUT grants or updates the sponsor record for :account.
// The record is replaced wholesale; omitting duration_days makes the grant
// permanent. For private tiers the response echoes the caller's session id.
func HandleSponsorGrantPUT(svc *sponsor.Service, rl ginutil.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ginutil.AllowNamed(c, rl, ginutil.RLSponsorGrant) {
			ginutil.TooMany(c)
			return
		}
		var req grantRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Tier == "" {
			ginutil.BadRequest(c, authlang.MsgInvalidRequest)
			return
		}
		ctx := c.Request.Context()
		id, err := svc.ResolveAccount(ctx, c.Param("account"))
		if err != nil {
			writeFacadeErr(c, err)
			return
		}
		res, err := svc.Grant(ctx, id, req.Tier, req.DurationDays)
		if err != nil {
			writeFacadeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
