package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/open-rails/sponsorkit/adapters/ginutil"
	authlang "github.com/open-rails/sponsorkit/lang"
	"github.com/open-rails/sponsorkit/sponsor"
)

// HandleSponsorsListGET enumerates every sponsor record with per-record
// derived activity. Expired records are included, marked inactive. An empty
// ledger is a 200 with an empty list.
func HandleSponsorsListGET(svc *sponsor.Service, rl ginutil.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ginutil.AllowNamed(c, rl, ginutil.RLSponsorList) {
			ginutil.TooMany(c)
			return
		}
		items, err := svc.Enumerate(c.Request.Context())
		if err != nil {
			writeFacadeErr(c, err)
			return
		}
		body := gin.H{"data": items, "count": len(items)}
		if len(items) == 0 {
			body["message"] = ginutil.Message(c, authlang.MsgNoSponsors)
		}
		c.JSON(http.StatusOK, body)
	}
}
