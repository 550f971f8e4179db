package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/open-rails/sponsorkit/adapters/ginutil"
	authlang "github.com/open-rails/sponsorkit/lang"
	"github.com/open-rails/sponsorkit/sponsor"
)

// writeFacadeErr maps the facade error taxonomy onto HTTP responses. Every
// kind gets one distinguishable code; store faults are 503 because they are
// retryable, not handler bugs.
func writeFacadeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, sponsor.ErrInvalidTier):
		ginutil.BadRequest(c, authlang.MsgInvalidTier)
	case errors.Is(err, sponsor.ErrInvalidArgumentCount):
		ginutil.BadRequest(c, authlang.MsgInvalidDuration)
	case errors.Is(err, sponsor.ErrInteractiveActorRequired):
		ginutil.Forbidden(c, authlang.MsgInteractiveRequired)
	case errors.Is(err, sponsor.ErrAccountNotResolvable):
		ginutil.NotFound(c, authlang.MsgAccountNotResolvable)
	case sponsor.IsStoreUnavailable(err):
		ginutil.StoreUnavailable(c)
	default:
		ginutil.ServerErr(c, authlang.MsgInvalidRequest)
	}
}
