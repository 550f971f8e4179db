// Package ginutil holds the response and rate-limit helpers shared by the
// sponsor admin handlers.
package ginutil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authlang "github.com/open-rails/sponsorkit/lang"
)

// Message localizes a message code for the request's language.
func Message(c *gin.Context, code string) string {
	language := "en"
	if v, ok := authlang.LanguageFromContext(c.Request.Context()); ok {
		language = v
	}
	return authlang.Localize(language, code)
}

func errBody(c *gin.Context, code string) gin.H {
	return gin.H{"error": code, "message": Message(c, code)}
}

// BadRequest writes a 400 with the given message code.
func BadRequest(c *gin.Context, code string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errBody(c, code))
}

// Unauthorized writes a 401 with the given message code.
func Unauthorized(c *gin.Context, code string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, errBody(c, code))
}

// Forbidden writes a 403 with the given message code.
func Forbidden(c *gin.Context, code string) {
	c.AbortWithStatusJSON(http.StatusForbidden, errBody(c, code))
}

// NotFound writes a 404 with the given message code.
func NotFound(c *gin.Context, code string) {
	c.AbortWithStatusJSON(http.StatusNotFound, errBody(c, code))
}

// TooMany writes a 429.
func TooMany(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, errBody(c, authlang.MsgTooManyRequests))
}

// ServerErr writes a 500 with the given message code.
func ServerErr(c *gin.Context, code string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, errBody(c, code))
}

// StoreUnavailable writes a 503; used when the entitlement store reports a
// fault, which is a retryable condition rather than a handler bug.
func StoreUnavailable(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusServiceUnavailable, errBody(c, authlang.MsgStoreUnavailable))
}
