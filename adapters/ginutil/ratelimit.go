package ginutil

import "github.com/gin-gonic/gin"

// Rate-limit bucket names, one per admin operation.
const (
	RLSponsorGrant  = "sponsor_grant"
	RLSponsorRevoke = "sponsor_revoke"
	RLSponsorQuery  = "sponsor_query"
	RLSponsorList   = "sponsor_list"
)

// RateLimiter is implemented by ratelimit/memory and ratelimit/redis.
type RateLimiter interface {
	AllowNamed(bucket, key string) (bool, error)
}

// AllowNamed checks the bucket for the calling client, keyed by client IP.
// A nil limiter or a limiter fault allows the request; limiting is protective,
// not load-bearing.
func AllowNamed(c *gin.Context, rl RateLimiter, bucket string) bool {
	if rl == nil {
		return true
	}
	ok, err := rl.AllowNamed(bucket, c.ClientIP())
	if err != nil {
		return true
	}
	return ok
}
